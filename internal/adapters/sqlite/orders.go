package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// OrderStore implements ports.OrderStore on SQLite. The configuration
// snapshot is stored as a JSON column; the queue never queries inside it.
type OrderStore struct {
	db *sql.DB
}

var _ ports.OrderStore = (*OrderStore)(nil)

// Create inserts a new order.
func (s *OrderStore) Create(ctx context.Context, order domain.Order) error {
	config, err := json.Marshal(order.Configuration)
	if err != nil {
		return fmt.Errorf("encode configuration snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (order_id, dealer_id, customer_name, vehicle_id, configuration, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.DealerID, order.CustomerName, order.VehicleID, string(config),
		string(order.Status), order.Notes,
		order.CreatedAt.UTC().Format(time.RFC3339Nano),
		order.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// Get returns one order.
func (s *OrderStore) Get(ctx context.Context, id string) (domain.Order, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT order_id, dealer_id, customer_name, vehicle_id, configuration, status, notes, created_at, updated_at
		 FROM orders WHERE order_id = ?`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return order, err
}

// List returns orders matching the filter, newest first.
func (s *OrderStore) List(ctx context.Context, filter ports.OrderFilter) ([]domain.Order, error) {
	query := `SELECT order_id, dealer_id, customer_name, vehicle_id, configuration, status, notes, created_at, updated_at
		 FROM orders WHERE 1=1`
	var args []any
	if filter.DealerID != "" {
		query += " AND dealer_id = ?"
		args = append(args, filter.DealerID)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, rows.Err()
}

// Update replaces a stored order.
func (s *OrderStore) Update(ctx context.Context, order domain.Order) error {
	config, err := json.Marshal(order.Configuration)
	if err != nil {
		return fmt.Errorf("encode configuration snapshot: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET dealer_id = ?, customer_name = ?, vehicle_id = ?, configuration = ?, status = ?, notes = ?, updated_at = ?
		 WHERE order_id = ?`,
		order.DealerID, order.CustomerName, order.VehicleID, string(config),
		string(order.Status), order.Notes,
		order.UpdatedAt.UTC().Format(time.RFC3339Nano),
		order.ID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (domain.Order, error) {
	var (
		order     domain.Order
		config    string
		status    string
		createdAt string
		updatedAt string
		customer  sql.NullString
		notes     sql.NullString
	)
	err := row.Scan(&order.ID, &order.DealerID, &customer, &order.VehicleID,
		&config, &status, &notes, &createdAt, &updatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	order.CustomerName = customer.String
	order.Notes = notes.String
	order.Status = domain.OrderStatus(status)
	if err := json.Unmarshal([]byte(config), &order.Configuration); err != nil {
		return domain.Order{}, fmt.Errorf("decode configuration snapshot for order %s: %w", order.ID, err)
	}
	if order.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Order{}, fmt.Errorf("parse created_at for order %s: %w", order.ID, err)
	}
	if order.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return domain.Order{}, fmt.Errorf("parse updated_at for order %s: %w", order.ID, err)
	}
	return order, nil
}
