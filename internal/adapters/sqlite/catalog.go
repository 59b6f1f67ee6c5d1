package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/showroomhq/showroom/internal/catalog"
	"github.com/showroomhq/showroom/pkg/domain"
	"github.com/showroomhq/showroom/pkg/ports"
)

// CatalogStore implements ports.CatalogStore on SQLite.
type CatalogStore struct {
	db *sql.DB
}

var _ ports.CatalogStore = (*CatalogStore)(nil)

// Seed replaces the entire catalog with the contents of seed, in one
// transaction.
func (s *CatalogStore) Seed(ctx context.Context, seed *catalog.Seed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"options", "packages", "colors", "trims", "vehicles"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, v := range seed.Vehicles {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO vehicles (vehicle_id, name, model_year, base_price, currency) VALUES (?, ?, ?, ?, ?)`,
			v.ID, v.Name, v.ModelYear, v.BasePrice, v.Currency)
		if err != nil {
			return fmt.Errorf("insert vehicle %s: %w", v.ID, err)
		}
	}
	for _, t := range seed.Trims {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trims (trim_id, vehicle_id, name, price) VALUES (?, ?, ?, ?)`,
			t.ID, t.VehicleID, t.Name, t.Price)
		if err != nil {
			return fmt.Errorf("insert trim %s: %w", t.ID, err)
		}
	}
	for _, c := range seed.Colors {
		trimIDs, err := json.Marshal(c.TrimIDs)
		if err != nil {
			return fmt.Errorf("encode trim ids for color %s: %w", c.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO colors (color_id, vehicle_id, name, hex, price, trim_ids) VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.VehicleID, c.Name, c.Hex, c.Price, string(trimIDs))
		if err != nil {
			return fmt.Errorf("insert color %s: %w", c.ID, err)
		}
	}
	for _, p := range seed.Packages {
		conflicts, err := json.Marshal(p.ConflictsWith)
		if err != nil {
			return fmt.Errorf("encode conflicts for package %s: %w", p.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO packages (package_id, vehicle_id, name, price, conflicts_with) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.VehicleID, p.Name, p.Price, string(conflicts))
		if err != nil {
			return fmt.Errorf("insert package %s: %w", p.ID, err)
		}
	}
	for _, o := range seed.Options {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO options (option_id, vehicle_id, name, price, requires_package_id) VALUES (?, ?, ?, ?, ?)`,
			o.ID, o.VehicleID, o.Name, o.Price, o.RequiresPackageID)
		if err != nil {
			return fmt.Errorf("insert option %s: %w", o.ID, err)
		}
	}

	return tx.Commit()
}

// Vehicles lists all vehicles.
func (s *CatalogStore) Vehicles(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT vehicle_id, name, model_year, base_price, currency FROM vehicles ORDER BY vehicle_id`)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	var out []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.ModelYear, &v.BasePrice, &v.Currency); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Vehicle returns one vehicle.
func (s *CatalogStore) Vehicle(ctx context.Context, id string) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := s.db.QueryRowContext(ctx,
		`SELECT vehicle_id, name, model_year, base_price, currency FROM vehicles WHERE vehicle_id = ?`, id).
		Scan(&v.ID, &v.Name, &v.ModelYear, &v.BasePrice, &v.Currency)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Vehicle{}, domain.ErrVehicleNotFound
	}
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("query vehicle: %w", err)
	}
	return v, nil
}

// Trims lists the trims for a vehicle.
func (s *CatalogStore) Trims(ctx context.Context, vehicleID string) ([]domain.Trim, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT trim_id, vehicle_id, name, price FROM trims WHERE vehicle_id = ? ORDER BY price`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("query trims: %w", err)
	}
	defer rows.Close()

	var out []domain.Trim
	for rows.Next() {
		var t domain.Trim
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.Name, &t.Price); err != nil {
			return nil, fmt.Errorf("scan trim: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Colors lists the colors for a vehicle.
func (s *CatalogStore) Colors(ctx context.Context, vehicleID string) ([]domain.Color, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT color_id, vehicle_id, name, hex, price, trim_ids FROM colors WHERE vehicle_id = ? ORDER BY price`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("query colors: %w", err)
	}
	defer rows.Close()

	var out []domain.Color
	for rows.Next() {
		var c domain.Color
		var trimIDs string
		if err := rows.Scan(&c.ID, &c.VehicleID, &c.Name, &c.Hex, &c.Price, &trimIDs); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		if err := json.Unmarshal([]byte(trimIDs), &c.TrimIDs); err != nil {
			return nil, fmt.Errorf("decode trim ids for color %s: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Packages lists the packages for a vehicle.
func (s *CatalogStore) Packages(ctx context.Context, vehicleID string) ([]domain.Package, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT package_id, vehicle_id, name, price, conflicts_with FROM packages WHERE vehicle_id = ? ORDER BY price`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var out []domain.Package
	for rows.Next() {
		var p domain.Package
		var conflicts string
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.Name, &p.Price, &conflicts); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		if err := json.Unmarshal([]byte(conflicts), &p.ConflictsWith); err != nil {
			return nil, fmt.Errorf("decode conflicts for package %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Options lists the options for a vehicle.
func (s *CatalogStore) Options(ctx context.Context, vehicleID string) ([]domain.Option, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT option_id, vehicle_id, name, price, requires_package_id FROM options WHERE vehicle_id = ? ORDER BY price`, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("query options: %w", err)
	}
	defer rows.Close()

	var out []domain.Option
	for rows.Next() {
		var o domain.Option
		var requires sql.NullString
		if err := rows.Scan(&o.ID, &o.VehicleID, &o.Name, &o.Price, &requires); err != nil {
			return nil, fmt.Errorf("scan option: %w", err)
		}
		o.RequiresPackageID = requires.String
		out = append(out, o)
	}
	return out, rows.Err()
}
