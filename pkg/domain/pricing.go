package domain

// PricingBreakdown itemizes the price of a configuration. All amounts are
// integer minor units (cents) to keep arithmetic exact.
type PricingBreakdown struct {
	Currency      string  `json:"currency"`
	BasePrice     int64   `json:"base_price"`
	TrimPrice     int64   `json:"trim_price"`
	ColorPrice    int64   `json:"color_price"`
	PackagesPrice int64   `json:"packages_price"`
	OptionsPrice  int64   `json:"options_price"`
	Subtotal      int64   `json:"subtotal"`
	TaxRate       float64 `json:"tax_rate"`
	Tax           int64   `json:"tax"`
	Total         int64   `json:"total"`
}
