package models

// Product is a sellable item kept in stock.
type Product struct {
	ProductID     int64    `json:"product_id"`
	ProductName   *string  `json:"product_name"`
	Category      *string  `json:"category"`
	Brand         *string  `json:"brand"`
	Price         *float64 `json:"price"`
	StockQuantity *int64   `json:"stock_quantity"`
}
