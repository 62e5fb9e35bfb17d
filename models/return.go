package models

// Return is goods sent back against an order.
type Return struct {
	ReturnID     int64   `json:"return_id"`
	ReturnNumber *string `json:"return_number"`
	OrderID      *int64  `json:"order_id"`
	Reason       *string `json:"reason"`
	ReturnDate   *Date   `json:"return_date"`
	Status       *string `json:"status"`
}
