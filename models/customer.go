package models

// CustomerStatusActive marks a customer that can place orders.
const CustomerStatusActive = "active"

// Customer is a buyer orders are placed for.
type Customer struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName *string `json:"customer_name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Township     *string `json:"township"`
	Region       *string `json:"region"`
	Status       *string `json:"status"`
}
