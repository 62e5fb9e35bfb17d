package models

// Delivery is the shipment of an order by a driver.
type Delivery struct {
	DeliveryID     int64   `json:"delivery_id"`
	TrackingNumber *string `json:"tracking_number"`
	OrderID        *int64  `json:"order_id"`
	DriverID       *int64  `json:"driver_id"`
	DeliveryDate   *Date   `json:"delivery_date"`
	Status         *string `json:"status"`
}
