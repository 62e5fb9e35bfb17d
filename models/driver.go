package models

// DriverStatusAvailable marks a driver that can be assigned a delivery.
const DriverStatusAvailable = "available"

// Driver is a delivery driver. DriverName is the business key used for
// lookups; DriverID is assigned by the database and never changes.
//
// Mutable fields are pointers so that a field omitted from a request body
// reaches the database as NULL and is rejected there instead of being
// stored as an empty value.
type Driver struct {
	DriverID      int64   `json:"driver_id"`
	DriverName    *string `json:"driver_name"`
	ContactNumber *string `json:"contact_number"`
	Status        *string `json:"status"`
}
