// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/myantech/erp-api/models"
)

// Filter names accepted by ListFiltered.
const (
	FilterAvailable = "available"
	FilterInStock   = "in-stock"
	FilterActive    = "active"
	FilterPending   = "pending"
)

var pendingOnly = map[string]sq.Sqlizer{
	FilterPending: sq.Eq{"status": models.StatusPending},
}

// DriversTable maps [models.Driver]. Status is left to the column default
// on insert and is not touched by updates.
var DriversTable = Table[models.Driver]{
	Name:      "drivers",
	IDColumn:  "driver_id",
	KeyColumn: "driver_name",
	Columns:   []string{"driver_id", "driver_name", "contact_number", "status"},
	Scan: func(d *models.Driver) []any {
		return []any{&d.DriverID, &d.DriverName, &d.ContactNumber, &d.Status}
	},
	InsertColumns: []string{"driver_name", "contact_number"},
	InsertValues: func(d models.Driver) []any {
		return []any{d.DriverName, d.ContactNumber}
	},
	UpdateColumns: []string{"driver_name", "contact_number"},
	UpdateValues: func(d models.Driver) []any {
		return []any{d.DriverName, d.ContactNumber}
	},
	ID: func(d models.Driver) int64 { return d.DriverID },
	Filters: map[string]sq.Sqlizer{
		FilterAvailable: sq.Eq{"status": models.DriverStatusAvailable},
	},
}

var productColumns = []string{"product_name", "category", "brand", "price", "stock_quantity"}

func productValues(p models.Product) []any {
	return []any{p.ProductName, p.Category, p.Brand, p.Price, p.StockQuantity}
}

// ProductsTable maps [models.Product].
var ProductsTable = Table[models.Product]{
	Name:      "products",
	IDColumn:  "product_id",
	KeyColumn: "product_name",
	Columns:   append([]string{"product_id"}, productColumns...),
	Scan: func(p *models.Product) []any {
		return []any{&p.ProductID, &p.ProductName, &p.Category, &p.Brand, &p.Price, &p.StockQuantity}
	},
	InsertColumns: productColumns,
	InsertValues:  productValues,
	UpdateColumns: productColumns,
	UpdateValues:  productValues,
	ID:            func(p models.Product) int64 { return p.ProductID },
	Filters: map[string]sq.Sqlizer{
		FilterInStock: sq.Gt{"stock_quantity": 0},
	},
}

var customerColumns = []string{"customer_name", "phone", "address", "township", "region"}

func customerValues(c models.Customer) []any {
	return []any{c.CustomerName, c.Phone, c.Address, c.Township, c.Region}
}

// CustomersTable maps [models.Customer]. Status keeps its column default on
// insert and is replaced on update.
var CustomersTable = Table[models.Customer]{
	Name:      "customers",
	IDColumn:  "customer_id",
	KeyColumn: "customer_name",
	Columns:   append(append([]string{"customer_id"}, customerColumns...), "status"),
	Scan: func(c *models.Customer) []any {
		return []any{&c.CustomerID, &c.CustomerName, &c.Phone, &c.Address, &c.Township, &c.Region, &c.Status}
	},
	InsertColumns: customerColumns,
	InsertValues:  customerValues,
	UpdateColumns: append(customerColumns[:len(customerColumns):len(customerColumns)], "status"),
	UpdateValues: func(c models.Customer) []any {
		return append(customerValues(c), c.Status)
	},
	ID: func(c models.Customer) int64 { return c.CustomerID },
	Filters: map[string]sq.Sqlizer{
		FilterActive: sq.Eq{"status": models.CustomerStatusActive},
	},
}

// OrdersTable maps [models.Order].
var OrdersTable = Table[models.Order]{
	Name:      "orders",
	IDColumn:  "order_id",
	KeyColumn: "order_number",
	Columns:   []string{"order_id", "order_number", "customer_id", "order_date", "total_amount", "status"},
	Scan: func(o *models.Order) []any {
		return []any{&o.OrderID, &o.OrderNumber, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &o.Status}
	},
	InsertColumns: []string{"order_number", "customer_id", "order_date", "total_amount"},
	InsertValues: func(o models.Order) []any {
		return []any{o.OrderNumber, o.CustomerID, o.OrderDate, o.TotalAmount}
	},
	UpdateColumns: []string{"order_number", "customer_id", "order_date", "total_amount", "status"},
	UpdateValues: func(o models.Order) []any {
		return []any{o.OrderNumber, o.CustomerID, o.OrderDate, o.TotalAmount, o.Status}
	},
	ID:      func(o models.Order) int64 { return o.OrderID },
	Filters: pendingOnly,
}

// DeliveriesTable maps [models.Delivery].
var DeliveriesTable = Table[models.Delivery]{
	Name:      "deliveries",
	IDColumn:  "delivery_id",
	KeyColumn: "tracking_number",
	Columns:   []string{"delivery_id", "tracking_number", "order_id", "driver_id", "delivery_date", "status"},
	Scan: func(d *models.Delivery) []any {
		return []any{&d.DeliveryID, &d.TrackingNumber, &d.OrderID, &d.DriverID, &d.DeliveryDate, &d.Status}
	},
	InsertColumns: []string{"tracking_number", "order_id", "driver_id", "delivery_date"},
	InsertValues: func(d models.Delivery) []any {
		return []any{d.TrackingNumber, d.OrderID, d.DriverID, d.DeliveryDate}
	},
	UpdateColumns: []string{"tracking_number", "order_id", "driver_id", "delivery_date", "status"},
	UpdateValues: func(d models.Delivery) []any {
		return []any{d.TrackingNumber, d.OrderID, d.DriverID, d.DeliveryDate, d.Status}
	},
	ID:      func(d models.Delivery) int64 { return d.DeliveryID },
	Filters: pendingOnly,
}

// ReturnsTable maps [models.Return].
var ReturnsTable = Table[models.Return]{
	Name:      "returns",
	IDColumn:  "return_id",
	KeyColumn: "return_number",
	Columns:   []string{"return_id", "return_number", "order_id", "reason", "return_date", "status"},
	Scan: func(r *models.Return) []any {
		return []any{&r.ReturnID, &r.ReturnNumber, &r.OrderID, &r.Reason, &r.ReturnDate, &r.Status}
	},
	InsertColumns: []string{"return_number", "order_id", "reason", "return_date"},
	InsertValues: func(r models.Return) []any {
		return []any{r.ReturnNumber, r.OrderID, r.Reason, r.ReturnDate}
	},
	UpdateColumns: []string{"return_number", "order_id", "reason", "return_date", "status"},
	UpdateValues: func(r models.Return) []any {
		return []any{r.ReturnNumber, r.OrderID, r.Reason, r.ReturnDate, r.Status}
	},
	ID:      func(r models.Return) int64 { return r.ReturnID },
	Filters: pendingOnly,
}

// UsersTable maps [models.User]. The password hash is written on insert
// but never selected here; see [UserRepository.FindByUsername].
var UsersTable = Table[models.User]{
	Name:      "users",
	IDColumn:  "user_id",
	KeyColumn: "username",
	Columns:   []string{"user_id", "username", "role", "created_at"},
	Scan: func(u *models.User) []any {
		return []any{&u.UserID, &u.Username, &u.Role, &u.CreatedAt}
	},
	InsertColumns: []string{"username", "role", "password_hash"},
	InsertValues: func(u models.User) []any {
		return []any{u.Username, u.Role, nullIfEmpty(u.PasswordHash)}
	},
	UpdateColumns: []string{"username", "role"},
	UpdateValues: func(u models.User) []any {
		return []any{u.Username, u.Role}
	},
	ID: func(u models.User) int64 { return u.UserID },
}

// nullIfEmpty lets the NOT NULL constraint reject a missing value.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
