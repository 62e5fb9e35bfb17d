// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusPending is the initial status of orders, deliveries and returns.
const StatusPending = "pending"

// Order is a customer's purchase. OrderDate is supplied by the client on
// create and is a calendar day.
type Order struct {
	OrderID     int64    `json:"order_id"`
	OrderNumber *string  `json:"order_number"`
	CustomerID  *int64   `json:"customer_id"`
	OrderDate   *Date    `json:"order_date"`
	TotalAmount *float64 `json:"total_amount"`
	Status      *string  `json:"status"`
}
