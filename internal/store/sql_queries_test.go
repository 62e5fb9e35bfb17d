// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/myantech/erp-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildListQuery(t *testing.T) {
	query, args, err := buildListQuery(DriversTable, models.Page{Limit: 10, Offset: 5})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT driver_id, driver_name, contact_number, status FROM drivers ORDER BY driver_name ASC LIMIT $1 OFFSET $2",
		query)
	assert.Equal(t, []any{uint64(10), uint64(5)}, args)
}

func Test_buildFilteredQuery(t *testing.T) {
	query, args, err := buildFilteredQuery(DriversTable, FilterAvailable)
	require.NoError(t, err)
	assert.Equal(t, "SELECT driver_id, driver_name, contact_number, status FROM drivers WHERE status = $1", query)
	assert.Equal(t, []any{"available"}, args)

	query, args, err = buildFilteredQuery(ProductsTable, FilterInStock)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE stock_quantity > $1")
	assert.Equal(t, []any{0}, args)
	assert.NotContains(t, query, "ORDER BY")
}

func Test_buildFilteredQuery_UnknownFilter(t *testing.T) {
	_, _, err := buildFilteredQuery(DriversTable, "retired")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func Test_buildGetByKeyQuery(t *testing.T) {
	query, args, err := buildGetByKeyQuery(DriversTable, "Ko Aung")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT driver_id, driver_name, contact_number, status FROM drivers WHERE driver_name = $1 ORDER BY driver_id ASC LIMIT 1",
		query)
	assert.Equal(t, []any{"Ko Aung"}, args)
}

func Test_buildInsertQuery(t *testing.T) {
	d := models.Driver{DriverID: 99, DriverName: strPtr("Ko Aung"), ContactNumber: strPtr("0912345")}

	query, args, err := buildInsertQuery(DriversTable, d)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "insert into drivers"))
	assert.Contains(t, q, "driver_name")
	assert.Contains(t, q, "contact_number")
	assert.Contains(t, query, "$2")
	assert.True(t, strings.HasSuffix(q, "returning driver_id"))
	// the identifier is assigned by the database
	assert.NotContains(t, q, "(driver_id")
	assert.Len(t, args, 2)
}

func Test_buildUpdateQuery(t *testing.T) {
	d := models.Driver{DriverID: 7, DriverName: strPtr("Ko Aung"), ContactNumber: strPtr("0912345")}

	query, args, err := buildUpdateQuery(DriversTable, d)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE drivers SET driver_name = $1, contact_number = $2 WHERE driver_id = $3", query)
	require.Len(t, args, 3)
	assert.Equal(t, int64(7), args[2])
}

func Test_buildUpdateQuery_NeverSetsIdentifier(t *testing.T) {
	for _, info := range []struct {
		id      string
		columns []string
	}{
		{DriversTable.IDColumn, DriversTable.UpdateColumns},
		{ProductsTable.IDColumn, ProductsTable.UpdateColumns},
		{CustomersTable.IDColumn, CustomersTable.UpdateColumns},
		{OrdersTable.IDColumn, OrdersTable.UpdateColumns},
		{DeliveriesTable.IDColumn, DeliveriesTable.UpdateColumns},
		{ReturnsTable.IDColumn, ReturnsTable.UpdateColumns},
		{UsersTable.IDColumn, UsersTable.UpdateColumns},
	} {
		assert.NotContains(t, info.columns, info.id)
	}
}

func Test_buildUpdateQuery_ColumnValueMismatch(t *testing.T) {
	broken := DriversTable
	broken.UpdateValues = func(models.Driver) []any { return []any{"only one"} }

	_, _, err := buildUpdateQuery(broken, models.Driver{DriverID: 1})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(ReturnsTable, 3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM returns WHERE return_id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestTableInfo(t *testing.T) {
	info := DriversTable.Info()
	assert.Equal(t, TableInfo{
		Name:      "drivers",
		IDColumn:  "driver_id",
		KeyColumn: "driver_name",
		Filters:   []string{FilterAvailable},
	}, info)

	assert.Empty(t, UsersTable.Info().Filters)
}

func TestTables_ColumnsLineUpWithScan(t *testing.T) {
	assert.Len(t, DriversTable.Scan(&models.Driver{}), len(DriversTable.Columns))
	assert.Len(t, ProductsTable.Scan(&models.Product{}), len(ProductsTable.Columns))
	assert.Len(t, CustomersTable.Scan(&models.Customer{}), len(CustomersTable.Columns))
	assert.Len(t, OrdersTable.Scan(&models.Order{}), len(OrdersTable.Columns))
	assert.Len(t, DeliveriesTable.Scan(&models.Delivery{}), len(DeliveriesTable.Columns))
	assert.Len(t, ReturnsTable.Scan(&models.Return{}), len(ReturnsTable.Columns))
	assert.Len(t, UsersTable.Scan(&models.User{}), len(UsersTable.Columns))

	assert.Len(t, CustomersTable.InsertValues(models.Customer{}), len(CustomersTable.InsertColumns))
	assert.Len(t, CustomersTable.UpdateValues(models.Customer{}), len(CustomersTable.UpdateColumns))
	assert.Len(t, OrdersTable.UpdateValues(models.Order{}), len(OrdersTable.UpdateColumns))
	assert.Len(t, UsersTable.InsertValues(models.User{}), len(UsersTable.InsertColumns))
}
