package store

import "github.com/myantech/erp-api/models"

// Storages groups one repository per table.
type Storages struct {
	Drivers    ResourceRepository[models.Driver]
	Products   ResourceRepository[models.Product]
	Customers  ResourceRepository[models.Customer]
	Orders     ResourceRepository[models.Order]
	Deliveries ResourceRepository[models.Delivery]
	Returns    ResourceRepository[models.Return]
	Users      UserRepository
}

// NewStorages wires every repository to the same connection pool.
func NewStorages(db *DB) *Storages {
	return newStorages(db, db.errorClassificator)
}

func newStorages(q Querier, classifier ErrorClassificator) *Storages {
	return &Storages{
		Drivers:    NewResourceRepository(q, DriversTable, classifier),
		Products:   NewResourceRepository(q, ProductsTable, classifier),
		Customers:  NewResourceRepository(q, CustomersTable, classifier),
		Orders:     NewResourceRepository(q, OrdersTable, classifier),
		Deliveries: NewResourceRepository(q, DeliveriesTable, classifier),
		Returns:    NewResourceRepository(q, ReturnsTable, classifier),
		Users:      NewUserRepository(q, classifier),
	}
}
