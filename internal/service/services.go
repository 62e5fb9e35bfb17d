package service

import (
	"github.com/myantech/erp-api/internal/config"
	"github.com/myantech/erp-api/internal/store"
	"github.com/myantech/erp-api/internal/validators"
	"github.com/myantech/erp-api/models"
)

type Services struct {
	AuthService AuthService

	Drivers    ResourceService[models.Driver]
	Products   ResourceService[models.Product]
	Customers  ResourceService[models.Customer]
	Orders     ResourceService[models.Order]
	Deliveries ResourceService[models.Delivery]
	Returns    ResourceService[models.Return]
	Users      ResourceService[models.User]
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig) *Services {
	validator := validators.NewStructValidator()
	auth := NewAuthService(storages.Users, validator, cfg.App)

	return &Services{
		AuthService: auth,
		Drivers:     NewResourceService(storages.Drivers, "Driver"),
		Products:    NewResourceService(storages.Products, "Product"),
		Customers:   NewResourceService(storages.Customers, "Customer"),
		Orders:      NewResourceService(storages.Orders, "Order"),
		Deliveries:  NewResourceService(storages.Deliveries, "Delivery"),
		Returns:     NewResourceService(storages.Returns, "Return"),
		Users:       NewUserService(NewResourceService[models.User](storages.Users, "User"), auth, validator),
	}
}
