// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package authz

import "github.com/myantech/erp-api/models"

// Resource names a protected route group.
type Resource string

const (
	ResourceDrivers    Resource = "drivers"
	ResourceProducts   Resource = "products"
	ResourceCustomers  Resource = "customers"
	ResourceOrders     Resource = "orders"
	ResourceDeliveries Resource = "deliveries"
	ResourceReturns    Resource = "returns"
	ResourceUsers      Resource = "users"
	ResourceSession    Resource = "session"
)

// Operation names an action on a resource.
type Operation string

const (
	OpList         Operation = "list"
	OpListFiltered Operation = "list_filtered"
	OpGetByKey     Operation = "get_by_key"
	OpCreate       Operation = "create"
	OpUpdate       Operation = "update"
	OpDelete       Operation = "delete"
	OpWhoAmI       Operation = "whoami"
)

// CRUDOperations lists every operation a resource handler exposes.
var CRUDOperations = []Operation{OpList, OpListFiltered, OpGetByKey, OpCreate, OpUpdate, OpDelete}

// EntityResources lists the resources served by the generic CRUD handlers.
var EntityResources = []Resource{
	ResourceDrivers,
	ResourceProducts,
	ResourceCustomers,
	ResourceOrders,
	ResourceDeliveries,
	ResourceReturns,
	ResourceUsers,
}

type rule struct {
	resource  Resource
	operation Operation
}

// Policy maps (resource, operation) pairs to the roles allowed to perform
// them. A Policy is read-only after construction and safe for concurrent use.
type Policy struct {
	rules map[rule]models.RoleSet
}

// NewPolicy returns an empty policy. Every check against it is forbidden
// until rules are added with [Policy.Allow].
func NewPolicy() *Policy {
	return &Policy{rules: make(map[rule]models.RoleSet)}
}

// Allow grants roles to (resource, op), replacing any previous grant.
// It returns p for chaining and must not be called once p is in use.
func (p *Policy) Allow(resource Resource, op Operation, roles models.RoleSet) *Policy {
	p.rules[rule{resource, op}] = roles
	return p
}

// AllowedRoles returns the roles granted for (resource, op). Unknown pairs
// yield an empty set.
func (p *Policy) AllowedRoles(resource Resource, op Operation) models.RoleSet {
	return p.rules[rule{resource, op}]
}

// Authorize is [Authorize] against the roles granted for (resource, op).
func (p *Policy) Authorize(principal *models.Principal, resource Resource, op Operation) Decision {
	return Authorize(principal, p.AllowedRoles(resource, op))
}

// DefaultPolicy restricts every entity operation to administrators. Any
// authenticated role may inspect its own session.
func DefaultPolicy() *Policy {
	p := NewPolicy()
	admin := models.NewRoleSet(models.RoleAdmin)
	for _, res := range EntityResources {
		for _, op := range CRUDOperations {
			p.Allow(res, op, admin)
		}
	}
	p.Allow(ResourceSession, OpWhoAmI, models.AnyRole())

	return p
}
