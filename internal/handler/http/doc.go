// Package http implements the REST transport of the ERP API.
//
// It wires the chi router, the middleware chain (tracing, access logging,
// metrics, security headers, CORS and rate limiting) and the generic
// per-entity CRUD handlers. Every entity route is wrapped by the privilege
// gate ([Handler.guard]) before the service layer is reached.
package http
