package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/models"
)

// guardedRequest runs one request through guard for drivers/list and
// reports whether the wrapped handler ran.
func guardedRequest(t *testing.T, h *Handler, req *http.Request) (*httptest.ResponseRecorder, *models.Principal) {
	t.Helper()

	var got *models.Principal
	handler := h.guard(authz.ResourceDrivers, authz.OpList, func(w http.ResponseWriter, r *http.Request, p models.Principal) {
		fromCtx, ok := utils.GetPrincipalFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, p, fromCtx)
		got = &p
		w.WriteHeader(http.StatusNoContent)
	})

	return serve(handler, req), got
}

func TestGuard_Table(t *testing.T) {
	tests := []struct {
		name       string
		prepare    func(t *testing.T, r *http.Request)
		wantStatus int
		wantBody   string
		wantCalled bool
		wantReason string
	}{
		{
			name:       "no credential",
			prepare:    func(*testing.T, *http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
			wantReason: "unauthenticated",
		},
		{
			name: "malformed header",
			prepare: func(_ *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Token abc")
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
			wantReason: "unauthenticated",
		},
		{
			name: "garbage token",
			prepare: func(_ *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer not.a.jwt")
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
			wantReason: "unauthenticated",
		},
		{
			name: "token signed with another key",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+issueToken(t, adminPrincipal, "other-key"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"authentication required"}`,
			wantReason: "unauthenticated",
		},
		{
			name: "staff role",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", bearer(t, staffPrincipal))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"access denied"}`,
			wantReason: "forbidden",
		},
		{
			name: "role outside the enumeration",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", bearer(t, models.Principal{UserID: 9, Username: "x", Role: "Intern"}))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"access denied"}`,
			wantReason: "forbidden",
		},
		{
			name: "admin via header",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", bearer(t, adminPrincipal))
			},
			wantStatus: http.StatusNoContent,
			wantCalled: true,
		},
		{
			name: "admin via cookie",
			prepare: func(t *testing.T, r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: issueToken(t, adminPrincipal, testSignKey)})
			},
			wantStatus: http.StatusNoContent,
			wantCalled: true,
		},
		{
			name: "cookie wins over a broken header",
			prepare: func(t *testing.T, r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: issueToken(t, adminPrincipal, testSignKey)})
				r.Header.Set("Authorization", "Bearer garbage")
			},
			wantStatus: http.StatusNoContent,
			wantCalled: true,
		},
		{
			name: "cookie wins over an admin header",
			prepare: func(t *testing.T, r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: issueToken(t, staffPrincipal, testSignKey)})
				r.Header.Set("Authorization", bearer(t, adminPrincipal))
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"access denied"}`,
			wantReason: "forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, _ := newTestServices(t)
			h := newTestHandler(t, services)
			rec := &fakeRecorder{}
			h.metrics = rec

			req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
			tt.prepare(t, req)

			rr, principal := guardedRequest(t, h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, principal != nil)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			if tt.wantReason != "" {
				require.Len(t, rec.denials, 1)
				assert.Equal(t, recordedDenial{resource: "drivers", reason: tt.wantReason}, rec.denials[0])
			} else {
				assert.Empty(t, rec.denials)
			}
		})
	}
}

func TestGuard_PassesVerifiedPrincipal(t *testing.T) {
	services, _ := newTestServices(t)
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/drivers", nil)
	req.Header.Set("Authorization", bearer(t, adminPrincipal))

	_, principal := guardedRequest(t, h, req)

	require.NotNil(t, principal)
	assert.Equal(t, adminPrincipal, *principal)
}

func TestGuard_UnknownPairIsDenied(t *testing.T) {
	services, _ := newTestServices(t)
	h := newTestHandler(t, services)

	called := false
	handler := h.guard(authz.Resource("warehouses"), authz.OpList, func(w http.ResponseWriter, _ *http.Request, _ models.Principal) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", bearer(t, adminPrincipal))
	rr := serve(handler, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, called)
}

// Every entity operation rejects a non-admin before any service call; the
// strict gomock controller fails the test if one is made.
func TestGuard_DeniedRequestsNeverReachServices(t *testing.T) {
	services, _ := newTestServices(t)
	router := newTestHandler(t, services).Init()

	requests := []struct {
		method string
		target string
		body   any
	}{
		{http.MethodGet, "/api/drivers", nil},
		{http.MethodGet, "/api/drivers?limit=10&offset=5", nil},
		{http.MethodGet, "/api/drivers?driver_name=Ko", nil},
		{http.MethodGet, "/api/drivers?filter=available", nil},
		{http.MethodGet, "/api/drivers/available", nil},
		{http.MethodGet, "/api/drivers/search?driver_name=Ko", nil},
		{http.MethodPost, "/api/drivers", `{"driver_name":"Ko","contact_number":"09"}`},
		{http.MethodPut, "/api/drivers", `{"driver_id":1,"driver_name":"Ko","contact_number":"09"}`},
		{http.MethodDelete, "/api/drivers", `{"driver_id":1}`},
		{http.MethodPost, "/api/products", `not json`},
		{http.MethodGet, "/api/customers/active", nil},
		{http.MethodGet, "/api/orders?filter=pending", nil},
		{http.MethodDelete, "/api/deliveries", `{"delivery_id":1}`},
		{http.MethodPut, "/api/returns", `{}`},
		{http.MethodPost, "/api/users", `{"username":"u","password":"p","role":"Admin"}`},
	}

	credentials := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"none", "", http.StatusUnauthorized},
		{"invalid", "Bearer invalid", http.StatusUnauthorized},
		{"staff", bearer(t, staffPrincipal), http.StatusForbidden},
		{"customer", bearer(t, models.Principal{UserID: 3, Username: "c", Role: models.RoleCustomer}), http.StatusForbidden},
	}

	for _, cred := range credentials {
		for _, rq := range requests {
			t.Run(cred.name+" "+rq.method+" "+rq.target, func(t *testing.T) {
				req := newJSONRequest(rq.method, rq.target, rq.body)
				if cred.header != "" {
					req.Header.Set("Authorization", cred.header)
				}

				rr := serve(router, req)

				assert.Equal(t, cred.wantStatus, rr.Code)
			})
		}
	}
}
