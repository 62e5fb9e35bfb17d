package http

import (
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/myantech/erp-api/internal/authz"
	"github.com/myantech/erp-api/internal/logger"
	"github.com/myantech/erp-api/internal/service"
	"github.com/myantech/erp-api/internal/store"
	"github.com/myantech/erp-api/internal/utils"
	"github.com/myantech/erp-api/models"
)

const (
	filterQueryParam = "filter"
	limitQueryParam  = "limit"
	offsetQueryParam = "offset"

	maxBodyBytes = 1 << 20
)

// resourceHandler serves CRUD for one entity. Every route is wrapped by the
// privilege gate before any service call is made.
type resourceHandler[T any] struct {
	h *Handler

	// entity is the singular display name used in response messages.
	entity   string
	resource authz.Resource
	info     store.TableInfo
	idOf     func(T) int64

	service service.ResourceService[T]
}

func newResourceHandler[T any](h *Handler, entity string, resource authz.Resource, table store.Table[T], svc service.ResourceService[T]) *resourceHandler[T] {
	return &resourceHandler[T]{
		h:        h,
		entity:   entity,
		resource: resource,
		info:     table.Info(),
		idOf:     table.ID,
		service:  svc,
	}
}

// routes builds the sub-router mounted at /api/<resource>.
func (rh *resourceHandler[T]) routes() chi.Router {
	h := rh.h
	list := h.guard(rh.resource, authz.OpList, rh.list)
	getByKey := h.guard(rh.resource, authz.OpGetByKey, rh.getByKey)
	listFiltered := h.guard(rh.resource, authz.OpListFiltered, rh.listFiltered)

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		switch {
		case query.Has(rh.info.KeyColumn):
			getByKey(w, r)
		case rh.hasFilter(query.Get(filterQueryParam)):
			listFiltered(w, r)
		default:
			list(w, r)
		}
	})
	r.Get("/search", getByKey)
	for _, name := range rh.info.Filters {
		r.Get("/"+name, h.guard(rh.resource, authz.OpListFiltered, rh.listNamedFilter(name)))
	}
	r.Post("/", h.guard(rh.resource, authz.OpCreate, rh.create))
	r.Put("/", h.guard(rh.resource, authz.OpUpdate, rh.update))
	r.Delete("/", h.guard(rh.resource, authz.OpDelete, rh.delete))

	return r
}

func (rh *resourceHandler[T]) hasFilter(name string) bool {
	return name != "" && slices.Contains(rh.info.Filters, name)
}

func (rh *resourceHandler[T]) list(w http.ResponseWriter, r *http.Request, _ models.Principal) {
	items, err := rh.service.List(r.Context(), parsePage(r.URL.Query()))
	if err != nil {
		rh.fail(w, r, err, msgQueryFailed)
		return
	}
	rh.writeItems(w, items)
}

func (rh *resourceHandler[T]) listFiltered(w http.ResponseWriter, r *http.Request, p models.Principal) {
	rh.listNamedFilter(r.URL.Query().Get(filterQueryParam))(w, r, p)
}

func (rh *resourceHandler[T]) listNamedFilter(name string) guardedHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ models.Principal) {
		items, err := rh.service.ListFiltered(r.Context(), name)
		if err != nil {
			rh.fail(w, r, err, msgQueryFailed)
			return
		}
		rh.writeItems(w, items)
	}
}

func (rh *resourceHandler[T]) getByKey(w http.ResponseWriter, r *http.Request, _ models.Principal) {
	item, err := rh.service.GetByKey(r.Context(), r.URL.Query().Get(rh.info.KeyColumn))
	if err != nil {
		rh.fail(w, r, err, msgQueryFailed)
		return
	}
	utils.WriteJSON(w, item, http.StatusOK)
}

func (rh *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request, _ models.Principal) {
	item, ok := rh.decode(w, r)
	if !ok {
		return
	}

	id, err := rh.service.Create(r.Context(), item)
	if err != nil {
		rh.fail(w, r, err, msgInsertFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: rh.entity + " added", ID: id}, http.StatusCreated)
}

func (rh *resourceHandler[T]) update(w http.ResponseWriter, r *http.Request, _ models.Principal) {
	item, ok := rh.decode(w, r)
	if !ok {
		return
	}

	if err := rh.service.Update(r.Context(), item); err != nil {
		rh.fail(w, r, err, msgUpdateFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: rh.entity + " updated", ID: rh.idOf(item)}, http.StatusOK)
}

// delete reads the identifier from a body such as {"driver_id": 3}.
func (rh *resourceHandler[T]) delete(w http.ResponseWriter, r *http.Request, _ models.Principal) {
	item, ok := rh.decode(w, r)
	if !ok {
		return
	}

	id := rh.idOf(item)
	if err := rh.service.Delete(r.Context(), id); err != nil {
		rh.fail(w, r, err, msgDeleteFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: rh.entity + " deleted", ID: id}, http.StatusOK)
}

func (rh *resourceHandler[T]) decode(w http.ResponseWriter, r *http.Request) (T, bool) {
	var item T
	if err := utils.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &item); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("resource", string(rh.resource)).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSONBody.Error(), http.StatusBadRequest)
		return item, false
	}
	return item, true
}

func (rh *resourceHandler[T]) writeItems(w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

// fail writes the response for a service error. Storage faults get the
// fixed message for the operation; the cause was logged by the service.
func (rh *resourceHandler[T]) fail(w http.ResponseWriter, r *http.Request, err error, storageMessage string) {
	status := statusFromError(err)

	var message string
	switch {
	case errors.Is(err, service.ErrNotFound):
		message = rh.entity + " not found"
	case status == http.StatusBadRequest:
		message = msgInvalidData
	default:
		message = storageMessage
	}

	logger.FromRequest(r).Err(err).
		Str("resource", string(rh.resource)).
		Int("status", status).
		Msg("request failed")

	utils.WriteError(w, message, status)
}

// parsePage reads limit and offset from the query string. Values that are
// missing, not numeric, negative or beyond a PostgreSQL bigint fall back to
// the defaults, as does a zero limit.
func parsePage(query url.Values) models.Page {
	page := models.DefaultPage()

	if limit, err := strconv.ParseUint(query.Get(limitQueryParam), 10, 63); err == nil && limit > 0 {
		page.Limit = limit
	}
	if offset, err := strconv.ParseUint(query.Get(offsetQueryParam), 10, 63); err == nil {
		page.Offset = offset
	}

	return page
}
