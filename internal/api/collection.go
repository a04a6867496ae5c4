package api

import (
	"context"
	"fmt"
	"net/http"
)

// Routes names the endpoints of one backend resource. Update and Delete are
// fmt patterns receiving the record id.
type Routes struct {
	List   string
	Create string
	Update string
	Delete string
}

// DefaultRoutes returns the backend's common getAll/create/updateBy/deleteBy
// layout for a resource base path.
func DefaultRoutes(base string) Routes {
	return Routes{
		List:   base + "/getAll",
		Create: base + "/create",
		Update: base + "/updateBy/%d",
		Delete: base + "/deleteBy/%d",
	}
}

// Collection is the typed client for one backend-managed resource.
type Collection[T any] struct {
	client *Client
	routes Routes
}

// NewCollection binds a resource's routes to the shared backend client.
func NewCollection[T any](client *Client, routes Routes) *Collection[T] {
	return &Collection[T]{client: client, routes: routes}
}

// List fetches the full collection. A missing or null body decodes to an
// empty, non-nil slice.
func (r *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.doJSON(ctx, http.MethodGet, r.routes.List, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create submits a draft and returns the server's canonical record,
// including the server-assigned id.
func (r *Collection[T]) Create(ctx context.Context, draft T) (T, error) {
	var out T
	err := r.client.doJSON(ctx, http.MethodPost, r.routes.Create, draft, &out)
	return out, err
}

// Update replaces the record with the given id and returns the server's
// canonical version.
func (r *Collection[T]) Update(ctx context.Context, id int64, draft T) (T, error) {
	var out T
	err := r.client.doJSON(ctx, http.MethodPut, fmt.Sprintf(r.routes.Update, id), draft, &out)
	return out, err
}

// Delete removes the record with the given id.
func (r *Collection[T]) Delete(ctx context.Context, id int64) error {
	return r.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf(r.routes.Delete, id), nil, nil)
}
