package adminclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Resource is the CRUD client of one backend entity. Every method issues
// exactly one request and forwards its payload untouched.
type Resource[T any] struct {
	c    *Client
	name string
}

// NewResource returns a client for the entity mounted at /api/v1/<name>.
func NewResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, name: name}
}

// Name returns the entity segment of the resource path.
func (r *Resource[T]) Name() string {
	return r.name
}

// Path returns the resource root, e.g. /api/v1/category.
func (r *Resource[T]) Path() string {
	return APIPrefix + "/" + r.name
}

// Create issues POST /api/v1/<e>.
func (r *Resource[T]) Create(ctx context.Context, item *T) (*Response[T], error) {
	return call[T](ctx, r.c, http.MethodPost, r.Path(), item)
}

// Update issues PUT /api/v1/<e>.
func (r *Resource[T]) Update(ctx context.Context, item *T) (*Response[T], error) {
	return call[T](ctx, r.c, http.MethodPut, r.Path(), item)
}

// Delete issues DELETE /api/v1/<e>/{id}.
func (r *Resource[T]) Delete(ctx context.Context, id int64) (*Response[BatchResult], error) {
	return call[BatchResult](ctx, r.c, http.MethodDelete, r.itemPath(id), nil)
}

// BatchDelete issues DELETE /api/v1/<e>/batch_delete with the ids as body.
func (r *Resource[T]) BatchDelete(ctx context.Context, ids []int64) (*Response[BatchResult], error) {
	return call[BatchResult](ctx, r.c, http.MethodDelete, r.Path()+"/batch_delete", ids)
}

// Find issues GET /api/v1/<e>/{id}.
func (r *Resource[T]) Find(ctx context.Context, id int64) (*Response[T], error) {
	return call[T](ctx, r.c, http.MethodGet, r.itemPath(id), nil)
}

// List issues POST /api/v1/<e>/list with the page query as body.
func (r *Resource[T]) List(ctx context.Context, page *PageQuery) (*Response[PageResult[T]], error) {
	if page == nil {
		page = &PageQuery{}
	}
	return call[PageResult[T]](ctx, r.c, http.MethodPost, r.Path()+"/list", page)
}

// CreateRaw is Create with the body forwarded unchanged. The response data
// is left undecoded.
func (r *Resource[T]) CreateRaw(ctx context.Context, body json.RawMessage) (*Response[json.RawMessage], error) {
	return callRaw(ctx, r.c, http.MethodPost, r.Path(), body)
}

// UpdateRaw is Update with the body forwarded unchanged.
func (r *Resource[T]) UpdateRaw(ctx context.Context, body json.RawMessage) (*Response[json.RawMessage], error) {
	return callRaw(ctx, r.c, http.MethodPut, r.Path(), body)
}

// ListRaw is List with the page query forwarded unchanged.
func (r *Resource[T]) ListRaw(ctx context.Context, body json.RawMessage) (*Response[json.RawMessage], error) {
	return callRaw(ctx, r.c, http.MethodPost, r.Path()+"/list", body)
}

// FindRaw is Find with the response data left undecoded.
func (r *Resource[T]) FindRaw(ctx context.Context, id int64) (*Response[json.RawMessage], error) {
	return call[json.RawMessage](ctx, r.c, http.MethodGet, r.itemPath(id), nil)
}

// callRaw sends body as is. An empty body is sent as {}.
func callRaw(ctx context.Context, c *Client, method, path string, body json.RawMessage) (*Response[json.RawMessage], error) {
	if len(body) == 0 {
		body = json.RawMessage("{}")
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrInvalidPayload)
	}
	return call[json.RawMessage](ctx, c, method, path, body)
}

func (r *Resource[T]) itemPath(id int64) string {
	return r.Path() + "/" + strconv.FormatInt(id, 10)
}

// Users is the account client: the generic CRUD surface plus role and
// status management.
type Users struct {
	*Resource[User]
}

// UpdateRoles issues PUT /api/v1/user/update_roles.
func (u *Users) UpdateRoles(ctx context.Context, req *UpdateUserRolesRequest) (*Response[BatchResult], error) {
	return call[BatchResult](ctx, u.c, http.MethodPut, u.Path()+"/update_roles", req)
}

// UpdateStatus issues PUT /api/v1/user/update_status.
func (u *Users) UpdateStatus(ctx context.Context, req *UpdateUserStatusRequest) (*Response[BatchResult], error) {
	return call[BatchResult](ctx, u.c, http.MethodPut, u.Path()+"/update_status", req)
}

// Endpoints is the API endpoint client.
type Endpoints struct {
	*Resource[Endpoint]
}

// ListDetails issues POST /api/v1/api/list/details and returns the
// endpoint tree.
func (e *Endpoints) ListDetails(ctx context.Context, page *PageQuery) (*Response[PageResult[*EndpointDetails]], error) {
	if page == nil {
		page = &PageQuery{}
	}
	return call[PageResult[*EndpointDetails]](ctx, e.c, http.MethodPost, e.Path()+"/list/details", page)
}
