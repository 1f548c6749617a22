package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

type recordedRequest struct {
	Method string
	Path   string
	Body   string
	Header http.Header
}

// recorder captures every request it serves and answers with a fixed status and body.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     interface{}
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	rec.mu.Lock()
	rec.requests = append(rec.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   string(b),
		Header: r.Header.Clone(),
	})
	rec.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rec.status)
	if rec.body != nil {
		_ = json.NewEncoder(w).Encode(rec.body)
	}
}

func (rec *recorder) only(t *testing.T) recordedRequest {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.requests, 1, "expected exactly one request")
	return rec.requests[0]
}

// mockServer starts a test server answering every request with status and body.
func mockServer(t *testing.T, status int, body interface{}, opts ...Option) (*recorder, *Client) {
	t.Helper()
	rec := &recorder{status: status, body: body}
	ts := httptest.NewServer(rec)
	t.Cleanup(ts.Close)
	return rec, New(ts.URL, opts...)
}

func ok(data interface{}) map[string]interface{} {
	return map[string]interface{}{"code": CodeOK, "data": data, "message": "ok"}
}

// --- New / Options Tests ---

func TestNew(t *testing.T) {
	c := New("http://localhost:9090/")
	require.NotNil(t, c)
	assert.Equal(t, "http://localhost:9090", c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestNew_WithTimeout(t *testing.T) {
	c := New("http://localhost:9090", WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
}

func TestNew_WithToken(t *testing.T) {
	rec, c := mockServer(t, 200, ok(nil), WithToken("secret-token"))
	_, err := c.Categories().Find(context.Background(), 1)
	require.NoError(t, err)

	req := rec.only(t)
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.NotEmpty(t, req.Header.Get(RequestIDHeader))
}

// --- Endpoint mapping ---

func TestResource_EndpointMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		invoke     func(c *Client) error
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		{
			name: "create",
			invoke: func(c *Client) error {
				_, err := c.Categories().Create(ctx, &Category{CategoryName: "Go"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/category",
			wantBody:   `{"category_name":"Go"}`,
		},
		{
			name: "update",
			invoke: func(c *Client) error {
				_, err := c.Tags().Update(ctx, &Tag{ID: 3, TagName: "rust"})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/tag",
			wantBody:   `{"id":3,"tag_name":"rust"}`,
		},
		{
			name: "delete",
			invoke: func(c *Client) error {
				_, err := c.Categories().Delete(ctx, 5)
				return err
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/category/5",
		},
		{
			name: "batch delete",
			invoke: func(c *Client) error {
				_, err := c.Tags().BatchDelete(ctx, []int64{1, 2, 3})
				return err
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/api/v1/tag/batch_delete",
			wantBody:   `[1,2,3]`,
		},
		{
			name: "find",
			invoke: func(c *Client) error {
				_, err := c.Articles().Find(ctx, 42)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/api/v1/article/42",
		},
		{
			name: "list",
			invoke: func(c *Client) error {
				_, err := c.Roles().List(ctx, &PageQuery{Page: 1, PageSize: 10})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/role/list",
			wantBody:   `{"page":1,"page_size":10}`,
		},
		{
			name: "user update roles",
			invoke: func(c *Client) error {
				_, err := c.Users().UpdateRoles(ctx, &UpdateUserRolesRequest{UserID: 7, RoleIDs: []int64{1, 2}})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/user/update_roles",
			wantBody:   `{"user_id":7,"role_ids":[1,2]}`,
		},
		{
			name: "user update status",
			invoke: func(c *Client) error {
				_, err := c.Users().UpdateStatus(ctx, &UpdateUserStatusRequest{UserID: 7, Status: UserStatusDisabled})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/user/update_status",
			wantBody:   `{"user_id":7,"status":1}`,
		},
		{
			name: "endpoint details",
			invoke: func(c *Client) error {
				_, err := c.Endpoints().ListDetails(ctx, nil)
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/api/list/details",
			wantBody:   `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, c := mockServer(t, 200, ok(nil))
			require.NoError(t, tt.invoke(c))

			req := rec.only(t)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)
			if tt.wantBody == "" {
				assert.Empty(t, req.Body)
			} else {
				assert.JSONEq(t, tt.wantBody, req.Body)
			}
		})
	}
}

// --- Decoding ---

func TestList_DecodesPage(t *testing.T) {
	_, c := mockServer(t, 200, ok(map[string]interface{}{
		"list": []map[string]interface{}{
			{"id": 1, "category_name": "Go", "article_count": 4},
			{"id": 2, "category_name": "Rust"},
		},
		"total": 2,
	}))

	resp, err := c.Categories().List(context.Background(), &PageQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.True(t, resp.OK())
	assert.Equal(t, int64(2), resp.Data.Total)
	require.Len(t, resp.Data.List, 2)
	assert.Equal(t, "Go", resp.Data.List[0].CategoryName)
	assert.Equal(t, int64(4), resp.Data.List[0].ArticleCount)
}

func TestResponse_NonSuccessCodeIsNotAnError(t *testing.T) {
	_, c := mockServer(t, 200, map[string]interface{}{"code": 500, "message": "duplicate name"})

	resp, err := c.Tags().Create(context.Background(), &Tag{TagName: "go"})
	require.NoError(t, err)
	assert.False(t, resp.OK())
	assert.EqualError(t, resp.Err(), "backend returned code 500: duplicate name")
}

func TestResource_RawVariantsSendBodyUnchanged(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		invoke     func(c *Client, body json.RawMessage) error
		body       string
		wantMethod string
		wantPath   string
	}{
		{
			name: "create",
			invoke: func(c *Client, body json.RawMessage) error {
				_, err := c.Articles().CreateRaw(ctx, body)
				return err
			},
			body:       `{"article_title":"Hi","is_top":0,"extra":true}`,
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/article",
		},
		{
			name: "update",
			invoke: func(c *Client, body json.RawMessage) error {
				_, err := c.Roles().UpdateRaw(ctx, body)
				return err
			},
			body:       `{"id":3,"is_disable":0,"created_at":1700000000}`,
			wantMethod: http.MethodPut,
			wantPath:   "/api/v1/role",
		},
		{
			name: "list",
			invoke: func(c *Client, body json.RawMessage) error {
				_, err := c.Tags().ListRaw(ctx, body)
				return err
			},
			body:       `{"page":1,"size":10}`,
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/tag/list",
		},
		{
			name: "empty list body",
			invoke: func(c *Client, _ json.RawMessage) error {
				_, err := c.Tags().ListRaw(ctx, nil)
				return err
			},
			body:       `{}`,
			wantMethod: http.MethodPost,
			wantPath:   "/api/v1/tag/list",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, c := mockServer(t, 200, ok(nil))
			require.NoError(t, tt.invoke(c, json.RawMessage(tt.body)))

			req := rec.only(t)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, tt.body, req.Body)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		})
	}
}

func TestResource_RawInvalidJSON(t *testing.T) {
	rec, c := mockServer(t, 200, ok(nil))
	_, err := c.Categories().UpdateRaw(context.Background(), json.RawMessage(`{"id":`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.Empty(t, rec.requests)
}

func TestResource_FindRawKeepsData(t *testing.T) {
	_, c := mockServer(t, 200, ok(map[string]interface{}{"id": 2, "created_at": 1700000000}))
	resp, err := c.Roles().FindRaw(context.Background(), 2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"created_at":1700000000}`, string(resp.Data))
}

// --- Error paths ---

func TestFind_NotFound(t *testing.T) {
	_, c := mockServer(t, 404, nil)
	_, err := c.Categories().Find(context.Background(), 9)
	assert.True(t, errors.Is(err, ErrNotFound), "error = %v, want ErrNotFound", err)
}

func TestStatusError(t *testing.T) {
	_, c := mockServer(t, 500, map[string]interface{}{"code": 500, "message": "boom"})
	_, err := c.Tags().Delete(context.Background(), 1)

	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 500, serr.StatusCode)
	assert.Equal(t, "boom", serr.Message)
	assert.Equal(t, "/api/v1/tag/1", serr.Path)
}

func TestStatusError_PlainBodyTruncated(t *testing.T) {
	page := "<html>" + strings.Repeat("x", 2000) + "</html>"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(ts.Close)

	_, err := New(ts.URL).Tags().Find(context.Background(), 1)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadGateway, serr.StatusCode)
	assert.True(t, strings.HasSuffix(serr.Message, "...(truncated)"))
	assert.Len(t, serr.Message, maxErrorMessage+len("...(truncated)"))
}

func TestConnectionRefused(t *testing.T) {
	c := New("http://127.0.0.1:1") // port 1 should refuse
	_, err := c.Categories().List(context.Background(), nil)
	assert.Error(t, err)
}

func TestDecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	t.Cleanup(ts.Close)

	_, err := New(ts.URL).Roles().Find(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestContextCanceled(t *testing.T) {
	_, c := mockServer(t, 200, ok(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Categories().Find(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
