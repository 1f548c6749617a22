package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/cliconfig"
	"github.com/blogadmin/console/pkg/table"
)

// --- Helpers ---

type apiCall struct {
	Method string
	Path   string
	Body   string
}

// fakeAPI answers with the data registered for "METHOD path". Unregistered
// list endpoints return an empty page; everything else an empty success.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []apiCall
	routes  map[string]any
	code    int
	message string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls = append(f.calls, apiCall{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	f.mu.Unlock()

	data, ok := f.routes[r.Method+" "+r.URL.Path]
	if !ok && strings.HasSuffix(r.URL.Path, "/list") {
		data = map[string]any{"list": []any{}, "total": 0}
	}
	code := f.code
	if code == 0 {
		code = adminclient.CodeOK
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"code": code, "data": data, "message": f.message})
}

func (f *fakeAPI) recorded() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

// isolate keeps config files and BLOGADMIN_* variables of the host out of
// a test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, env := range []string{
		cliconfig.EnvBaseURL, cliconfig.EnvToken, cliconfig.EnvTimeout, cliconfig.EnvLocale,
		cliconfig.EnvPageSize, cliconfig.EnvJSON, cliconfig.EnvLogLevel, cliconfig.EnvLogFormat,
	} {
		t.Setenv(env, "")
	}
	t.Chdir(dir)
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	isolate(t)
	f := &fakeAPI{routes: map[string]any{}}
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	return f, ts.URL
}

// run executes blogadmin in-process.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&app{stdin: strings.NewReader(""), stdout: &stdout, stderr: &stderr})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// --- views / describe ---

func TestViewsCmd(t *testing.T) {
	api, url := newFakeAPI(t)

	out, _, err := run(t, "views", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "PATH")
	assert.Regexp(t, `article/category\s+category\s+create,update,delete,deleteByIds,list`, out)
	assert.Regexp(t, `system/user\s+user\s+update,list`, out)
	assert.Empty(t, api.recorded())
}

func TestViewsCmd_JSON(t *testing.T) {
	_, url := newFakeAPI(t)

	out, _, err := run(t, "views", "--base-url", url, "--json")
	require.NoError(t, err)

	var got []ViewSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	assert.Equal(t, "article/category", got[0].Path)
	assert.Equal(t, []table.Event{table.EventUpdate, table.EventList}, got[4].Events)
}

func TestDescribeCmd_OfflineJSON(t *testing.T) {
	api, url := newFakeAPI(t)

	out, _, err := run(t, "describe", "article/*", "--offline", "-o", "json", "--base-url", url)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "article/category", got[0]["path"])
	assert.Contains(t, got[0], "columns")
	assert.Contains(t, got[0], "form")
	assert.Empty(t, api.recorded())
}

func TestDescribeCmd_LoadsOptions(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["POST /api/v1/role/list"] = map[string]any{
		"list":  []any{map[string]any{"id": 1, "role_name": "admin", "role_comment": "Administrator"}},
		"total": 1,
	}

	out, _, err := run(t, "describe", "system/user", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "label: Administrator")
	assert.Contains(t, out, "path: system/user")
}

func TestDescribeCmd_NoMatch(t *testing.T) {
	_, url := newFakeAPI(t)

	_, _, err := run(t, "describe", "nothing/*", "--offline", "--base-url", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no view matches")
}

// --- list / get ---

func TestListCmd(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["POST /api/v1/category/list"] = map[string]any{
		"list": []any{map[string]any{
			"id": 1, "category_name": "Go", "article_count": 2, "created_at": "2024-03-09T14:05:00Z",
		}},
		"total": 1,
	}

	out, _, err := run(t, "list", "category", "--filter", "category_name=Go", "--sort", "id:desc", "--base-url", url)
	require.NoError(t, err)

	calls := api.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/api/v1/category/list", calls[0].Path)
	assert.JSONEq(t, `{
		"page": 1,
		"page_size": 10,
		"sorts": [{"field": "id", "order": "desc"}],
		"conditions": [{"field": "category_name", "value": "Go", "logic": "and", "operator": "like"}]
	}`, calls[0].Body)

	assert.Contains(t, out, "Category Name")
	assert.Regexp(t, `1\s+Go\s+2\s+2024-03-09 14:05:00`, out)
	assert.Contains(t, out, "1 of 1 (page 1)")
}

func TestListCmd_JSON(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["POST /api/v1/tag/list"] = map[string]any{
		"list":  []any{map[string]any{"id": 4, "tag_name": "cli"}},
		"total": 1,
	}

	out, _, err := run(t, "list", "article/tag", "--size", "5", "--json", "--base-url", url)
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[{"id":4,"tag_name":"cli"}],"total":1}`, out)
	assert.JSONEq(t, `{"page":1,"page_size":5}`, api.recorded()[0].Body)
}

func TestListCmd_UnknownFilter(t *testing.T) {
	api, url := newFakeAPI(t)

	_, _, err := run(t, "list", "category", "--filter", "article_count=3", "--base-url", url)
	assert.ErrorIs(t, err, table.ErrUnknownField)
	assert.Empty(t, api.recorded())
}

func TestListCmd_UnknownView(t *testing.T) {
	_, url := newFakeAPI(t)

	_, _, err := run(t, "list", "system/menu", "--base-url", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown view")
}

func TestGetCmd(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["GET /api/v1/tag/3"] = map[string]any{"id": 3, "tag_name": "go", "article_count": 7}

	out, _, err := run(t, "get", "tag", "3", "--base-url", url)
	require.NoError(t, err)
	assert.Regexp(t, `Tag name:\s+go`, out)
	assert.Regexp(t, `Article count:\s+7`, out)
}

func TestGetCmd_EnvelopeError(t *testing.T) {
	api, url := newFakeAPI(t)
	api.code = 500
	api.message = "record not found"

	_, _, err := run(t, "get", "tag", "3", "--base-url", url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record not found")
}

// --- create / update ---

func TestCreateCmd(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["POST /api/v1/category"] = map[string]any{"id": 12, "category_name": "Go"}

	out, _, err := run(t, "create", "category", "--set", "category_name=Go", "--base-url", url)
	require.NoError(t, err)

	calls := api.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/api/v1/category", calls[0].Path)
	assert.JSONEq(t, `{"category_name":"Go"}`, calls[0].Body)
	assert.Contains(t, out, "created category 12")
}

func TestCreateCmd_Validation(t *testing.T) {
	api, url := newFakeAPI(t)

	_, _, err := run(t, "create", "category", "--base-url", url)
	assert.ErrorIs(t, err, ErrNoValues)

	_, _, err = run(t, "create", "category", "--set", "category_name=", "--base-url", url)
	assert.ErrorIs(t, err, table.ErrMissingField)

	_, _, err = run(t, "create", "user", "--set", "nickname=ada", "--base-url", url)
	assert.ErrorIs(t, err, table.ErrUnsupportedEvent)

	assert.Empty(t, api.recorded())
}

func TestUpdateCmd(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["GET /api/v1/tag/3"] = map[string]any{"id": 3, "tag_name": "go"}

	_, _, err := run(t, "update", "tag", "3", "--set", "tag_name=golang", "--base-url", url)
	require.NoError(t, err)

	calls := api.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/v1/tag/3", calls[0].Path)
	assert.Equal(t, http.MethodPut, calls[1].Method)
	assert.Equal(t, "/api/v1/tag", calls[1].Path)
	assert.JSONEq(t, `{"id":3,"tag_name":"golang"}`, calls[1].Body)
}

func TestUpdateCmd_KeepsRecordFields(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["GET /api/v1/role/3"] = map[string]any{
		"id": 3, "role_name": "editor", "role_comment": "Editor",
		"is_disable": 1, "is_default": 0, "created_at": 1700000000,
	}

	_, _, err := run(t, "update", "role", "3", "--set", "is_disable=0", "--base-url", url)
	require.NoError(t, err)

	calls := api.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/v1/role", calls[1].Path)
	assert.JSONEq(t, `{
		"id": 3, "role_name": "editor", "role_comment": "Editor",
		"is_disable": 0, "is_default": 0, "created_at": 1700000000
	}`, calls[1].Body)
}

func TestUpdateCmd_UserRoles(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["GET /api/v1/user/7"] = map[string]any{
		"id": 7, "nickname": "ada", "status": 0,
		"roles": []any{map[string]any{"id": 2, "role_comment": "Reader"}},
	}

	_, _, err := run(t, "update", "user", "7", "--set", "roles=[1,2]", "--base-url", url)
	require.NoError(t, err)

	calls := api.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPut, calls[1].Method)
	assert.Equal(t, "/api/v1/user/update_roles", calls[1].Path)
	assert.JSONEq(t, `{"user_id":7,"role_ids":[1,2]}`, calls[1].Body)
}

// --- delete ---

func TestDeleteCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		method string
		path   string
		body   string
	}{
		{"single", []string{"delete", "article/category", "5", "-y"}, http.MethodDelete, "/api/v1/category/5", ""},
		{"batch", []string{"delete", "tag", "1", "2", "-y"}, http.MethodDelete, "/api/v1/tag/batch_delete", "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, url := newFakeAPI(t)

			_, _, err := run(t, append(tt.args, "--base-url", url)...)
			require.NoError(t, err)

			calls := api.recorded()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.method, calls[0].Method)
			assert.Equal(t, tt.path, calls[0].Path)
			if tt.body != "" {
				assert.JSONEq(t, tt.body, calls[0].Body)
			}
		})
	}
}

func TestDeleteCmd_Rejected(t *testing.T) {
	api, url := newFakeAPI(t)

	_, _, err := run(t, "delete", "user", "1", "-y", "--base-url", url)
	assert.ErrorIs(t, err, table.ErrUnsupportedEvent)

	_, _, err = run(t, "delete", "tag", "x", "-y", "--base-url", url)
	assert.Error(t, err)

	assert.Empty(t, api.recorded())
}

// --- user status ---

func TestUserStatusCmd(t *testing.T) {
	api, url := newFakeAPI(t)

	out, _, err := run(t, "user", "status", "7", "--disable", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "user 7: Disabled")

	calls := api.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPut, calls[0].Method)
	assert.Equal(t, "/api/v1/user/update_status", calls[0].Path)
	assert.JSONEq(t, `{"user_id":7,"status":1}`, calls[0].Body)
}

func TestUserStatusCmd_NeedsOneFlag(t *testing.T) {
	api, url := newFakeAPI(t)

	_, _, err := run(t, "user", "status", "7", "--base-url", url)
	assert.Error(t, err)

	_, _, err = run(t, "user", "status", "7", "--enable", "--disable", "--base-url", url)
	assert.Error(t, err)

	assert.Empty(t, api.recorded())
}

// --- endpoints / config / version ---

func TestEndpointsCmd(t *testing.T) {
	api, url := newFakeAPI(t)
	api.routes["POST /api/v1/api/list/details"] = map[string]any{
		"list": []any{map[string]any{
			"id": 1, "name": "Articles",
			"children": []any{map[string]any{"id": 2, "name": "List articles", "path": "/api/v1/article/list", "method": "POST"}},
		}},
		"total": 1,
	}

	out, _, err := run(t, "endpoints", "--base-url", url)
	require.NoError(t, err)
	assert.Contains(t, out, "Articles\n")
	assert.Regexp(t, `  POST\s+/api/v1/article/list  List articles`, out)
}

func TestConfigCmd(t *testing.T) {
	isolate(t)
	t.Setenv(cliconfig.EnvPageSize, "25")

	out, _, err := run(t, "config", "--base-url", "http://blog.local:9000", "--token", "secret")
	require.NoError(t, err)
	assert.Regexp(t, `baseUrl\s+http://blog.local:9000\s+flag`, out)
	assert.Regexp(t, `pageSize\s+25\s+env`, out)
	assert.Regexp(t, `token\s+\*+\s+flag`, out)
	assert.Regexp(t, `locale\s+en\s+default`, out)
	assert.NotContains(t, out, "secret")
}

func TestConfigCmd_Invalid(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "config", "--timeout", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout 0 is out of range")
	assert.Contains(t, out, "KEY")
}

func TestInvalidConfigStopsCommands(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "views", "--base-url", "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestVersionCmd_JSON(t *testing.T) {
	isolate(t)

	out, _, err := run(t, "version", "--json")
	require.NoError(t, err)

	var v VersionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.NotEmpty(t, v.Go)
	assert.NotEmpty(t, v.OS)
}
