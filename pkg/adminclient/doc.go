// Package adminclient is the HTTP client for the blog backend's admin API.
//
// Every entity (category, tag, article, role, user, api endpoint) is served
// by a Resource with the same six operations:
//
//	Create       POST   /api/v1/<e>
//	Update       PUT    /api/v1/<e>
//	Delete       DELETE /api/v1/<e>/{id}
//	BatchDelete  DELETE /api/v1/<e>/batch_delete
//	Find         GET    /api/v1/<e>/{id}
//	List         POST   /api/v1/<e>/list
//
// Responses are wrapped in the {code, data, message} envelope. A non-success
// envelope code is returned as a normal Response; only transport failures and
// non-2xx HTTP statuses are errors. There is no retry and no caching.
//
// # Usage
//
//	c := adminclient.New("http://localhost:8080", adminclient.WithToken(tok))
//	resp, err := c.Categories().List(ctx, &adminclient.PageQuery{Page: 1, PageSize: 10})
package adminclient
