// Package views implements the console pages of the blog admin.
//
// Each view binds one backend entity to the table hook contract of package
// table: it publishes column, search and form descriptors and forwards the
// five table events to the entity's client.
//
//	reg, err := views.NewRegistry(ctx, adminclient.New(url), views.WithLocale("zh"))
//	v, err := reg.Get("article/category")
//	resp, err := v.HandleAPI(ctx, table.EventDelete, json.RawMessage(`{"id":5}`))
//
// Views that offer select inputs fed by the backend (articles, users) load
// those options during construction and are not usable until it returns.
package views
