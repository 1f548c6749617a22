package views

import (
	"context"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/table"
)

// CategoryView is the article category page.
type CategoryView struct {
	base
	client *adminclient.Resource[adminclient.Category]
}

// NewCategoryView binds the category page to its client.
func NewCategoryView(client *adminclient.Resource[adminclient.Category], opts ...Option) *CategoryView {
	return &CategoryView{
		base:   newBase("article/category", client.Name(), newSettings(opts), crudHandlers(client)),
		client: client,
	}
}

// ColumnFields implements table.Hook.
func (v *CategoryView) ColumnFields(actions table.RowActions) []table.Column {
	return []table.Column{
		v.selectionColumn(),
		v.idColumn(),
		v.textColumn("category_name", "Category name", 0),
		v.textColumn("article_count", "Article count", 0),
		v.dateColumn("created_at", "Created at", 170),
		v.editDeleteColumn(actions),
	}
}

// SearchFields implements table.Hook.
func (v *CategoryView) SearchFields() []table.FormField {
	return []table.FormField{
		table.LikeSearch("category_name", v.t("Category name")),
	}
}

// FormFields implements table.Hook.
func (v *CategoryView) FormFields(table.Record) []table.FormField {
	return []table.FormField{
		{Type: table.RenderInput, Field: "category_name", Label: v.t("Category name"), Required: true},
	}
}

// Find implements View.
func (v *CategoryView) Find(ctx context.Context, id int64) (any, error) {
	return findOn(ctx, v.client, id)
}
