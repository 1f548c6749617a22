package views

import (
	"context"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/table"
)

// TagView is the article tag page.
type TagView struct {
	base
	client *adminclient.Resource[adminclient.Tag]
}

// NewTagView binds the tag page to its client.
func NewTagView(client *adminclient.Resource[adminclient.Tag], opts ...Option) *TagView {
	return &TagView{
		base:   newBase("article/tag", client.Name(), newSettings(opts), crudHandlers(client)),
		client: client,
	}
}

// ColumnFields implements table.Hook.
func (v *TagView) ColumnFields(actions table.RowActions) []table.Column {
	name := v.textColumn("tag_name", "Tag name", 0)
	name.Cell = table.CellTag

	return []table.Column{
		v.selectionColumn(),
		v.idColumn(),
		name,
		v.textColumn("article_count", "Article count", 0),
		v.dateColumn("created_at", "Created at", 170),
		v.editDeleteColumn(actions),
	}
}

// SearchFields implements table.Hook.
func (v *TagView) SearchFields() []table.FormField {
	return []table.FormField{
		table.LikeSearch("tag_name", v.t("Tag name")),
	}
}

// FormFields implements table.Hook.
func (v *TagView) FormFields(table.Record) []table.FormField {
	return []table.FormField{
		{Type: table.RenderInput, Field: "tag_name", Label: v.t("Tag name"), Required: true},
	}
}

// Find implements View.
func (v *TagView) Find(ctx context.Context, id int64) (any, error) {
	return findOn(ctx, v.client, id)
}
