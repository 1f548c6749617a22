package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/table"
)

// Article type and status codes.
const (
	ArticleTypeOriginal    = 1
	ArticleTypeReprint     = 2
	ArticleTypeTranslation = 3

	ArticleStatusPublic  = 1
	ArticleStatusPrivate = 2
	ArticleStatusDraft   = 3
)

// ArticleView is the article list page.
type ArticleView struct {
	base
	client *adminclient.Resource[adminclient.Article]

	categories []table.Option
	tags       []table.Option
}

// NewArticleView binds the article page to its client and loads the category
// and tag choices of its form. The two lists are fetched concurrently and the
// view is returned only once both are in.
func NewArticleView(
	ctx context.Context,
	client *adminclient.Resource[adminclient.Article],
	categories *adminclient.Resource[adminclient.Category],
	tags *adminclient.Resource[adminclient.Tag],
	opts ...Option,
) (*ArticleView, error) {
	s := newSettings(opts)
	v := &ArticleView{
		base:       newBase("article/list", client.Name(), s, crudHandlers(client)),
		client:     client,
		categories: []table.Option{},
		tags:       []table.Option{},
	}
	if s.offline {
		return v, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := listAll(gctx, categories)
		if err != nil {
			return err
		}
		for _, c := range list {
			v.categories = append(v.categories, table.Option{Label: c.CategoryName, Value: c.CategoryName})
		}
		return nil
	})
	g.Go(func() error {
		list, err := listAll(gctx, tags)
		if err != nil {
			return err
		}
		for _, t := range list {
			v.tags = append(v.tags, table.Option{Label: t.TagName, Value: t.TagName})
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load article options: %w", err)
	}
	return v, nil
}

// ColumnFields implements table.Hook.
func (v *ArticleView) ColumnFields(actions table.RowActions) []table.Column {
	cover := v.textColumn("article_cover", "Cover", 120)
	cover.Cell = table.CellImage

	tags := v.textColumn("tag_name_list", "Tags", 0)
	tags.Cell = table.CellTags

	top := v.textColumn("is_top", "Top", 80)
	top.Cell = table.CellSwitch
	top.Switch = &table.Switch{ActiveValue: 1, InactiveValue: 0, ActiveText: v.t("Yes"), InactiveText: v.t("No")}
	top.OnChange = actions.Toggle

	return []table.Column{
		v.selectionColumn(),
		v.idColumn(),
		cover,
		v.textColumn("article_title", "Title", 0),
		v.textColumn("category_name", "Category", 120),
		tags,
		v.textColumn("article_type", "Type", 80),
		v.textColumn("article_status", "Status", 80),
		top,
		v.dateColumn("created_at", "Created at", 170),
		v.editDeleteColumn(actions),
	}
}

// SearchFields implements table.Hook.
func (v *ArticleView) SearchFields() []table.FormField {
	return []table.FormField{
		table.LikeSearch("article_title", v.t("Title")),
		{
			Type:        table.RenderSelect,
			Field:       "article_type",
			Label:       v.t("Type"),
			Options:     v.typeOptions(),
			SearchRules: &table.SearchRule{Flag: table.FlagAnd, Rule: table.RuleEqual},
		},
		{
			Type:        table.RenderSelect,
			Field:       "article_status",
			Label:       v.t("Status"),
			Options:     v.statusOptions(),
			SearchRules: &table.SearchRule{Flag: table.FlagAnd, Rule: table.RuleEqual},
		},
	}
}

// FormFields implements table.Hook.
func (v *ArticleView) FormFields(table.Record) []table.FormField {
	return []table.FormField{
		{Type: table.RenderInput, Field: "article_title", Label: v.t("Title"), Required: true},
		{Type: table.RenderInput, Field: "article_cover", Label: v.t("Cover")},
		{Type: table.RenderSelect, Field: "category_name", Label: v.t("Category"), Required: true, Options: v.categories},
		{Type: table.RenderMultiSelect, Field: "tag_name_list", Label: v.t("Tags"), Options: v.tags},
		{Type: table.RenderSelect, Field: "article_type", Label: v.t("Type"), Required: true, Options: v.typeOptions()},
		{Type: table.RenderSelect, Field: "article_status", Label: v.t("Status"), Required: true, Options: v.statusOptions()},
		{Type: table.RenderSwitch, Field: "is_top", Label: v.t("Top")},
	}
}

// Find implements View.
func (v *ArticleView) Find(ctx context.Context, id int64) (any, error) {
	return findOn(ctx, v.client, id)
}

func (v *ArticleView) typeOptions() []table.Option {
	return []table.Option{
		{Label: v.t("Original"), Value: ArticleTypeOriginal},
		{Label: v.t("Reprint"), Value: ArticleTypeReprint},
		{Label: v.t("Translation"), Value: ArticleTypeTranslation},
	}
}

func (v *ArticleView) statusOptions() []table.Option {
	return []table.Option{
		{Label: v.t("Public"), Value: ArticleStatusPublic},
		{Label: v.t("Private"), Value: ArticleStatusPrivate},
		{Label: v.t("Draft"), Value: ArticleStatusDraft},
	}
}
