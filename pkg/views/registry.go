package views

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/blogadmin/console/pkg/adminclient"
)

// ErrUnknownView is returned when no view matches a path or entity name.
var ErrUnknownView = errors.New("unknown view")

// Registry holds every console page, keyed by path.
type Registry struct {
	views  map[string]View
	paths  []string
	entity map[string]string
}

// NewRegistry builds all views against c. Views that load form options
// do so concurrently; the registry is returned only once every view is
// ready, and any failure fails the whole registry.
func NewRegistry(ctx context.Context, c *adminclient.Client, opts ...Option) (*Registry, error) {
	var (
		articles *ArticleView
		users    *UserView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := NewArticleView(gctx, c.Articles(), c.Categories(), c.Tags(), opts...)
		articles = v
		return err
	})
	g.Go(func() error {
		v, err := NewUserView(gctx, c.Users(), c.Roles(), opts...)
		users = v
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("init views: %w", err)
	}

	return newRegistry(
		NewCategoryView(c.Categories(), opts...),
		NewTagView(c.Tags(), opts...),
		articles,
		NewRoleView(c.Roles(), opts...),
		users,
	), nil
}

func newRegistry(views ...View) *Registry {
	r := &Registry{
		views:  make(map[string]View, len(views)),
		entity: make(map[string]string, len(views)),
	}
	for _, v := range views {
		r.views[v.Path()] = v
		r.entity[v.Entity()] = v.Path()
		r.paths = append(r.paths, v.Path())
	}
	sort.Strings(r.paths)
	return r
}

// Get returns the view at path. The bare entity name ("category",
// "user", ...) is accepted as an alias.
func (r *Registry) Get(name string) (View, error) {
	if v, ok := r.views[name]; ok {
		return v, nil
	}
	if path, ok := r.entity[name]; ok {
		return r.views[path], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// Match returns the views whose path matches the glob pattern, in path
// order. An empty pattern matches every view.
func (r *Registry) Match(pattern string) ([]View, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid view pattern %q", pattern)
	}
	var out []View
	for _, p := range r.paths {
		ok, err := doublestar.Match(pattern, p)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			out = append(out, r.views[p])
		}
	}
	return out, nil
}

// All returns every view in path order.
func (r *Registry) All() []View {
	out := make([]View, 0, len(r.paths))
	for _, p := range r.paths {
		out = append(out, r.views[p])
	}
	return out
}
