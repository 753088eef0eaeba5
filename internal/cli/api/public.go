package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"BlogDesk/internal/cli/model"
)

// PublicAPI groups the unauthenticated read-only endpoints.
type PublicAPI struct {
	c *Client
}

func id(v int64) string { return strconv.FormatInt(v, 10) }

func sizeValues(key string, size int) url.Values {
	if size <= 0 {
		size = model.DefaultShortListSize
	}
	return url.Values{key: {strconv.Itoa(size)}}
}

// Blogs lists published blogs.
func (p *PublicAPI) Blogs(ctx context.Context, pg model.Pagination) (*model.Page[model.BlogListItem], error) {
	var out model.Page[model.BlogListItem]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs"}, query: pg.Values()}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BlogBySlug fetches a single published blog.
func (p *PublicAPI) BlogBySlug(ctx context.Context, slug string) (*model.Response[model.BlogDetail], error) {
	var out model.Response[model.BlogDetail]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs", "slug", url.PathEscape(slug)}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// BlogsByCategory lists published blogs in one category.
func (p *PublicAPI) BlogsByCategory(ctx context.Context, categoryID int64, pg model.Pagination) (*model.Page[model.BlogListItem], error) {
	var out model.Page[model.BlogListItem]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs", "category", id(categoryID)}, query: pg.Values()}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a keyword search over published blogs.
func (p *PublicAPI) Search(ctx context.Context, keyword string, pg model.Pagination) (*model.Page[model.BlogListItem], error) {
	q := pg.Values()
	q.Set("keyword", keyword)
	var out model.Page[model.BlogListItem]
	if err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs", "search"}, query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Featured lists featured blogs; size <= 0 means 5.
func (p *PublicAPI) Featured(ctx context.Context, size int) (*model.Page[model.BlogListItem], error) {
	var out model.Page[model.BlogListItem]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs", "featured"}, query: sizeValues("size", size)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TopViewed lists the most viewed blogs; size <= 0 means 5.
func (p *PublicAPI) TopViewed(ctx context.Context, size int) (*model.Response[[]model.BlogListItem], error) {
	var out model.Response[[]model.BlogListItem]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs", "top-viewed"}, query: sizeValues("size", size)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Related lists blogs from the same category as blogID; limit <= 0 means 5.
func (p *PublicAPI) Related(ctx context.Context, blogID int64, limit int) (*model.Response[[]model.BlogListItem], error) {
	var out model.Response[[]model.BlogListItem]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blogs", id(blogID), "related"}, query: sizeValues("limit", limit)}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists active categories.
func (p *PublicAPI) Categories(ctx context.Context) (*model.Response[[]model.Category], error) {
	return p.categories(ctx, "public", "blog-categories")
}

// CategoriesWithCount lists active categories with their blog counts filled in.
func (p *PublicAPI) CategoriesWithCount(ctx context.Context) (*model.Response[[]model.Category], error) {
	return p.categories(ctx, "public", "blog-categories", "with-blog-count")
}

func (p *PublicAPI) categories(ctx context.Context, path ...string) (*model.Response[[]model.Category], error) {
	var out model.Response[[]model.Category]
	if err := p.c.do(ctx, call{method: http.MethodGet, path: path}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryBySlug fetches an active category by slug.
func (p *PublicAPI) CategoryBySlug(ctx context.Context, slug string) (*model.Response[model.Category], error) {
	var out model.Response[model.Category]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blog-categories", "slug", url.PathEscape(slug)}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Category fetches an active category by id.
func (p *PublicAPI) Category(ctx context.Context, categoryID int64) (*model.Response[model.Category], error) {
	var out model.Response[model.Category]
	err := p.c.do(ctx, call{method: http.MethodGet, path: []string{"public", "blog-categories", id(categoryID)}}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
