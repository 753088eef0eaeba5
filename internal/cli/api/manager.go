package api

import (
	"context"
	"net/http"

	"BlogDesk/internal/cli/model"
)

// BlogAction is a lifecycle transition on a blog.
type BlogAction string

const (
	ActionPublish   BlogAction = "publish"
	ActionUnpublish BlogAction = "unpublish"
	ActionArchive   BlogAction = "archive"
)

// ManagerAPI groups the authenticated blog administration endpoints.
// Every call carries the stored bearer token when there is one.
type ManagerAPI struct {
	c *Client
}

// Categories returns the nested category administration endpoints.
func (m *ManagerAPI) Categories() *CategoryAPI { return &CategoryAPI{c: m.c} }

func (m *ManagerAPI) page(ctx context.Context, in call) (*model.Page[model.BlogListItem], error) {
	in.auth = true
	var out model.Page[model.BlogListItem]
	if err := m.c.do(ctx, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *ManagerAPI) detail(ctx context.Context, in call) (*model.Response[model.BlogDetail], error) {
	in.auth = true
	var out model.Response[model.BlogDetail]
	if err := m.c.do(ctx, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *ManagerAPI) ack(ctx context.Context, in call) (*model.Ack, error) {
	in.auth = true
	var out model.Ack
	if err := m.c.do(ctx, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Blogs lists all blogs regardless of status.
func (m *ManagerAPI) Blogs(ctx context.Context, pg model.Pagination) (*model.Page[model.BlogListItem], error) {
	return m.page(ctx, call{method: http.MethodGet, path: []string{"manager", "blogs"}, query: pg.Values()})
}

// Blog fetches a blog by id.
func (m *ManagerAPI) Blog(ctx context.Context, blogID int64) (*model.Response[model.BlogDetail], error) {
	return m.detail(ctx, call{method: http.MethodGet, path: []string{"manager", "blogs", id(blogID)}})
}

// CreateBlog creates a blog. payload is any JSON-serialisable value, typically model.BlogPayload.
func (m *ManagerAPI) CreateBlog(ctx context.Context, payload any) (*model.Response[model.BlogDetail], error) {
	return m.detail(ctx, call{method: http.MethodPost, path: []string{"manager", "blogs"}, body: payload})
}

// UpdateBlog replaces a blog's editable fields.
func (m *ManagerAPI) UpdateBlog(ctx context.Context, blogID int64, payload any) (*model.Response[model.BlogDetail], error) {
	return m.detail(ctx, call{method: http.MethodPut, path: []string{"manager", "blogs", id(blogID)}, body: payload})
}

// DeleteBlog soft-deletes a blog.
func (m *ManagerAPI) DeleteBlog(ctx context.Context, blogID int64) (*model.Ack, error) {
	return m.ack(ctx, call{method: http.MethodDelete, path: []string{"manager", "blogs", id(blogID)}})
}

// Transition applies a lifecycle action to a blog.
func (m *ManagerAPI) Transition(ctx context.Context, blogID int64, action BlogAction) (*model.Ack, error) {
	return m.ack(ctx, call{method: http.MethodPut, path: []string{"manager", "blogs", id(blogID), string(action)}})
}

// Publish makes a blog visible on the public site.
func (m *ManagerAPI) Publish(ctx context.Context, blogID int64) (*model.Ack, error) {
	return m.Transition(ctx, blogID, ActionPublish)
}

// Unpublish returns a published blog to draft.
func (m *ManagerAPI) Unpublish(ctx context.Context, blogID int64) (*model.Ack, error) {
	return m.Transition(ctx, blogID, ActionUnpublish)
}

// Archive archives a blog.
func (m *ManagerAPI) Archive(ctx context.Context, blogID int64) (*model.Ack, error) {
	return m.Transition(ctx, blogID, ActionArchive)
}

// Search runs the advanced search. Filters are applied after page and size, so a filter
// named page or size overrides pg.
func (m *ManagerAPI) Search(ctx context.Context, filters model.Filters, pg model.Pagination) (*model.Page[model.BlogListItem], error) {
	q := pg.Values()
	for k, v := range filters {
		q.Set(k, v)
	}
	return m.page(ctx, call{method: http.MethodGet, path: []string{"manager", "blogs", "search"}, query: q})
}

// MyBlogs lists blogs authored by the token's owner.
func (m *ManagerAPI) MyBlogs(ctx context.Context, pg model.Pagination) (*model.Page[model.BlogListItem], error) {
	return m.page(ctx, call{method: http.MethodGet, path: []string{"manager", "blogs", "my-blogs"}, query: pg.Values()})
}
