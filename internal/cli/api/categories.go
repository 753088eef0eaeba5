package api

import (
	"context"
	"net/http"

	"BlogDesk/internal/cli/model"
)

// CategoryAction toggles a category's visibility.
type CategoryAction string

const (
	ActionActivate   CategoryAction = "activate"
	ActionDeactivate CategoryAction = "deactivate"
)

// CategoryAPI is the authenticated blog-category sub-resource.
type CategoryAPI struct {
	c *Client
}

var categoriesPath = []string{"manager", "blog-categories"}

func categoryPath(extra ...string) []string {
	return append(append([]string{}, categoriesPath...), extra...)
}

func (a *CategoryAPI) one(ctx context.Context, in call) (*model.Response[model.Category], error) {
	in.auth = true
	var out model.Response[model.Category]
	if err := a.c.do(ctx, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// All lists every category, active or not.
func (a *CategoryAPI) All(ctx context.Context) (*model.Response[[]model.Category], error) {
	var out model.Response[[]model.Category]
	if err := a.c.do(ctx, call{method: http.MethodGet, path: categoryPath(), auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a category by id.
func (a *CategoryAPI) Get(ctx context.Context, categoryID int64) (*model.Response[model.Category], error) {
	return a.one(ctx, call{method: http.MethodGet, path: categoryPath(id(categoryID))})
}

// Create creates a category. payload is typically model.CategoryPayload.
func (a *CategoryAPI) Create(ctx context.Context, payload any) (*model.Response[model.Category], error) {
	return a.one(ctx, call{method: http.MethodPost, path: categoryPath(), body: payload})
}

// Update replaces a category's editable fields.
func (a *CategoryAPI) Update(ctx context.Context, categoryID int64, payload any) (*model.Response[model.Category], error) {
	return a.one(ctx, call{method: http.MethodPut, path: categoryPath(id(categoryID)), body: payload})
}

// Delete removes a category.
func (a *CategoryAPI) Delete(ctx context.Context, categoryID int64) (*model.Ack, error) {
	var out model.Ack
	if err := a.c.do(ctx, call{method: http.MethodDelete, path: categoryPath(id(categoryID)), auth: true}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetActive applies activate or deactivate.
func (a *CategoryAPI) SetActive(ctx context.Context, categoryID int64, action CategoryAction) (*model.Response[model.Category], error) {
	return a.one(ctx, call{method: http.MethodPut, path: categoryPath(id(categoryID), string(action))})
}

// Activate makes a category visible.
func (a *CategoryAPI) Activate(ctx context.Context, categoryID int64) (*model.Response[model.Category], error) {
	return a.SetActive(ctx, categoryID, ActionActivate)
}

// Deactivate hides a category.
func (a *CategoryAPI) Deactivate(ctx context.Context, categoryID int64) (*model.Response[model.Category], error) {
	return a.SetActive(ctx, categoryID, ActionDeactivate)
}

// Reorder swaps the display positions of two categories.
func (a *CategoryAPI) Reorder(ctx context.Context, categoryID1, categoryID2 int64) (*model.Ack, error) {
	var out model.Ack
	in := call{
		method: http.MethodPost,
		path:   categoryPath("reorder"),
		body:   model.ReorderRequest{CategoryID1: categoryID1, CategoryID2: categoryID2},
		auth:   true,
	}
	if err := a.c.do(ctx, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
