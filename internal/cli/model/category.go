package model

// CategoryStatus is ACTIVE or INACTIVE.
type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "ACTIVE"
	CategoryInactive CategoryStatus = "INACTIVE"
)

// Category is a blog category as returned by both public and manager endpoints.
type Category struct {
	CategoryID   int64          `json:"categoryId"`
	CategoryName string         `json:"categoryName"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description,omitempty"`
	DisplayOrder int            `json:"displayOrder"`
	Status       CategoryStatus `json:"status,omitempty"`
	CreatedAt    string         `json:"createdAt,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty"`
	BlogCount    int64          `json:"blogCount"`
}

// IsActive reports whether the category is visible on the public site.
func (c Category) IsActive() bool { return c.Status == CategoryActive }

// CategoryPayload is the body of category create/update requests.
type CategoryPayload struct {
	CategoryID   int64          `json:"categoryId,omitempty"`
	CategoryName string         `json:"categoryName"`
	Description  string         `json:"description,omitempty"`
	Slug         string         `json:"slug,omitempty"`
	DisplayOrder *int           `json:"displayOrder,omitempty"`
	Status       CategoryStatus `json:"status"`
}

// ReorderRequest swaps the display order of two categories.
type ReorderRequest struct {
	CategoryID1 int64 `json:"categoryId1"`
	CategoryID2 int64 `json:"categoryId2"`
}
