package model

// BlogStatus is the lifecycle state of a blog post on the CMS.
type BlogStatus string

const (
	BlogDraft     BlogStatus = "DRAFT"
	BlogPublished BlogStatus = "PUBLISHED"
	BlogArchived  BlogStatus = "ARCHIVED"
)

// BlogListItem is the compact blog representation returned by list and search endpoints.
// Timestamps are kept as the server sends them (ISO local date-time strings).
type BlogListItem struct {
	BlogID             int64      `json:"blogId"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Summary            string     `json:"summary,omitempty"`
	ShortSummary       string     `json:"shortSummary,omitempty"`
	ThumbnailImage     string     `json:"thumbnailImage,omitempty"`
	Status             BlogStatus `json:"status,omitempty"`
	Featured           bool       `json:"featured"`
	ViewCount          int        `json:"viewCount"`
	ReadingTime        int        `json:"readingTime,omitempty"`
	CreatedAt          string     `json:"createdAt,omitempty"`
	UpdatedAt          string     `json:"updatedAt,omitempty"`
	ScheduledPublishAt string     `json:"scheduledPublishAt,omitempty"`

	CategoryID   int64  `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
	CategorySlug string `json:"categorySlug,omitempty"`

	AuthorID    int64  `json:"authorId,omitempty"`
	AuthorName  string `json:"authorName,omitempty"`
	AuthorEmail string `json:"authorEmail,omitempty"`
}

// BlogDetail is the full blog record used by the detail page.
type BlogDetail struct {
	BlogListItem

	Content            string         `json:"content"`
	BannerImage        string         `json:"bannerImage,omitempty"`
	AllowComments      bool           `json:"allowComments"`
	CategoryIcon       string         `json:"categoryIcon,omitempty"`
	AuthorAvatar       string         `json:"authorAvatar,omitempty"`
	FormattedCreatedAt string         `json:"formattedCreatedAt,omitempty"`
	RelatedBlogs       []BlogListItem `json:"relatedBlogs,omitempty"`
}

// BlogPayload is the body of create/update requests on the manager API.
// BlogID is only meaningful for updates.
type BlogPayload struct {
	BlogID             int64      `json:"blogId,omitempty"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug,omitempty"`
	Summary            string     `json:"summary,omitempty"`
	Content            string     `json:"content"`
	CategoryID         int64      `json:"categoryId"`
	ThumbnailImage     string     `json:"thumbnailImage,omitempty"`
	BannerImage        string     `json:"bannerImage,omitempty"`
	Status             BlogStatus `json:"status"`
	Featured           *bool      `json:"featured,omitempty"`
	AllowComments      *bool      `json:"allowComments,omitempty"`
	ScheduledPublishAt string     `json:"scheduledPublishAt,omitempty"`
}
