package dto

import "time"

type PostDTO struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Text         string `json:"text"`
	PubDate      string `json:"pub_date"`
	IsPublished  bool   `json:"is_published"`
	ImageURL     string `json:"image_url,omitempty"`
	CommentCount int64  `json:"comment_count"`
	CreatedAt    string `json:"created_at"`

	// Author
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	AuthorFullName string `json:"author_full_name,omitempty"`

	// Category
	CategoryTitle string `json:"category_title,omitempty"`
	CategorySlug  string `json:"category_slug,omitempty"`

	// Location
	LocationName string `json:"location_name,omitempty"`
}

// PostFormDTO is the create/edit submission shape.
type PostFormDTO struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Text        string     `json:"text" validate:"required"`
	PubDate     *time.Time `json:"pub_date"`
	CategoryID  *uint64    `json:"category_id"`
	LocationID  *uint64    `json:"location_id"`
	ImageKey    *string    `json:"image_key"`
	IsPublished *bool      `json:"is_published"`
}

type PostPageDTO struct {
	List    []*PostDTO `json:"list"`
	Page    int        `json:"page"`
	HasMore bool       `json:"has_more"`
}

type CategoryPageDTO struct {
	Category *CategoryDTO `json:"category"`
	List     []*PostDTO   `json:"list"`
	Page     int          `json:"page"`
	HasMore  bool         `json:"has_more"`
}

type ProfilePageDTO struct {
	Profile *ProfileDTO `json:"profile"`
	List    []*PostDTO  `json:"list"`
	Page    int         `json:"page"`
	HasMore bool        `json:"has_more"`
}

type PostDetailDTO struct {
	Post     *PostDTO        `json:"post"`
	Comments []*CommentDTO   `json:"comments"`
	Form     *CommentFormDTO `json:"form"`
}
