package dto

type CommentDTO struct {
	ID             uint64 `json:"id"`
	PostID         uint64 `json:"post_id"`
	Text           string `json:"text"`
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	CreatedAt      string `json:"created_at"`
}

// CommentFormDTO is the comment submission shape.
type CommentFormDTO struct {
	Text string `json:"text" validate:"required,max=2000"`
}
