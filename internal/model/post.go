package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	AuthorID    uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Text        string    `gorm:"not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index:idx_pub_date" json:"pub_date"`
	CategoryID  *uint64   `gorm:"index:idx_category_id" json:"category_id"`
	LocationID  *uint64   `json:"location_id"`
	ImageKey    *string   `gorm:"type:varchar(512)" json:"image_key"`
	IsPublished bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	IsDeleted   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CommentCount is filled by list queries via a subselect, it is not a column.
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`

	Author   User      `gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category `gorm:"foreignKey:CategoryID;references:ID"`
	Location *Location `gorm:"foreignKey:LocationID;references:ID"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
