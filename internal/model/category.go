package model

import (
	"time"
)

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	IsPublished bool   `gorm:"type:tinyint(1);not null;default:1" json:"is_published"`
	CreatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}
