package repository

import (
	"Chronicle/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// commentCountSelect annotates each row with the live number of comments.
const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error)
	ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*model.Post, error)
	ListVisibleByCategory(ctx context.Context, categoryID uint64, now time.Time, limit, offset int) ([]*model.Post, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error)
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id uint64) error
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// scopeVisible is the SQL form of the publication predicate: published post,
// published (or absent) category, publish date not in the future. Every list
// query that must respect visibility goes through this one scope.
func scopeVisible(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NULL OR categories.is_published = ?", true)
	}
}

func (s *PostRepoImpl) listBase(ctx context.Context, limit, offset int) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select(commentCountSelect).
		Where("posts.is_deleted = ?", false).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC, posts.id DESC").
		Limit(limit).
		Offset(offset)
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Select(commentCountSelect).
		Where("posts.is_deleted = ?", false).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Select(commentCountSelect).
		Where("posts.is_deleted = ?", false).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.Author").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.listBase(ctx, limit, offset).
		Scopes(scopeVisible(now)).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListVisibleByCategory(ctx context.Context, categoryID uint64, now time.Time, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.listBase(ctx, limit, offset).
		Scopes(scopeVisible(now)).
		Where("posts.category_id = ?", categoryID).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByAuthor intentionally skips the visibility scope: an author's profile
// shows their unpublished and future-dated posts as well.
func (s *PostRepoImpl) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.listBase(ctx, limit, offset).
		Where("posts.author_id = ?", authorID).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("Title", "Text", "PubDate", "CategoryID", "LocationID", "ImageKey", "IsPublished").
		Updates(post).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *PostRepoImpl) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("is_deleted = ? AND updated_at < ?", true, cutoff).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}
