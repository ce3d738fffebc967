package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/model"
	"Chronicle/internal/pkg/consts"
	"Chronicle/internal/pkg/minio"
	"Chronicle/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListVisible(ctx context.Context, page int) (*dto.PostPageDTO, error)
	ListVisibleByCategory(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error)
	ListByAuthor(ctx context.Context, username string, page int) (*dto.ProfilePageDTO, error)
	GetDetail(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, authorID uint64, form *dto.PostFormDTO) (uint64, error)
	UpdatePost(ctx context.Context, viewerID uint64, postID uint64, form *dto.PostFormDTO) error
	DeletePost(ctx context.Context, viewerID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	locationRepo repository.LocationRepo
	userRepo     repository.UserRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	locationRepo repository.LocationRepo,
	userRepo repository.UserRepo,
) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
	}
}

// ListVisible is the index feed: published, non-future posts in published
// categories, newest first.
func (s *postServiceImpl) ListVisible(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	now := time.Now().UTC()

	return getPagedPosts(page,
		func(limit, offset int) ([]*model.Post, error) {
			return s.postRepo.ListVisible(ctx, now, limit, offset)
		},
		s.batchToPostDTO,
	)
}

func (s *postServiceImpl) ListVisibleByCategory(ctx context.Context, slug string, page int) (*dto.CategoryPageDTO, error) {
	now := time.Now().UTC()

	category, err := s.categoryRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	pageDTO, err := getPagedPosts(page,
		func(limit, offset int) ([]*model.Post, error) {
			return s.postRepo.ListVisibleByCategory(ctx, category.ID, now, limit, offset)
		},
		s.batchToPostDTO,
	)
	if err != nil {
		return nil, err
	}

	categoryDTO := &dto.CategoryDTO{}
	if err = copier.Copy(categoryDTO, category); err != nil {
		return nil, err
	}

	return &dto.CategoryPageDTO{
		Category: categoryDTO,
		List:     pageDTO.List,
		Page:     pageDTO.Page,
		HasMore:  pageDTO.HasMore,
	}, nil
}

// ListByAuthor returns the profile page: every post of the user, published
// or not, so authors see their own drafts and scheduled posts.
func (s *postServiceImpl) ListByAuthor(ctx context.Context, username string, page int) (*dto.ProfilePageDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	pageDTO, err := getPagedPosts(page,
		func(limit, offset int) ([]*model.Post, error) {
			return s.postRepo.ListByAuthor(ctx, user.ID, limit, offset)
		},
		s.batchToPostDTO,
	)
	if err != nil {
		return nil, err
	}

	profileDTO := &dto.ProfileDTO{}
	if err = copier.Copy(profileDTO, user); err != nil {
		return nil, err
	}

	return &dto.ProfilePageDTO{
		Profile: profileDTO,
		List:    pageDTO.List,
		Page:    pageDTO.Page,
		HasMore: pageDTO.HasMore,
	}, nil
}

// GetDetail hides invisible posts from everyone but their author. A denied
// fetch is indistinguishable from a missing post.
func (s *postServiceImpl) GetDetail(ctx context.Context, viewerID uint64, postID uint64) (*dto.PostDetailDTO, error) {
	now := time.Now().UTC()

	post, err := s.postRepo.GetPostWithComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !PostVisibleAt(post, now) && post.AuthorID != viewerID {
		return nil, ErrPostNotFound
	}

	postDTO, err := s.toPostDTO(post)
	if err != nil {
		return nil, err
	}

	comments := make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		comments = append(comments, toCommentDTO(&post.Comments[i]))
	}

	return &dto.PostDetailDTO{
		Post:     postDTO,
		Comments: comments,
		Form:     &dto.CommentFormDTO{},
	}, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, authorID uint64, form *dto.PostFormDTO) (uint64, error) {
	if err := s.checkReferences(ctx, form); err != nil {
		return 0, err
	}

	post := &model.Post{}
	if err := copier.Copy(post, form); err != nil {
		return 0, err
	}
	// The author always comes from the viewer, never from the submission.
	post.AuthorID = authorID
	if form.PubDate != nil {
		post.PubDate = *form.PubDate
	} else {
		post.PubDate = time.Now().UTC()
	}
	if form.IsPublished != nil {
		post.IsPublished = *form.IsPublished
	} else {
		post.IsPublished = true
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return 0, err
	}

	return post.ID, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, viewerID uint64, postID uint64, form *dto.PostFormDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if AuthorizeOwner(post.AuthorID, viewerID) != Allowed {
		return ErrOwnerMismatch
	}

	if err = s.checkReferences(ctx, form); err != nil {
		return err
	}

	oldImage := post.ImageKey

	if err = copier.Copy(post, form); err != nil {
		return err
	}
	if form.PubDate != nil {
		post.PubDate = *form.PubDate
	}
	if form.IsPublished != nil {
		post.IsPublished = *form.IsPublished
	}
	post.CategoryID = form.CategoryID
	post.LocationID = form.LocationID
	post.ImageKey = form.ImageKey

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	if oldImage != nil && (form.ImageKey == nil || *form.ImageKey != *oldImage) {
		go func(key string) {
			_ = minio.DeleteFile(context.Background(), key)
		}(*oldImage)
	}

	return nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, viewerID uint64, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if AuthorizeOwner(post.AuthorID, viewerID) != Allowed {
		return ErrOwnerMismatch
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	if post.ImageKey != nil {
		go func(key string) {
			_ = minio.DeleteFile(context.Background(), key)
		}(*post.ImageKey)
	}

	return nil
}

// checkReferences validates the optional category and location foreign keys.
func (s *postServiceImpl) checkReferences(ctx context.Context, form *dto.PostFormDTO) error {
	if form.CategoryID != nil {
		category, err := s.categoryRepo.GetCategory(ctx, *form.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrCategoryNotFound
		}
	}
	if form.LocationID != nil {
		location, err := s.locationRepo.GetLocation(ctx, *form.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			return ErrLocationNotFound
		}
	}
	return nil
}

func (s *postServiceImpl) toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.PubDate = post.PubDate.Format(time.RFC3339)
	out.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	if post.ImageKey != nil {
		out.ImageURL = minio.GetPublicURL(*post.ImageKey)
	}

	if post.Author.ID > 0 {
		out.AuthorID = post.Author.ID
		out.AuthorUsername = post.Author.Username
		fullName := post.Author.FirstName + " " + post.Author.LastName
		if fullName != " " {
			out.AuthorFullName = fullName
		}
	}
	if post.Category != nil {
		out.CategoryTitle = post.Category.Title
		out.CategorySlug = post.Category.Slug
	}
	if post.Location != nil {
		out.LocationName = post.Location.Name
	}

	return out, nil
}

func (s *postServiceImpl) batchToPostDTO(posts []*model.Post) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := s.toPostDTO(post)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	out := &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Text:      comment.Text,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
	}
	if comment.Author.ID > 0 {
		out.AuthorUsername = comment.Author.Username
	}
	return out
}

// getPagedPosts fetches one page plus a lookahead row to decide HasMore.
// Page numbers start at 1; pages past the end come back empty.
func getPagedPosts(
	page int,
	fetchFunc func(limit, offset int) ([]*model.Post, error),
	convertFunc func([]*model.Post) ([]*dto.PostDTO, error),
) (*dto.PostPageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * consts.PageSize

	rawData, err := fetchFunc(consts.PageSize+1, offset)
	if err != nil {
		return nil, err
	}

	hasMore := false
	if len(rawData) > consts.PageSize {
		hasMore = true
		rawData = rawData[:consts.PageSize]
	}

	dtoItems, err := convertFunc(rawData)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		List:    dtoItems,
		Page:    page,
		HasMore: hasMore,
	}, nil
}
