package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/model"
	"Chronicle/internal/repository"
	"context"
	"time"
)

type CommentService interface {
	AddComment(ctx context.Context, viewerID uint64, postID uint64, form *dto.CommentFormDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, viewerID uint64, postID, commentID uint64, form *dto.CommentFormDTO) error
	DeleteComment(ctx context.Context, viewerID uint64, postID, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment stamps the author from the viewer and the post from the route
// parameter. A missing or invisible post is NotFound, never a dangling
// reference.
func (s *commentServiceImpl) AddComment(ctx context.Context, viewerID uint64, postID uint64, form *dto.CommentFormDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !PostVisibleAt(post, time.Now().UTC()) && post.AuthorID != viewerID {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: viewerID,
		Text:     form.Text,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return toCommentDTO(comment), nil
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, viewerID uint64, postID, commentID uint64, form *dto.CommentFormDTO) error {
	comment, err := s.getOwnedComment(ctx, viewerID, postID, commentID)
	if err != nil {
		return err
	}

	comment.Text = form.Text
	return s.commentRepo.UpdateComment(ctx, comment)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, viewerID uint64, postID, commentID uint64) error {
	comment, err := s.getOwnedComment(ctx, viewerID, postID, commentID)
	if err != nil {
		return err
	}

	return s.commentRepo.DeleteComment(ctx, comment.ID)
}

func (s *commentServiceImpl) getOwnedComment(ctx context.Context, viewerID uint64, postID, commentID uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	if AuthorizeOwner(comment.AuthorID, viewerID) != Allowed {
		return nil, ErrOwnerMismatch
	}
	return comment, nil
}
