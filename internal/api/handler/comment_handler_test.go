package handler

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubCommentService struct {
	addErr    error
	updateErr error
	deleteErr error
}

func (s *stubCommentService) AddComment(context.Context, uint64, uint64, *dto.CommentFormDTO) (*dto.CommentDTO, error) {
	return &dto.CommentDTO{ID: 1}, s.addErr
}

func (s *stubCommentService) UpdateComment(context.Context, uint64, uint64, uint64, *dto.CommentFormDTO) error {
	return s.updateErr
}

func (s *stubCommentService) DeleteComment(context.Context, uint64, uint64, uint64) error {
	return s.deleteErr
}

func newCommentTestRouter(svc service.CommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint64(2))
	})
	r.POST("/posts/:post_id/delete_comment/:comment_id", h.DeleteComment)
	return r
}

func TestDeleteCommentOwnerMismatchRedirects(t *testing.T) {
	svc := &stubCommentService{deleteErr: service.ErrOwnerMismatch}
	r := newCommentTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/posts/7/delete_comment/3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("want 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/posts/7/" {
		t.Errorf("want redirect to /posts/7/, got %q", loc)
	}
}

func TestDeleteCommentMissingIsNotFound(t *testing.T) {
	svc := &stubCommentService{deleteErr: service.ErrCommentNotFound}
	r := newCommentTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/posts/7/delete_comment/3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("want 404, got %d", w.Code)
	}
}
