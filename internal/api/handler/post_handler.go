package handler

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/pkg/response"
	"Chronicle/internal/pkg/util"
	"Chronicle/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) Index(c *gin.Context) {
	var pageDTO dto.PageQueryDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListVisible(c.Request.Context(), pageDTO.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CategoryPosts(c *gin.Context) {
	slug := c.Param("slug")

	var pageDTO dto.PageQueryDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListVisibleByCategory(c.Request.Context(), slug, pageDTO.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var pageDTO dto.PageQueryDTO
	if err := c.ShouldBindQuery(&pageDTO); err != nil {
		response.Error(c, err)
		return
	}

	posts, err := s.postSvc.ListByAuthor(c.Request.Context(), username, pageDTO.Page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) Detail(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.NotFound, service.ErrPostNotFound.Error())
		return
	}

	detail, err := s.postSvc.GetDetail(c.Request.Context(), viewerID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	var form dto.PostFormDTO
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&form); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	postID, err := s.postSvc.CreatePost(c.Request.Context(), viewerID, &form)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, map[string]uint64{"id": postID})
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.NotFound, service.ErrPostNotFound.Error())
		return
	}

	var form dto.PostFormDTO
	if err = c.ShouldBindJSON(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&form); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	err = s.postSvc.UpdatePost(c.Request.Context(), viewerID, postID, &form)
	if err != nil {
		redirectOrError(c, err, postID)
		return
	}

	response.Success(c, nil)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.NotFound, service.ErrPostNotFound.Error())
		return
	}

	err = s.postSvc.DeletePost(c.Request.Context(), viewerID, postID)
	if err != nil {
		redirectOrError(c, err, postID)
		return
	}

	response.Success(c, nil)
}

func parsePostID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("post_id"), 10, 64)
}

// redirectOrError sends non-owners back to the post's detail route rather
// than exposing an error page; everything else goes through the error map.
func redirectOrError(c *gin.Context, err error, postID uint64) {
	if errors.Is(err, service.ErrOwnerMismatch) {
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/posts/%d/", postID))
		return
	}
	response.Error(c, err)
}
