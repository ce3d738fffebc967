package handler

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/pkg/response"
	"Chronicle/internal/pkg/util"
	"Chronicle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

func (s *CommentHandler) AddComment(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, err := parsePostID(c)
	if err != nil {
		response.Fail(c, response.NotFound, service.ErrPostNotFound.Error())
		return
	}

	var form dto.CommentFormDTO
	if err = c.ShouldBindJSON(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&form); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	comment, err := s.commentSvc.AddComment(c.Request.Context(), viewerID, postID, &form)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, commentID, err := parseCommentRoute(c)
	if err != nil {
		response.Fail(c, response.NotFound, service.ErrCommentNotFound.Error())
		return
	}

	var form dto.CommentFormDTO
	if err = c.ShouldBindJSON(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&form); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	err = s.commentSvc.UpdateComment(c.Request.Context(), viewerID, postID, commentID, &form)
	if err != nil {
		redirectOrError(c, err, postID)
		return
	}

	response.Success(c, nil)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	postID, commentID, err := parseCommentRoute(c)
	if err != nil {
		response.Fail(c, response.NotFound, service.ErrCommentNotFound.Error())
		return
	}

	err = s.commentSvc.DeleteComment(c.Request.Context(), viewerID, postID, commentID)
	if err != nil {
		redirectOrError(c, err, postID)
		return
	}

	response.Success(c, nil)
}

func parseCommentRoute(c *gin.Context) (postID, commentID uint64, err error) {
	postID, err = parsePostID(c)
	if err != nil {
		return 0, 0, err
	}
	commentID, err = strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return postID, commentID, nil
}
