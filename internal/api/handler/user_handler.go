package handler

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/pkg/response"
	"Chronicle/internal/pkg/util"
	"Chronicle/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var regDTO dto.RegisterDTO
	if err := c.ShouldBind(&regDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&regDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.userSvc.Register(c.Request.Context(), &regDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var credDTO dto.CredentialDTO
	if err := c.ShouldBind(&credDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&credDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &credDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	profile, err := s.userSvc.GetProfile(c.Request.Context(), viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	viewerID := c.GetUint64("user_id")

	var form dto.ProfileFormDTO
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&form); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.userSvc.UpdateProfile(c.Request.Context(), viewerID, &form); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
