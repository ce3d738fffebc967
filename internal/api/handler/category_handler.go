package handler

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/pkg/response"
	"Chronicle/internal/pkg/util"
	"Chronicle/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categorySvc service.CategoryService
}

func NewCategoryHandler(categorySvc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categorySvc: categorySvc,
	}
}

func (s *CategoryHandler) CreateCategory(c *gin.Context) {
	var form dto.CategoryFormDTO
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&form); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	category, err := s.categorySvc.CreateCategory(c.Request.Context(), &form)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, category)
}

func (s *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := s.categorySvc.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}
