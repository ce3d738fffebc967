package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/model"
	"Chronicle/internal/repository"
	"context"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, form *dto.CategoryFormDTO) (*dto.CategoryDTO, error)
	ListPublished(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, form *dto.CategoryFormDTO) (*dto.CategoryDTO, error) {
	categorySlug := slug.Make(form.Title)

	existing, err := s.categoryRepo.GetPublishedBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &model.Category{
		Title:       form.Title,
		Slug:        categorySlug,
		Description: form.Description,
		IsPublished: true,
	}
	if err = s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	out := &dto.CategoryDTO{}
	if err = copier.Copy(out, category); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *categoryServiceImpl) ListPublished(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := s.categoryRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CategoryDTO, len(categories))
	for i, category := range categories {
		item := &dto.CategoryDTO{}
		if err = copier.Copy(item, category); err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
