package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/model"
	"context"
	"errors"
	"testing"
)

func TestCreateCategory(t *testing.T) {
	categories := newFakeCategoryRepo()
	svc := NewCategoryService(categories)

	out, err := svc.CreateCategory(context.Background(), &dto.CategoryFormDTO{
		Title:       "City Trips & Tours",
		Description: "short hops",
	})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if out.Slug != "city-trips-and-tours" {
		t.Errorf("want slug city-trips-and-tours, got %q", out.Slug)
	}

	stored := categories.categories[out.ID]
	if stored == nil || !stored.IsPublished {
		t.Errorf("want category stored published, got %+v", stored)
	}

	if _, err = svc.CreateCategory(context.Background(), &dto.CategoryFormDTO{Title: "City Trips & Tours"}); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("duplicate slug: want ErrCategoryExists, got %v", err)
	}
}

func TestListPublishedCategories(t *testing.T) {
	categories := newFakeCategoryRepo()
	svc := NewCategoryService(categories)

	categories.add(&model.Category{Title: "Travel", Slug: "travel", IsPublished: true})
	categories.add(&model.Category{Title: "Hidden", Slug: "hidden", IsPublished: false})

	out, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(out) != 1 || out[0].Slug != "travel" {
		t.Errorf("want only the published category, got %d items", len(out))
	}
}
