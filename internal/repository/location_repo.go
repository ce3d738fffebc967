package repository

import (
	"Chronicle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LocationRepo interface {
	GetLocation(ctx context.Context, id uint64) (*model.Location, error)
	ListLocations(ctx context.Context) ([]*model.Location, error)
}

type LocationRepoImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepo {
	return &LocationRepoImpl{
		db: db,
	}
}

func (s *LocationRepoImpl) GetLocation(ctx context.Context, id uint64) (*model.Location, error) {
	var location model.Location
	err := s.db.WithContext(ctx).First(&location, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (s *LocationRepoImpl) ListLocations(ctx context.Context) ([]*model.Location, error) {
	var locations []*model.Location
	err := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
