package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/repository"
	"context"
)

type LocationService interface {
	ListLocations(ctx context.Context) ([]*dto.LocationDTO, error)
}

type locationServiceImpl struct {
	locationRepo repository.LocationRepo
}

func NewLocationService(locationRepo repository.LocationRepo) LocationService {
	return &locationServiceImpl{
		locationRepo: locationRepo,
	}
}

func (s *locationServiceImpl) ListLocations(ctx context.Context) ([]*dto.LocationDTO, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.LocationDTO, len(locations))
	for i, location := range locations {
		out[i] = &dto.LocationDTO{
			ID:   location.ID,
			Name: location.Name,
		}
	}
	return out, nil
}
