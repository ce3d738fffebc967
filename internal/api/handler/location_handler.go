package handler

import (
	"Chronicle/internal/pkg/response"
	"Chronicle/internal/service"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locationSvc service.LocationService
}

func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{
		locationSvc: locationSvc,
	}
}

func (s *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := s.locationSvc.ListLocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, locations)
}
