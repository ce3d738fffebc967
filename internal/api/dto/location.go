package dto

type LocationDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
