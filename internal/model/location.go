package model

type Location struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Location) TableName() string {
	return "locations"
}
