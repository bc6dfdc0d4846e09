package models

type Hotel struct {
	ID            uint64  `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"type:varchar(255)" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Image         string  `gorm:"type:varchar(255)" json:"image"`
	SortOrder     int     `json:"sort_order"`
}
