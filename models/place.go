package models

// Place is a point of interest. Price is in currency minor units; SortOrder
// controls display order, ties broken by store order.
type Place struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int    `json:"price"`
	Image       string `gorm:"type:varchar(255)" json:"image"`
	SortOrder   int    `json:"sort_order"`
}
