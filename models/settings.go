package models

// Settings is the site-wide configuration singleton. Exactly one row with
// ID 1 exists after initialization; it is only ever updated in place.
type Settings struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	SiteName string `gorm:"type:varchar(255)" json:"site_name"`
	MainCity string `gorm:"type:varchar(255)" json:"main_city"`
	Phone    string `gorm:"type:varchar(64)" json:"phone"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
}

func (Settings) TableName() string {
	return "settings"
}
