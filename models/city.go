package models

// City is a destination offered on the site. Only active cities are exposed
// to public reads.
//
// IsActive carries no gorm default: with one, inserts of a zero-valued bool
// would silently be stored as true. Creation paths set it explicitly.
type City struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	IsActive bool   `json:"is_active"`
}
