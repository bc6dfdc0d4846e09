package models

// Review is a visitor review. Date is the server's creation day in
// YYYY-MM-DD form; rows are never updated or deleted through the API.
type Review struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	Author string `gorm:"type:varchar(255)" json:"author"`
	Text   string `gorm:"type:text" json:"text"`
	Rating int    `json:"rating"`
	Date   string `gorm:"type:varchar(10)" json:"date"`
}
