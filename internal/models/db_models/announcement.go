package db_models

type Announcement struct {
	BaseModel
	Title       string `gorm:"not null"`
	Body        string
	LinkURL     string
	LinkText    string
	IsActive    bool   `gorm:"default:true;index"`
	AnnouncedOn string `gorm:"size:10"` // YYYY-MM-DD, display date chosen by the admin
}
