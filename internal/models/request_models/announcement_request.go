package request_models

type SaveAnnouncementRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Body        string `json:"body"`
	LinkURL     string `json:"link_url"`
	LinkText    string `json:"link_text"`
	IsActive    bool   `json:"is_active"`
	AnnouncedOn string `json:"announcement_date"`
}
