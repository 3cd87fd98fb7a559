package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"size:16;default:user"`
}

func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
