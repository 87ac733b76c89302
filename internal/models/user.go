package models

// User is an admin principal allowed to manage the wallet registry.
type User struct {
	ID           uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"column:username;size:80;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:200;not null"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
