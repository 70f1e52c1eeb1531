package domain

// User models a registered account. PasswordHash is never serialized and
// never leaves the store layer except for login verification.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"size:80;not null"`
	Surname      string `json:"surname" gorm:"size:80;not null"`
	Email        string `json:"email" gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:200;not null;column:password"`
}
