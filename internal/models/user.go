package models

import "time"

// User структура модели зарегистрированного пользователя.
// Пароль храним только в виде bcrypt дайджеста.
type User struct {
	ID             string    `json:"ID" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	PasswordDigest string    `json:"passwordDigest"`
}
