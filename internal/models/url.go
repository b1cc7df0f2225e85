package models

import "time"

// ShortIdentifierLength длина короткой ссылки.
const ShortIdentifierLength = 6

// URL структура модели хранения короткой ссылки.
type URL struct {
	ID              uint      `json:"ID"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	URL             string    `json:"url"`
	ShortIdentifier string    `json:"shortIdentifier" gorm:"uniqueIndex"`
	// UserID идентификатор пользователя, создавшего запись. Менять владельца нельзя.
	UserID string `json:"userID" gorm:"index"`
}
