package controllers

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
)

// ShortURLStore хранилище коротких ссылок с правилами доступа.
// userID == nil означает анонимный запрос.
type ShortURLStore interface {
	Create(ctx context.Context, userID *string, rawURL string) (*models.URL, error)
	Get(ctx context.Context, shortID string) (*models.URL, error)
	GetOwned(ctx context.Context, userID *string, shortID string) (*models.URL, error)
	Update(ctx context.Context, userID *string, shortID string, newURL string) (*models.URL, error)
	Delete(ctx context.Context, userID *string, shortID string) error
	ListOwned(ctx context.Context, userID *string) ([]models.URL, error)
	Resolve(ctx context.Context, shortID string) (string, error)
}

// UserStore хранилище аккаунтов.
type UserStore interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	VerifyCredentials(ctx context.Context, email string, password string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}
