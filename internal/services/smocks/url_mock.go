package smocks

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/stretchr/testify/mock"
)

type URLMock struct {
	mock.Mock
}

func (u *URLMock) Create(_ context.Context, userID *string, rawURL string) (*models.URL, error) {
	args := u.Called(userID, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Get(_ context.Context, shortID string) (*models.URL, error) {
	args := u.Called(shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) GetOwned(_ context.Context, userID *string, shortID string) (*models.URL, error) {
	args := u.Called(userID, shortID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Update(_ context.Context, userID *string, shortID string, newURL string) (*models.URL, error) {
	args := u.Called(userID, shortID, newURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Delete(_ context.Context, userID *string, shortID string) error {
	args := u.Called(userID, shortID)
	return args.Error(0) //nolint:wrapcheck,errcheck
}

func (u *URLMock) ListOwned(_ context.Context, userID *string) ([]models.URL, error) {
	args := u.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) Resolve(_ context.Context, shortID string) (string, error) {
	args := u.Called(shortID)
	return args.String(0), args.Error(1) //nolint:wrapcheck,errcheck
}
