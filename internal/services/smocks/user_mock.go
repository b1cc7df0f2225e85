package smocks

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/stretchr/testify/mock"
)

type UserMock struct {
	mock.Mock
}

func (u *UserMock) Register(_ context.Context, email string, password string) (*models.User, error) {
	args := u.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) VerifyCredentials(_ context.Context, email string, password string) (*models.User, error) {
	args := u.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) FindByID(_ context.Context, id string) (*models.User, error) {
	args := u.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}
