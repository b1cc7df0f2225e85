package sql

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewUserRepo(db *gorm.DB, logger *logrus.Logger) *UserRepo {
	return &UserRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/user"),
	}
}

func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	// gorm с TranslateError не сообщает какой именно индекс нарушен, поэтому
	// занятость email проверяем отдельным запросом до вставки. Уникальный
	// индекс в схеме остается последним рубежом.
	if _, err := u.GetByEmail(ctx, user.Email); err == nil {
		return repositories.ErrDuplicateEmail
	}

	if err := u.db.WithContext(ctx).Create(user).Error; err != nil {
		u.logger.WithError(err).Debugf("failed to create user %s", user.Email)
		return errors.Wrap(convertErrorType(err), "failed to create user")
	}
	return nil
}

func (u *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, errors.Wrapf(convertErrorType(err), "failed to get user by id %s", id)
	}
	return &user, nil
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.Wrap(convertErrorType(err), "failed to get user by email")
	}
	return &user, nil
}
