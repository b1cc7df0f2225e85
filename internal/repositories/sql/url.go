package sql

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type URLRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewURLRepo(db *gorm.DB, logger *logrus.Logger) *URLRepo {
	return &URLRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/url"),
	}
}

func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) error {
	if err := u.db.WithContext(ctx).Create(sURL).Error; err != nil {
		u.logger.WithError(err).Debugf("failed to create record %+v", *sURL)
		return errors.Wrap(convertErrorType(err), "failed to create record")
	}
	return nil
}

func (u *URLRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	var url models.URL
	err := u.db.WithContext(ctx).Where("short_identifier = ?", shortID).First(&url).Error
	if err != nil {
		return nil, errors.Wrapf(
			convertErrorType(err),
			"failed to get record by short identifier %s", shortID,
		)
	}
	return &url, nil
}

func (u *URLRepo) GetAllByUserID(ctx context.Context, userID string) ([]models.URL, error) {
	var urls []models.URL
	err := u.db.WithContext(ctx).Where("user_id = ?", userID).Find(&urls).Error
	if err != nil {
		return nil, errors.Wrapf(
			convertErrorType(err),
			"failed to get records by user id %s", userID,
		)
	}
	return urls, nil
}

func (u *URLRepo) UpdateTargetURL(ctx context.Context, shortID string, newURL string) (*models.URL, error) {
	sURL, getErr := u.GetByShortIdentifier(ctx, shortID)
	if getErr != nil {
		return nil, getErr
	}
	sURL.URL = newURL
	if err := u.db.WithContext(ctx).Save(sURL).Error; err != nil {
		return nil, errors.Wrapf(convertErrorType(err), "failed to update record %s", shortID)
	}
	return sURL, nil
}

func (u *URLRepo) Delete(ctx context.Context, shortID string) error {
	res := u.db.WithContext(ctx).Where("short_identifier = ?", shortID).Delete(&models.URL{})
	if res.Error != nil {
		return errors.Wrapf(convertErrorType(res.Error), "failed to delete record %s", shortID)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(convertErrorType(gorm.ErrRecordNotFound), "failed to delete record %s", shortID)
	}
	return nil
}
