package memstore

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tinyapp/internal/db"
	"github.com/fsdevblog/tinyapp/internal/db/memory"
	"github.com/fsdevblog/tinyapp/internal/models"
)

// URLRepo репозиторий коротких ссылок в памяти. Ключом служит короткий идентификатор.
type URLRepo struct {
	s *db.MemoryStorage
}

func NewURLRepo(store *db.MemoryStorage) *URLRepo {
	return &URLRepo{
		s: store,
	}
}

// Create создает новую запись. Уникальность короткого идентификатора
// гарантируется хранилищем: вставка по занятому ключу вернет
// repositories.ErrDuplicateKey.
func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) error {
	if err := memory.Set[models.URL](ctx, sURL.ShortIdentifier, sURL, u.s.MStorage); err != nil {
		return fmt.Errorf("failed to create record: %w", convertErrorType(err))
	}
	return nil
}

// GetByShortIdentifier получает запись по короткому идентификатору.
func (u *URLRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	url, err := memory.Get[models.URL](ctx, shortID, u.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by short identifier %s: %w",
			shortID, convertErrorType(err),
		)
	}
	return url, nil
}

// GetAllByUserID получает все записи, принадлежащие пользователю.
func (u *URLRepo) GetAllByUserID(ctx context.Context, userID string) ([]models.URL, error) {
	data, err := memory.FilterAll[models.URL](ctx, u.s.MStorage, func(val models.URL) bool {
		if val.UserID == "" {
			return false
		}
		return val.UserID == userID
	})
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get records by user id %s: %w",
			userID, convertErrorType(err),
		)
	}
	return data, nil
}

// UpdateTargetURL перезаписывает целевой адрес существующей записи.
// Владельца и короткий идентификатор запись сохраняет.
func (u *URLRepo) UpdateTargetURL(ctx context.Context, shortID string, newURL string) (*models.URL, error) {
	sURL, getErr := u.GetByShortIdentifier(ctx, shortID)
	if getErr != nil {
		return nil, getErr
	}
	sURL.URL = newURL
	if err := memory.Update[models.URL](ctx, shortID, sURL, u.s.MStorage); err != nil {
		return nil, fmt.Errorf(
			"failed to update record %s: %w",
			shortID, convertErrorType(err),
		)
	}
	return sURL, nil
}

// Delete удаляет запись. Отсутствие записи — repositories.ErrNotFound.
func (u *URLRepo) Delete(ctx context.Context, shortID string) error {
	if err := memory.Delete(ctx, shortID, u.s.MStorage); err != nil {
		return fmt.Errorf(
			"failed to delete record %s: %w",
			shortID, convertErrorType(err),
		)
	}
	return nil
}
