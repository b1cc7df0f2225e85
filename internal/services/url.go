package services

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/repositories"

	"github.com/pkg/errors"
)

// URLRepository описывает репозиторий для коротких ссылок.
type URLRepository interface {
	// Create создает запись в хранилище. Занятый короткий идентификатор —
	// repositories.ErrDuplicateKey.
	Create(ctx context.Context, sURL *models.URL) error
	// GetByShortIdentifier находит в хранилище запись по короткому идентификатору.
	GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error)
	// GetAllByUserID возвращает записи, принадлежащие пользователю.
	GetAllByUserID(ctx context.Context, userID string) ([]models.URL, error)
	// UpdateTargetURL перезаписывает целевой адрес записи.
	UpdateTargetURL(ctx context.Context, shortID string, newURL string) (*models.URL, error)
	// Delete удаляет запись.
	Delete(ctx context.Context, shortID string) error
}

// URLService сервис коротких ссылок. Кроме CRUD инкапсулирует правила доступа:
// читать запись по короткой ссылке может кто угодно, а просматривать в кабинете,
// менять и удалять — только владелец.
type URLService struct {
	urlRepo URLRepository
	genID   func() string
}

func NewURLService(urlRepo URLRepository) *URLService {
	return &URLService{
		urlRepo: urlRepo,
		genID: func() string {
			return generateShortIdentifier(models.ShortIdentifierLength)
		},
	}
}

// Create создает короткую ссылку от имени userID. Анонимам нельзя.
// Идентификатор подбирается с повтором при коллизии: проверку уникальности
// делает хранилище атомарно на вставке, поэтому гонки двух Create исключены.
func (u *URLService) Create(ctx context.Context, userID *string, rawURL string) (*models.URL, error) {
	if userID == nil || *userID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "create short url")
	}

	for range generateAttemptsMax {
		sURL := models.URL{
			URL:             rawURL,
			ShortIdentifier: u.genID(),
			UserID:          *userID,
		}
		if createErr := u.urlRepo.Create(ctx, &sURL); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				continue
			}
			return nil, ErrUnknown
		}
		return &sURL, nil
	}
	return nil, errors.Wrap(ErrIdentifierExhausted, "create short url")
}

// Get публичное чтение записи. Владельца не проверяем: переход по короткой
// ссылке не требует логина.
func (u *URLService) Get(ctx context.Context, shortID string) (*models.URL, error) {
	sURL, err := u.urlRepo.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "id %s not found", shortID)
		}
		return nil, ErrUnknown
	}
	return sURL, nil
}

// GetOwned чтение записи владельцем для кабинета. Сначала проверяется
// существование записи, потом владение: для чужой записи возвращается
// ErrForbidden, а не содержимое и не ErrRecordNotFound.
func (u *URLService) GetOwned(ctx context.Context, userID *string, shortID string) (*models.URL, error) {
	if userID == nil || *userID == "" {
		return nil, errors.Wrap(ErrUnauthenticated, "get owned short url")
	}
	sURL, err := u.Get(ctx, shortID)
	if err != nil {
		return nil, err
	}
	if sURL.UserID != *userID {
		return nil, errors.Wrapf(ErrForbidden, "id %s belongs to another user", shortID)
	}
	return sURL, nil
}

// Update меняет целевой адрес записи. Правила доступа как у GetOwned.
func (u *URLService) Update(ctx context.Context, userID *string, shortID string, newURL string) (*models.URL, error) {
	if _, err := u.GetOwned(ctx, userID, shortID); err != nil {
		return nil, err
	}
	sURL, updErr := u.urlRepo.UpdateTargetURL(ctx, shortID, newURL)
	if updErr != nil {
		if errors.Is(updErr, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "id %s not found", shortID)
		}
		return nil, ErrUnknown
	}
	return sURL, nil
}

// Delete удаляет запись. Правила доступа как у GetOwned. Повторное удаление
// того же идентификатора — ErrRecordNotFound, а не тихий успех.
func (u *URLService) Delete(ctx context.Context, userID *string, shortID string) error {
	if _, err := u.GetOwned(ctx, userID, shortID); err != nil {
		return err
	}
	if delErr := u.urlRepo.Delete(ctx, shortID); delErr != nil {
		if errors.Is(delErr, repositories.ErrNotFound) {
			return errors.Wrapf(ErrRecordNotFound, "id %s not found", shortID)
		}
		return ErrUnknown
	}
	return nil
}

// ListOwned возвращает все записи пользователя. Для анонима и для пользователя
// без записей — пустой срез, не ошибка.
func (u *URLService) ListOwned(ctx context.Context, userID *string) ([]models.URL, error) {
	if userID == nil || *userID == "" {
		return []models.URL{}, nil
	}
	urls, err := u.urlRepo.GetAllByUserID(ctx, *userID)
	if err != nil {
		return nil, ErrUnknown
	}
	if urls == nil {
		urls = []models.URL{}
	}
	return urls, nil
}

// Resolve возвращает целевой адрес для публичного редиректа. Отсутствие
// записи — штатный исход (битая или выдуманная ссылка), а не сбой.
func (u *URLService) Resolve(ctx context.Context, shortID string) (string, error) {
	sURL, err := u.Get(ctx, shortID)
	if err != nil {
		return "", err
	}
	return sURL.URL, nil
}
