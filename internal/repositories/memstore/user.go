package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/fsdevblog/tinyapp/internal/db"
	"github.com/fsdevblog/tinyapp/internal/db/memory"
	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/repositories"
)

// UserRepo репозиторий пользователей в памяти. Ключом служит идентификатор пользователя.
type UserRepo struct {
	s *db.MemoryStorage
	// mu сериализует составную операцию Create: проверка уникальности email
	// и вставка должны быть атомарны относительно других Create.
	mu sync.Mutex
}

func NewUserRepo(store *db.MemoryStorage) *UserRepo {
	return &UserRepo{
		s: store,
	}
}

// Create создает нового пользователя. Занятый email — repositories.ErrDuplicateEmail,
// занятый идентификатор — repositories.ErrDuplicateKey.
func (u *UserRepo) Create(ctx context.Context, user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	existing, scanErr := memory.FilterAll[models.User](ctx, u.s.MStorage, func(val models.User) bool {
		return val.Email == user.Email
	})
	if scanErr != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", convertErrorType(scanErr))
	}
	if len(existing) > 0 {
		return repositories.ErrDuplicateEmail
	}

	if err := memory.Set[models.User](ctx, user.ID, user, u.s.MStorage); err != nil {
		return fmt.Errorf("failed to create user: %w", convertErrorType(err))
	}
	return nil
}

// GetByID получает пользователя по идентификатору.
func (u *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := memory.Get[models.User](ctx, id, u.s.MStorage)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get user by id %s: %w",
			id, convertErrorType(err),
		)
	}
	return user, nil
}

// GetByEmail находит пользователя по email. Сравнение регистрозависимое,
// линейный проход по хранилищу.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	data, err := memory.FilterAll[models.User](ctx, u.s.MStorage, func(val models.User) bool {
		return val.Email == email
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", convertErrorType(err))
	}
	if len(data) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &data[0], nil
}
