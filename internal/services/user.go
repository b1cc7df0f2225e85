package services

import (
	"context"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/repositories"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository описывает репозиторий для пользователей.
type UserRepository interface {
	// Create создает пользователя. Занятый email — repositories.ErrDuplicateEmail,
	// занятый идентификатор — repositories.ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) error
	// GetByID находит пользователя по идентификатору.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail находит пользователя по email (регистрозависимо).
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService сервис аккаунтов: регистрация и проверка учетных данных.
// Пароли наружу не отдаются и в открытом виде не хранятся.
type UserService struct {
	userRepo UserRepository
	genID    func() string
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		genID: func() string {
			return generateShortIdentifier(models.ShortIdentifierLength)
		},
	}
}

// Register создает аккаунт. Пустые email или пароль — ErrValidation, занятый
// email — ErrEmailTaken. Идентификатор берется из того же генератора, что и
// короткие ссылки, с повтором при коллизии.
func (s *UserService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.Wrap(ErrValidation, "email and password are required")
	}

	digest, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if hashErr != nil {
		return nil, ErrUnknown
	}

	for range generateAttemptsMax {
		user := models.User{
			ID:             s.genID(),
			Email:          email,
			PasswordDigest: string(digest),
		}
		if createErr := s.userRepo.Create(ctx, &user); createErr != nil {
			switch {
			case errors.Is(createErr, repositories.ErrDuplicateEmail):
				return nil, errors.Wrap(ErrEmailTaken, email)
			case errors.Is(createErr, repositories.ErrDuplicateKey):
				continue
			default:
				return nil, ErrUnknown
			}
		}
		return &user, nil
	}
	return nil, errors.Wrap(ErrIdentifierExhausted, "register user")
}

// VerifyCredentials проверяет пару email/пароль. Неизвестный email и неверный
// пароль дают одну и ту же ErrInvalidCredentials.
func (s *UserService) VerifyCredentials(ctx context.Context, email string, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrUnknown
	}
	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)); cmpErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// FindByID находит пользователя по идентификатору.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "user %s not found", id)
		}
		return nil, ErrUnknown
	}
	return user, nil
}

// FindByEmail находит пользователя по email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrap(ErrRecordNotFound, "user not found")
		}
		return nil, ErrUnknown
	}
	return user, nil
}
