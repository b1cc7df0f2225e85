package services

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/tinyapp/internal/db"
	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/repositories/memstore"
)

type UserServiceSuite struct {
	suite.Suite
	service *UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.service = NewUserService(memstore.NewUserRepo(db.NewMemStorage()))
}

func (s *UserServiceSuite) TestRegister_AndVerify() {
	ctx := context.Background()
	email := gofakeit.Email()
	password := gofakeit.Password(true, true, true, false, false, 12)

	user, err := s.service.Register(ctx, email, password)
	s.Require().NoError(err)
	s.Len(user.ID, models.ShortIdentifierLength)
	s.Equal(email, user.Email)
	// в открытом виде пароль не хранится
	s.NotEmpty(user.PasswordDigest)
	s.NotEqual(password, user.PasswordDigest)

	verified, verErr := s.service.VerifyCredentials(ctx, email, password)
	s.Require().NoError(verErr)
	s.Equal(user.ID, verified.ID)
}

func (s *UserServiceSuite) TestRegister_BlankFields() {
	ctx := context.Background()

	_, err := s.service.Register(ctx, "", gofakeit.Password(true, true, true, false, false, 12))
	s.ErrorIs(err, ErrValidation)

	_, err = s.service.Register(ctx, gofakeit.Email(), "")
	s.ErrorIs(err, ErrValidation)
}

func (s *UserServiceSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	email := gofakeit.Email()

	first, err := s.service.Register(ctx, email, "secret1")
	s.Require().NoError(err)

	_, dupErr := s.service.Register(ctx, email, "secret2")
	s.ErrorIs(dupErr, ErrEmailTaken)

	// аккаунт остался прежним
	got, findErr := s.service.FindByEmail(ctx, email)
	s.Require().NoError(findErr)
	s.Equal(first.ID, got.ID)
}

func (s *UserServiceSuite) TestRegister_IDCollision() {
	ctx := context.Background()

	s.service.genID = func() string { return "same01" }

	_, err := s.service.Register(ctx, gofakeit.Email(), "secret1")
	s.Require().NoError(err)

	// генератор упорно выдает занятый идентификатор
	_, collErr := s.service.Register(ctx, gofakeit.Email(), "secret2")
	s.ErrorIs(collErr, ErrIdentifierExhausted)
}

func (s *UserServiceSuite) TestVerifyCredentials_UniformError() {
	ctx := context.Background()
	email := gofakeit.Email()

	_, err := s.service.Register(ctx, email, "secret1")
	s.Require().NoError(err)

	// неизвестный email и неверный пароль неразличимы по виду ошибки
	_, unknownErr := s.service.VerifyCredentials(ctx, gofakeit.Email(), "secret1")
	s.ErrorIs(unknownErr, ErrInvalidCredentials)

	_, wrongErr := s.service.VerifyCredentials(ctx, email, "wrong-password")
	s.ErrorIs(wrongErr, ErrInvalidCredentials)

	s.Equal(unknownErr.Error(), wrongErr.Error())
}

func (s *UserServiceSuite) TestEmailIsCaseSensitive() {
	ctx := context.Background()

	_, err := s.service.Register(ctx, "Alice@example.com", "secret1")
	s.Require().NoError(err)

	_, verErr := s.service.VerifyCredentials(ctx, "alice@example.com", "secret1")
	s.ErrorIs(verErr, ErrInvalidCredentials)

	_, findErr := s.service.FindByEmail(ctx, "alice@example.com")
	s.ErrorIs(findErr, ErrRecordNotFound)

	// другой регистр — другой email, регистрация проходит
	_, regErr := s.service.Register(ctx, "alice@example.com", "secret2")
	s.NoError(regErr)
}

func (s *UserServiceSuite) TestFindByID() {
	ctx := context.Background()

	user, err := s.service.Register(ctx, gofakeit.Email(), "secret1")
	s.Require().NoError(err)

	got, findErr := s.service.FindByID(ctx, user.ID)
	s.Require().NoError(findErr)
	s.Equal(user.Email, got.Email)

	_, nfErr := s.service.FindByID(ctx, "no-such")
	s.ErrorIs(nfErr, ErrRecordNotFound)
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}
