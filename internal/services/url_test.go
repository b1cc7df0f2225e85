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

type URLServiceSuite struct {
	suite.Suite
	service *URLService
}

func (s *URLServiceSuite) SetupTest() {
	s.service = NewURLService(memstore.NewURLRepo(db.NewMemStorage()))
}

func strPtr(v string) *string {
	return &v
}

func (s *URLServiceSuite) TestCreate_RequiresAuth() {
	ctx := context.Background()

	_, err := s.service.Create(ctx, nil, gofakeit.URL())
	s.ErrorIs(err, ErrUnauthenticated)

	_, err = s.service.Create(ctx, strPtr(""), gofakeit.URL())
	s.ErrorIs(err, ErrUnauthenticated)
}

func (s *URLServiceSuite) TestCreate_RoundTrip() {
	ctx := context.Background()
	owner := "user01"
	target := gofakeit.URL()

	sURL, err := s.service.Create(ctx, &owner, target)
	s.Require().NoError(err)
	s.Len(sURL.ShortIdentifier, models.ShortIdentifierLength)

	got, getErr := s.service.Get(ctx, sURL.ShortIdentifier)
	s.Require().NoError(getErr)
	s.Equal(target, got.URL)
	s.Equal(owner, got.UserID)
}

func (s *URLServiceSuite) TestCreate_CollisionRetry() {
	ctx := context.Background()
	owner := "user01"

	// первая сгенерированная ссылка занимает идентификатор busy01
	s.service.genID = func() string { return "busy01" }
	_, err := s.service.Create(ctx, &owner, gofakeit.URL())
	s.Require().NoError(err)

	// вторая получает busy01 (коллизия) и на повторе free02
	ids := []string{"busy01", "free02"}
	s.service.genID = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}
	sURL, createErr := s.service.Create(ctx, &owner, gofakeit.URL())
	s.Require().NoError(createErr)
	s.Equal("free02", sURL.ShortIdentifier)
}

func (s *URLServiceSuite) TestCreate_IdentifierExhausted() {
	ctx := context.Background()
	owner := "user01"

	s.service.genID = func() string { return "busy01" }
	_, err := s.service.Create(ctx, &owner, gofakeit.URL())
	s.Require().NoError(err)

	_, err = s.service.Create(ctx, &owner, gofakeit.URL())
	s.ErrorIs(err, ErrIdentifierExhausted)
}

func (s *URLServiceSuite) TestGetOwned_Ownership() {
	ctx := context.Background()
	alice := "alice1"
	bob := "bob123"

	sURL, err := s.service.Create(ctx, &alice, "https://example.com")
	s.Require().NoError(err)

	// владелец видит запись
	got, ownErr := s.service.GetOwned(ctx, &alice, sURL.ShortIdentifier)
	s.Require().NoError(ownErr)
	s.Equal("https://example.com", got.URL)

	// чужая запись — ErrForbidden, содержимое не отдается
	_, forbErr := s.service.GetOwned(ctx, &bob, sURL.ShortIdentifier)
	s.ErrorIs(forbErr, ErrForbidden)

	// несуществующая запись — всегда ErrRecordNotFound, никогда ErrForbidden
	_, nfErr := s.service.GetOwned(ctx, &bob, "no-such")
	s.ErrorIs(nfErr, ErrRecordNotFound)
	s.NotErrorIs(nfErr, ErrForbidden)

	// аноним — ErrUnauthenticated
	_, anonErr := s.service.GetOwned(ctx, nil, sURL.ShortIdentifier)
	s.ErrorIs(anonErr, ErrUnauthenticated)

	// публичное чтение работает для любого
	pub, pubErr := s.service.Get(ctx, sURL.ShortIdentifier)
	s.Require().NoError(pubErr)
	s.Equal("https://example.com", pub.URL)
}

func (s *URLServiceSuite) TestUpdate() {
	ctx := context.Background()
	alice := "alice1"
	bob := "bob123"

	sURL, err := s.service.Create(ctx, &alice, gofakeit.URL())
	s.Require().NoError(err)

	newTarget := gofakeit.URL()
	upd, updErr := s.service.Update(ctx, &alice, sURL.ShortIdentifier, newTarget)
	s.Require().NoError(updErr)
	s.Equal(newTarget, upd.URL)
	s.Equal(alice, upd.UserID)

	got, getErr := s.service.Get(ctx, sURL.ShortIdentifier)
	s.Require().NoError(getErr)
	s.Equal(newTarget, got.URL)

	_, forbErr := s.service.Update(ctx, &bob, sURL.ShortIdentifier, gofakeit.URL())
	s.ErrorIs(forbErr, ErrForbidden)

	_, nfErr := s.service.Update(ctx, &alice, "no-such", gofakeit.URL())
	s.ErrorIs(nfErr, ErrRecordNotFound)

	_, anonErr := s.service.Update(ctx, nil, sURL.ShortIdentifier, gofakeit.URL())
	s.ErrorIs(anonErr, ErrUnauthenticated)
}

func (s *URLServiceSuite) TestDelete() {
	ctx := context.Background()
	alice := "alice1"
	bob := "bob123"

	sURL, err := s.service.Create(ctx, &alice, gofakeit.URL())
	s.Require().NoError(err)

	// чужую запись удалить нельзя, и она остается на месте
	s.ErrorIs(s.service.Delete(ctx, &bob, sURL.ShortIdentifier), ErrForbidden)
	_, stillErr := s.service.Get(ctx, sURL.ShortIdentifier)
	s.NoError(stillErr)

	s.Require().NoError(s.service.Delete(ctx, &alice, sURL.ShortIdentifier))
	_, goneErr := s.service.Get(ctx, sURL.ShortIdentifier)
	s.ErrorIs(goneErr, ErrRecordNotFound)

	// повторное удаление — ErrRecordNotFound, не тихий успех
	s.ErrorIs(s.service.Delete(ctx, &alice, sURL.ShortIdentifier), ErrRecordNotFound)

	s.ErrorIs(s.service.Delete(ctx, &alice, "no-such"), ErrRecordNotFound)
	s.ErrorIs(s.service.Delete(ctx, nil, "no-such"), ErrUnauthenticated)
}

func (s *URLServiceSuite) TestListOwned() {
	ctx := context.Background()
	alice := "alice1"
	bob := "bob123"
	carol := "carol1"

	aliceAliases := make(map[string]bool)
	for range 3 {
		sURL, err := s.service.Create(ctx, &alice, gofakeit.URL())
		s.Require().NoError(err)
		aliceAliases[sURL.ShortIdentifier] = true
	}
	_, bobErr := s.service.Create(ctx, &bob, gofakeit.URL())
	s.Require().NoError(bobErr)

	got, err := s.service.ListOwned(ctx, &alice)
	s.Require().NoError(err)
	s.Len(got, 3)
	for _, sURL := range got {
		s.Equal(alice, sURL.UserID)
		s.True(aliceAliases[sURL.ShortIdentifier])
	}

	// пользователь без записей и аноним получают пустой список, не ошибку
	empty, emptyErr := s.service.ListOwned(ctx, &carol)
	s.Require().NoError(emptyErr)
	s.Empty(empty)

	anon, anonErr := s.service.ListOwned(ctx, nil)
	s.Require().NoError(anonErr)
	s.Empty(anon)
}

func (s *URLServiceSuite) TestResolve() {
	ctx := context.Background()
	owner := "user01"
	target := "https://example.com"

	sURL, err := s.service.Create(ctx, &owner, target)
	s.Require().NoError(err)

	got, resErr := s.service.Resolve(ctx, sURL.ShortIdentifier)
	s.Require().NoError(resErr)
	s.Equal(target, got)

	_, nfErr := s.service.Resolve(ctx, "no-such")
	s.ErrorIs(nfErr, ErrRecordNotFound)
}

func TestURLServiceSuite(t *testing.T) {
	suite.Run(t, new(URLServiceSuite))
}
