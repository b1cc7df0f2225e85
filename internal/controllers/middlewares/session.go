package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/tokens"
	"github.com/gin-gonic/gin"
)

const (
	CurrentUserKey           = "currentUser"
	SessionCookieName        = "user_id"
	SessionJWTExpireDuration = 24 * time.Hour
)

// UserFinder находит аккаунт по идентификатору из сессии.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// SessionMiddleware разбирает сессионную куку и кладет пользователя в контекст gin.
// Идентичность считается установленной только если токен валиден и такой аккаунт
// действительно существует: токен с несуществующим id оставляет запрос анонимным.
func SessionMiddleware(jwtSecret []byte, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCookie, err := c.Request.Cookie(SessionCookieName)

		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				_ = c.Error(fmt.Errorf("session middleware: %w", err))
			}
			c.Next()
			return
		}

		token, validateErr := tokens.ValidateSessionJWT(sessionCookie.Value, jwtSecret)
		if validateErr != nil || !token.Valid {
			// Токен битый либо просроченный. Считаем посетителя анонимом,
			// куку сбрасываем.
			if validateErr != nil {
				_ = c.Error(fmt.Errorf("session middleware: %w", validateErr))
			}
			ClearSessionCookie(c)
			c.Next()
			return
		}

		// Безопасная операция, т.к. проверка типа происходит в tokens.ValidateSessionJWT.
		userID := token.Claims.(*tokens.SessionClaims).UserID //nolint:errcheck

		user, findErr := users.FindByID(c.Request.Context(), userID)
		if findErr != nil {
			// Аккаунта с таким id нет. Кука есть, а идентичности нет.
			ClearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// SetSessionCookie выставляет сессионную куку для userID.
func SetSessionCookie(c *gin.Context, userID string, jwtSecret []byte) error {
	tokenString, err := tokens.GenerateSessionJWT(userID, SessionJWTExpireDuration, jwtSecret)
	if err != nil {
		return fmt.Errorf("set session cookie: %w", err)
	}
	c.SetCookie(
		SessionCookieName,
		tokenString,
		int(SessionJWTExpireDuration.Seconds()),
		"/",
		"",
		false,
		true,
	)
	return nil
}

// ClearSessionCookie сбрасывает сессионную куку.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// CurrentUser возвращает пользователя текущей сессии, если он установлен.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, castOK := val.(*models.User)
	return user, castOK
}
