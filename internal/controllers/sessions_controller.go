package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/tinyapp/internal/controllers/middlewares"
	"github.com/fsdevblog/tinyapp/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionsController struct {
	userService UserStore
	jwtSecret   []byte
}

func NewSessionsController(userService UserStore, jwtSecret []byte) *SessionsController {
	return &SessionsController{
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

// ShowLogin страница логина. Залогиненного отправляем в кабинет.
func (s *SessionsController) ShowLogin(ctx *gin.Context) {
	if actingUser(ctx) != nil {
		ctx.Redirect(http.StatusFound, "/urls")
		return
	}
	ctx.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login проверяет учетные данные и выставляет сессионную куку.
// Неизвестный email и неверный пароль дают один и тот же ответ.
func (s *SessionsController) Login(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	user, err := s.userService.VerifyCredentials(ctx.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.HTML(http.StatusForbidden, "login.html", gin.H{"Error": MsgInvalidCredentials})
			return
		}
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	if cookieErr := middlewares.SetSessionCookie(ctx, user.ID, s.jwtSecret); cookieErr != nil {
		_ = ctx.Error(cookieErr)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	ctx.Redirect(http.StatusFound, "/urls")
}

// Logout сбрасывает сессионную куку.
func (s *SessionsController) Logout(ctx *gin.Context) {
	middlewares.ClearSessionCookie(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
