package controllers

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/tinyapp/internal/controllers/middlewares"
	"github.com/fsdevblog/tinyapp/internal/services"

	"github.com/gin-gonic/gin"
)

type UsersController struct {
	userService UserStore
	jwtSecret   []byte
}

func NewUsersController(userService UserStore, jwtSecret []byte) *UsersController {
	return &UsersController{
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

// ShowRegister страница регистрации. Залогиненного отправляем в кабинет.
func (u *UsersController) ShowRegister(ctx *gin.Context) {
	if actingUser(ctx) != nil {
		ctx.Redirect(http.StatusFound, "/urls")
		return
	}
	ctx.HTML(http.StatusOK, "register.html", gin.H{})
}

// Register создает аккаунт и сразу логинит его.
func (u *UsersController) Register(ctx *gin.Context) {
	email := ctx.PostForm("email")
	password := ctx.PostForm("password")

	user, err := u.userService.Register(ctx.Request.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			ctx.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": MsgRegisterBlank})
		case errors.Is(err, services.ErrEmailTaken):
			ctx.HTML(http.StatusBadRequest, "register.html", gin.H{"Error": MsgEmailTaken})
		default:
			ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		}
		return
	}

	if cookieErr := middlewares.SetSessionCookie(ctx, user.ID, u.jwtSecret); cookieErr != nil {
		_ = ctx.Error(cookieErr)
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	ctx.Redirect(http.StatusFound, "/urls")
}
