package controllers

import (
	"github.com/fsdevblog/tinyapp/internal/config"
	"github.com/fsdevblog/tinyapp/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterParams struct {
	URLService  ShortURLStore
	UserService UserStore
	AppConf     config.Config
	Logger      *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))

	jwtSecret := []byte(params.AppConf.SessionSecret)
	r.Use(middlewares.SessionMiddleware(jwtSecret, params.UserService))

	r.SetHTMLTemplate(mustParseTemplates())

	urlsController := NewURLsController(params.URLService, params.AppConf.BaseURL)
	sessionsController := NewSessionsController(params.UserService, jwtSecret)
	usersController := NewUsersController(params.UserService, jwtSecret)

	r.GET("/", urlsController.Index)
	r.GET("/urls", urlsController.Index)
	r.GET("/urls/new", urlsController.New)
	r.POST("/urls", urlsController.Create)
	r.GET("/urls/:shortID", urlsController.Show)
	r.POST("/urls/:shortID", urlsController.Update)
	r.POST("/urls/:shortID/delete", urlsController.Destroy)

	r.GET("/u/:shortID", urlsController.Redirect)

	r.GET("/login", sessionsController.ShowLogin)
	r.POST("/login", sessionsController.Login)
	r.POST("/logout", sessionsController.Logout)
	r.GET("/register", usersController.ShowRegister)
	r.POST("/register", usersController.Register)

	return r
}
