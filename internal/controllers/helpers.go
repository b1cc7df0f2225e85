package controllers

import (
	"github.com/fsdevblog/tinyapp/internal/controllers/middlewares"
	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/gin-gonic/gin"
)

// actingUser возвращает пользователя текущей сессии (nil для анонима).
func actingUser(c *gin.Context) *models.User {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		return nil
	}
	return user
}

// actingUserID возвращает идентификатор пользователя текущей сессии.
// nil означает анонимный запрос.
func actingUserID(c *gin.Context) *string {
	user := actingUser(c)
	if user == nil {
		return nil
	}
	return &user.ID
}
