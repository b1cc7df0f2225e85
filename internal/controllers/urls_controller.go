package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/fsdevblog/tinyapp/internal/models"
	"github.com/fsdevblog/tinyapp/internal/services"

	"github.com/gin-gonic/gin"
)

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

// URLView представление короткой ссылки для шаблонов.
type URLView struct {
	ShortIdentifier string
	ShortURL        string
	TargetURL       string
}

type URLsController struct {
	urlService ShortURLStore
	baseURL    *url.URL
}

func NewURLsController(urlService ShortURLStore, baseURL *url.URL) *URLsController {
	return &URLsController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// Index список ссылок текущего пользователя. Анониму вместо списка показываем
// приглашение залогиниться.
func (u *URLsController) Index(ctx *gin.Context) {
	user := actingUser(ctx)

	data := gin.H{"CurrentUser": user}
	if user == nil {
		data["AuthError"] = MsgMustLogInView
		ctx.HTML(http.StatusOK, "urls_index.html", data)
		return
	}

	urls, err := u.urlService.ListOwned(ctx.Request.Context(), &user.ID)
	if err != nil {
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}
	data["URLs"] = u.viewURLs(ctx.Request, urls)
	ctx.HTML(http.StatusOK, "urls_index.html", data)
}

// New форма создания короткой ссылки. Аноним отправляется на логин.
func (u *URLsController) New(ctx *gin.Context) {
	user := actingUser(ctx)
	if user == nil {
		ctx.Redirect(http.StatusFound, "/login")
		return
	}
	ctx.HTML(http.StatusOK, "urls_new.html", gin.H{"CurrentUser": user})
}

// Create принимает форму с целевой ссылкой и создает короткую.
func (u *URLsController) Create(ctx *gin.Context) {
	parsedURL, parseErr := validateURL(ctx.PostForm("longURL"))
	if parseErr != nil {
		ctx.String(http.StatusUnprocessableEntity, parseErr.Error())
		return
	}

	sURL, createErr := u.urlService.Create(ctx.Request.Context(), actingUserID(ctx), parsedURL.String())
	if createErr != nil {
		u.renderStoreError(ctx, createErr)
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/urls/%s", sURL.ShortIdentifier))
}

// Show страница ссылки для владельца.
func (u *URLsController) Show(ctx *gin.Context) {
	sURL, err := u.urlService.GetOwned(ctx.Request.Context(), actingUserID(ctx), ctx.Param("shortID"))
	if err != nil {
		u.renderStoreError(ctx, err)
		return
	}
	ctx.HTML(http.StatusOK, "urls_show.html", gin.H{
		"CurrentUser": actingUser(ctx),
		"URL":         u.viewURL(ctx.Request, *sURL),
	})
}

// Update меняет целевой адрес ссылки. Доступно только владельцу.
func (u *URLsController) Update(ctx *gin.Context) {
	parsedURL, parseErr := validateURL(ctx.PostForm("longURL"))
	if parseErr != nil {
		ctx.String(http.StatusUnprocessableEntity, parseErr.Error())
		return
	}

	sURL, err := u.urlService.Update(
		ctx.Request.Context(),
		actingUserID(ctx),
		ctx.Param("shortID"),
		parsedURL.String(),
	)
	if err != nil {
		u.renderStoreError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, fmt.Sprintf("/urls/%s", sURL.ShortIdentifier))
}

// Destroy удаляет ссылку. Доступно только владельцу.
func (u *URLsController) Destroy(ctx *gin.Context) {
	err := u.urlService.Delete(ctx.Request.Context(), actingUserID(ctx), ctx.Param("shortID"))
	if err != nil {
		u.renderStoreError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, "/urls")
}

// Redirect публичный переход по короткой ссылке, логина не требует.
func (u *URLsController) Redirect(ctx *gin.Context) {
	sIdentifier := ctx.Param("shortID")

	if len(sIdentifier) != models.ShortIdentifierLength {
		u.renderNotFound(ctx)
		return
	}

	target, err := u.urlService.Resolve(ctx.Request.Context(), sIdentifier)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			u.renderNotFound(ctx)
			return
		}
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, target)
}

// renderStoreError отображает ошибки хранилища ссылок. Чужая запись и
// отсутствующая запись дают разные ответы: 403 и 404 соответственно.
func (u *URLsController) renderStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		ctx.String(http.StatusForbidden, MsgMustLogIn)
	case errors.Is(err, services.ErrForbidden):
		ctx.String(http.StatusForbidden, MsgForbidden)
	case errors.Is(err, services.ErrRecordNotFound):
		u.renderNotFound(ctx)
	default:
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
	}
}

func (u *URLsController) renderNotFound(ctx *gin.Context) {
	ctx.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"CurrentUser": actingUser(ctx),
		"Message":     MsgInvalidAddress,
	})
}

func (u *URLsController) viewURLs(r *http.Request, urls []models.URL) []URLView {
	views := make([]URLView, 0, len(urls))
	for _, sURL := range urls {
		views = append(views, u.viewURL(r, sURL))
	}
	return views
}

func (u *URLsController) viewURL(r *http.Request, sURL models.URL) URLView {
	return URLView{
		ShortIdentifier: sURL.ShortIdentifier,
		ShortURL:        u.getShortURL(r, sURL.ShortIdentifier),
		TargetURL:       sURL.URL,
	}
}

// getShortURL вспомогательный метод который создает короткую ссылку.
func (u *URLsController) getShortURL(r *http.Request, shortID string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if u.baseURL == nil {
		return fmt.Sprintf("%s://%s/u/%s", scheme, r.Host, shortID)
	}
	return fmt.Sprintf("%s/u/%s", u.baseURL, shortID)
}

// validateURL проверяет, является ли строка корректным URL.
func validateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)

	if err != nil {
		return nil, errors.New("invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return nil, errors.New("URL must have a host")
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, errors.New("invalid hostname")
	}

	return parsedURL, nil
}
