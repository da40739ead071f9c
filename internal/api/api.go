package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/domain/estimate"
	"github.com/Spok95/project-assistant/internal/domain/inventory"
	"github.com/Spok95/project-assistant/internal/domain/photos"
	"github.com/Spok95/project-assistant/internal/domain/projects"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/Spok95/project-assistant/internal/infra/blob"
	"github.com/labstack/echo/v4"
)

const maxPhotoSize = 10 << 20

type Deps struct {
	Users     *users.Service
	Tokens    *users.Tokens
	Estimates *estimate.Service
	Inventory *inventory.Repo
	Projects  *projects.Service
	Photos    *photos.Service
	Blobs     blob.Storage
	Location  *time.Location
	Log       *slog.Logger
}

// API — HTTP-обработчики поверх доменных сервисов.
type API struct {
	users     *users.Service
	tokens    *users.Tokens
	estimates *estimate.Service
	inventory *inventory.Repo
	projects  *projects.Service
	photos    *photos.Service
	blobs     blob.Storage
	loc       *time.Location
	log       *slog.Logger
	now       func() time.Time
}

func New(d Deps) *API {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return &API{
		users:     d.Users,
		tokens:    d.Tokens,
		estimates: d.Estimates,
		inventory: d.Inventory,
		projects:  d.Projects,
		photos:    d.Photos,
		blobs:     d.Blobs,
		loc:       loc,
		log:       d.Log,
		now:       time.Now,
	}
}

// Register вешает маршруты на echo.
func (a *API) Register(e *echo.Echo) {
	e.GET("/files/*", a.handleFile, a.requireAuth)

	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", a.handleRegister)
	v1.POST("/auth/login", a.handleLogin)
	v1.POST("/auth/logout", a.handleLogout, a.requireAuth)

	est := v1.Group("/estimates", a.optionalAuth)
	est.GET("/plaster", a.handlePlaster)
	est.GET("/paint", a.handlePaint)
	est.GET("/plaster.xlsx", a.handlePlasterXLSX)
	est.GET("/paint.xlsx", a.handlePaintXLSX)

	protected := v1.Group("", a.requireAuth)
	protected.GET("/inventory", a.handleGetInventory)
	protected.PUT("/inventory", a.handleSaveInventory)
	protected.POST("/inventory/items", a.handleAddMaterial)
	protected.GET("/projects", a.handleListProjects)
	protected.POST("/projects", a.handleCreateProject)
	protected.DELETE("/projects/:id", a.handleDeleteProject)
	protected.GET("/photos", a.handleListPhotos)
	protected.POST("/photos", a.handleUploadPhoto)
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// fail отдаёт ошибку как {"error": "..."} с кодом по её виду.
func (a *API) fail(c echo.Context, err error) error {
	status := statusFor(apperr.KindOf(err))
	if status >= http.StatusInternalServerError {
		a.log.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
	}
	return c.JSON(status, errorResponse{Error: apperr.Message(err)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}
