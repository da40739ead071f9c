package api

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/infra/blob"
	"github.com/Spok95/project-assistant/internal/infra/docstore"
	"github.com/labstack/echo/v4"
)

func (a *API) handleListPhotos(c echo.Context) error {
	list, err := a.photos.List(c.Request().Context(), uidOf(c))
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (a *API) handleUploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if fh.Size > maxPhotoSize {
		return badRequest(c, "file is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "file is unreadable")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxPhotoSize))
	if err != nil {
		return badRequest(c, "file is unreadable")
	}

	ph, err := a.photos.Upload(c.Request().Context(), uidOf(c), fh.Filename, data, a.now().In(a.loc))
	if err != nil {
		return a.fail(c, err)
	}
	return c.JSON(http.StatusCreated, ph)
}

// handleFile отдаёт файл по ссылке, выданной DownloadURL. Читать можно
// только файлы под users/<uid>/ владельца токена; чужие выглядят как отсутствующие.
func (a *API) handleFile(c echo.Context) error {
	raw, err := url.PathUnescape(c.Param("*"))
	if err != nil {
		return a.fail(c, apperr.Invalid("invalid file path"))
	}
	p, err := blob.CleanPath(raw)
	if err != nil {
		return a.fail(c, err)
	}
	if !strings.HasPrefix(p, docstore.Path("users", uidOf(c))+"/") {
		return a.fail(c, blob.ErrNotFound)
	}
	obj, err := a.blobs.Open(c.Request().Context(), p)
	if err != nil {
		return a.fail(c, err)
	}
	return c.Blob(http.StatusOK, obj.ContentType, obj.Data)
}
