package controller

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shutterclub/photocontest/internal/domain/dto"
	"github.com/shutterclub/photocontest/internal/pkg/constants"
)

func (c *Controller) UploadPhoto(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "missing file field")
	}

	file, err := openUploadFile(fileHeader)
	if err != nil {
		return err
	}
	defer file.Reader.(multipart.File).Close()

	input := &dto.UploadPhotoInput{
		Title:       ctx.FormValue("title"),
		Description: ctx.FormValue("description"),
		CategoryIDs: parseCategoryIDs(ctx.FormValue("category_ids")),
		File:        file,
	}
	if input.Title == "" {
		return constants.NewCodedError(http.StatusBadRequest, "missing title")
	}

	photo, err := c.entryService.UploadPhoto(ctx.Request().Context(), mustProfile(ctx), input)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, photo)
}

func (c *Controller) UploadSeries(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "expected multipart form")
	}

	fileHeaders := form.File["files"]
	files := make([]dto.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := openUploadFile(fh)
		if err != nil {
			return err
		}
		defer file.Reader.(multipart.File).Close()
		files = append(files, file)
	}

	input := &dto.UploadSeriesInput{
		Title:       ctx.FormValue("title"),
		Description: ctx.FormValue("description"),
		CategoryIDs: parseCategoryIDs(ctx.FormValue("category_ids")),
		Files:       files,
	}
	if input.Title == "" {
		return constants.NewCodedError(http.StatusBadRequest, "missing title")
	}

	series, err := c.entryService.UploadSeries(ctx.Request().Context(), mustProfile(ctx), input)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, series)
}

func openUploadFile(fh *multipart.FileHeader) (dto.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.UploadFile{}, constants.NewCodedError(http.StatusBadRequest, "unreadable file part")
	}

	return dto.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, nil
}

// parseCategoryIDs reads a comma-separated form value; unparsable items are
// skipped.
func parseCategoryIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
			ids = append(ids, id)
		}
	}

	return ids
}

func (c *Controller) MyWorks(ctx echo.Context) error {
	cards, err := c.entryService.MyWorks(ctx.Request().Context(), mustProfile(ctx).ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, cards)
}

func (c *Controller) EntryDetail(ctx echo.Context) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	detail, err := c.entryService.Detail(ctx.Request().Context(), id, viewerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, detail)
}

func (c *Controller) DeleteEntry(ctx echo.Context) error {
	id, err := entryID(ctx)
	if err != nil {
		return err
	}

	if err := c.entryService.Delete(ctx.Request().Context(), id, mustProfile(ctx).ID); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func entryID(ctx echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return uuid.Nil, constants.NewCodedError(http.StatusBadRequest, "bad entry id")
	}
	return id, nil
}
