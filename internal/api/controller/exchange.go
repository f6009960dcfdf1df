package controller

import (
	"bytes"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain/dto"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/service/exchange"
	"io"
	"net/http"
)

const maxUploadSize = 32 << 20

func (c *Controller) GetNorms(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.norms.All())
}

func (c *Controller) GetStatus(ctx echo.Context) error {
	status, err := c.exchange.Status(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, status)
}

func (c *Controller) Upload(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return fmt.Errorf("file: %s: %w", err.Error(), constants.ErrInvalidRequest)
	}
	if fh.Size > maxUploadSize {
		return fmt.Errorf("file %s is larger than %d bytes: %w", fh.Filename, maxUploadSize, constants.ErrInvalidRequest)
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	resp, err := c.exchange.Upload(ctx.Request().Context(), fh.Filename, data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func attachment(ctx echo.Context, name, contentType string, data []byte) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return ctx.Blob(http.StatusOK, contentType, data)
}

func (c *Controller) ExportZIP(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := c.exchange.WriteZIP(ctx.Request().Context(), &buf); err != nil {
		return err
	}

	return attachment(ctx, exchange.ArchiveName, exchange.ContentTypeZIP, buf.Bytes())
}

func (c *Controller) ExportXLSX(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := c.exchange.WriteXLSX(ctx.Request().Context(), &buf); err != nil {
		return err
	}

	return attachment(ctx, exchange.WorkbookName, exchange.ContentTypeXLSX, buf.Bytes())
}

func (c *Controller) PublishExport(ctx echo.Context) error {
	info, err := c.exchange.Publish(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, dto.PublishExportResponse{
		Key:  info.Key,
		Size: info.Size,
		URI:  info.URI,
	})
}

func (c *Controller) ListPublished(ctx echo.Context) error {
	list, err := c.exchange.Published(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, list)
}
