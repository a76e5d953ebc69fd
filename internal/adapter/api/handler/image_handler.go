package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"imagevault/internal/domain/entity"
	"imagevault/internal/usecase"
	"imagevault/pkg/errors"
	"imagevault/pkg/logger"
	"imagevault/pkg/response"
)

const defaultListLimit = 50

type ImageHandler struct {
	imageUseCase *usecase.ImageUseCase
}

func NewImageHandler(imageUseCase *usecase.ImageUseCase) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
	}
}

type uploadRequest struct {
	Filename    string            `json:"filename" validate:"required"`
	ContentType string            `json:"content_type"`
	ImageBase64 string            `json:"image_base64" validate:"required"`
	UserID      string            `json:"user_id" validate:"required"`
	Tags        []string          `json:"tags"`
	Metadata    map[string]string `json:"metadata"`
}

type listResponse struct {
	Count int             `json:"count"`
	Items []*entity.Image `json:"items"`
}

func (h *ImageHandler) Upload(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.imageUseCase.Upload(c.Request().Context(), usecase.UploadInput{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		ImageBase64: req.ImageBase64,
		UserID:      req.UserID,
		Tags:        req.Tags,
		Metadata:    req.Metadata,
	})
	if err != nil {
		logger.Error("Upload failed for user %s: %v", req.UserID, err)
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ImageHandler) List(c echo.Context) error {
	userID := c.QueryParam("user_id")
	tag := c.QueryParam("tag")

	limit := defaultListLimit
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			return response.Error(c, errors.BadRequest("Invalid limit: must be a positive integer", err))
		}
		limit = n
	}

	images, err := h.imageUseCase.List(c.Request().Context(), userID, tag, limit)
	if err != nil {
		logger.Error("List failed: %v", err)
		return response.Error(c, err)
	}

	if images == nil {
		images = []*entity.Image{}
	}
	return response.Success(c, listResponse{
		Count: len(images),
		Items: images,
	})
}

func (h *ImageHandler) View(c echo.Context) error {
	imageID := c.Param("image_id")
	if imageID == "" {
		return response.Error(c, errors.BadRequest("Missing path param: image_id", nil))
	}

	result, err := h.imageUseCase.View(c.Request().Context(), imageID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			logger.Error("View failed for image %s: %v", imageID, err)
		}
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ImageHandler) Delete(c echo.Context) error {
	imageID := c.Param("image_id")
	if imageID == "" {
		return response.Error(c, errors.BadRequest("Missing path param: image_id", nil))
	}

	result, err := h.imageUseCase.Delete(c.Request().Context(), imageID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			logger.Error("Delete failed for image %s: %v", imageID, err)
		}
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
