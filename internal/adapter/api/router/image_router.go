package router

import (
	"github.com/labstack/echo/v4"

	"imagevault/internal/adapter/api/handler"
)

func SetupImageRouter(e *echo.Echo, imageHandler *handler.ImageHandler) {
	images := e.Group("/v1/images")

	images.POST("", imageHandler.Upload)
	images.GET("", imageHandler.List)
	images.GET("/:image_id", imageHandler.View)
	images.DELETE("/:image_id", imageHandler.Delete)
}
