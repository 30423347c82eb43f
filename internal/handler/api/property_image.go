package api

import (
	"errors"
	"net/http"

	reqdto "gaya-booking/internal/handler/dto/request"
	resdto "gaya-booking/internal/handler/dto/response"
	"gaya-booking/internal/handler/middleware"
	"gaya-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PropertyImageHandler struct {
	uploadUseCase usecase.UploadUseCase
}

func NewPropertyImageHandler(uploadUseCase usecase.UploadUseCase) *PropertyImageHandler {
	return &PropertyImageHandler{
		uploadUseCase: uploadUseCase,
	}
}

// @Summary Upload property image
// @Description Upload a base64-encoded image for a property the caller hosts
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UploadPropertyImageRequest true "Upload request"
// @Success 201 {object} resdto.UploadResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /property-images [post]
func (h *PropertyImageHandler) Upload(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UploadPropertyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.uploadUseCase.UploadPropertyImage(c.Request.Context(), identity, req.PropertyID, req.Filename, req.FileBase64)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to upload images for this property",
			})
		case errors.Is(err, usecase.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		case errors.Is(err, usecase.ErrMissingUploadFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Property ID and filename are required",
			})
		case errors.Is(err, usecase.ErrInvalidFileContent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "File content is missing or not valid base64",
			})
		case errors.Is(err, usecase.ErrUploadFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Upload failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.NewUploadResponse(result))
}
