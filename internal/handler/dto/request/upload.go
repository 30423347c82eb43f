package request

import (
	"github.com/google/uuid"
)

type UploadPropertyImageRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Filename   string    `json:"filename" binding:"required"`
	FileBase64 string    `json:"file_base64" binding:"required"`
}
