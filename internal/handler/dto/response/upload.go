package response

import (
	"gaya-booking/internal/usecase"
)

type UploadResponse struct {
	PublicURL string `json:"public_url"`
	Path      string `json:"path"`
}

func NewUploadResponse(result *usecase.UploadResult) UploadResponse {
	return UploadResponse{
		PublicURL: result.PublicURL,
		Path:      result.Path,
	}
}
