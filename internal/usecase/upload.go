package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrForbidden           = errors.New("caller may not act on this resource")
	ErrInvalidFileContent  = errors.New("file content is missing or not valid base64")
	ErrUploadFailed        = errors.New("object storage write failed")
	ErrMissingUploadFields = errors.New("property id and filename are required")
)

type UploadResult struct {
	PublicURL string
	Path      string
}

type UploadUseCase interface {
	UploadPropertyImage(ctx context.Context, identity user.Identity, propertyID uuid.UUID, filename, fileBase64 string) (*UploadResult, error)
}

type uploadUseCaseImpl struct {
	propertyRepo PropertyRepository
	store        ObjectStore
}

func NewUploadUseCase(propertyRepo PropertyRepository, store ObjectStore) UploadUseCase {
	return &uploadUseCaseImpl{
		propertyRepo: propertyRepo,
		store:        store,
	}
}

// UploadPropertyImage runs the full authorization guard before any storage
// effect: role check, then ownership check against the target property. The
// object key is namespaced by property id; re-uploading the same filename
// intentionally overwrites (hosts replace photos).
func (u *uploadUseCaseImpl) UploadPropertyImage(ctx context.Context, identity user.Identity, propertyID uuid.UUID, filename, fileBase64 string) (*UploadResult, error) {
	if !identity.IsHost() {
		return nil, ErrForbidden
	}

	if filename == "" {
		return nil, ErrMissingUploadFields
	}

	prop, err := u.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "failed to find property")
	}

	if !prop.IsOwnedBy(identity.ID) {
		return nil, ErrForbidden
	}

	data, err := base64.StdEncoding.DecodeString(fileBase64)
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidFileContent
	}

	path := propertyID.String() + "/" + filename

	if err := u.store.Put(ctx, path, data, http.DetectContentType(data)); err != nil {
		// Not retried; the caller resubmits if the write mattered.
		return nil, errs.Mark(err, ErrUploadFailed)
	}

	return &UploadResult{
		PublicURL: u.store.PublicURL(path),
		Path:      path,
	}, nil
}
