//go:build unit

package usecase

import (
	"context"
	"encoding/base64"
	"testing"

	"gaya-booking/internal/domain/property"
	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	puts   map[string][]byte
	putErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{puts: make(map[string][]byte)}
}

func (f *fakeObjectStore) Put(_ context.Context, path string, data []byte, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts[path] = data
	return nil
}

func (f *fakeObjectStore) PublicURL(path string) string {
	return "https://cdn.example.com/" + path
}

type uploadFixture struct {
	uc         *uploadUseCaseImpl
	store      *fakeObjectStore
	propertyID uuid.UUID
	host       user.Identity
}

func newUploadFixture() *uploadFixture {
	hostID := uuid.New()
	propertyID := uuid.New()
	store := newFakeObjectStore()

	return &uploadFixture{
		uc: &uploadUseCaseImpl{
			propertyRepo: &fakePropertyRepo{
				properties: map[uuid.UUID]*property.Property{
					propertyID: {
						ID:            propertyID,
						HostID:        hostID,
						Title:         "Seaside cottage",
						PricePerNight: 10000,
						Currency:      "usd",
					},
				},
			},
			store: store,
		},
		store:      store,
		propertyID: propertyID,
		host:       user.Identity{ID: hostID, Role: user.RoleHost},
	}
}

var pngContent = base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nfakeimagedata"))

func TestUploadPropertyImage(t *testing.T) {
	ctx := context.Background()

	t.Run("host uploads to a property-scoped path", func(t *testing.T) {
		f := newUploadFixture()

		result, err := f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "front.png", pngContent)
		require.NoError(t, err)

		expectedPath := f.propertyID.String() + "/front.png"
		assert.Equal(t, expectedPath, result.Path)
		assert.Equal(t, "https://cdn.example.com/"+expectedPath, result.PublicURL)
		assert.Contains(t, f.store.puts, expectedPath)
	})

	t.Run("re-upload of the same filename overwrites", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "front.png", pngContent)
		require.NoError(t, err)

		replacement := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\nnewimagedata"))
		_, err = f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "front.png", replacement)
		require.NoError(t, err)

		assert.Len(t, f.store.puts, 1)
		assert.Equal(t, []byte("\x89PNG\r\n\x1a\nnewimagedata"), f.store.puts[f.propertyID.String()+"/front.png"])
	})

	t.Run("guest is rejected before any storage access", func(t *testing.T) {
		f := newUploadFixture()
		guest := user.Identity{ID: uuid.New(), Role: user.RoleGuest}

		_, err := f.uc.UploadPropertyImage(ctx, guest, f.propertyID, "front.png", pngContent)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, f.store.puts)
	})

	t.Run("host cannot upload to someone else's property", func(t *testing.T) {
		f := newUploadFixture()
		otherHost := user.Identity{ID: uuid.New(), Role: user.RoleHost}

		_, err := f.uc.UploadPropertyImage(ctx, otherHost, f.propertyID, "front.png", pngContent)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, f.store.puts)
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.uc.UploadPropertyImage(ctx, f.host, uuid.New(), "front.png", pngContent)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
		assert.Empty(t, f.store.puts)
	})

	t.Run("missing filename", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "", pngContent)
		assert.ErrorIs(t, err, ErrMissingUploadFields)
		assert.Empty(t, f.store.puts)
	})

	t.Run("invalid base64", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "front.png", "not-base64!!!")
		assert.ErrorIs(t, err, ErrInvalidFileContent)
		assert.Empty(t, f.store.puts)
	})

	t.Run("empty payload", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "front.png", "")
		assert.ErrorIs(t, err, ErrInvalidFileContent)
	})

	t.Run("storage failure maps to upload failed", func(t *testing.T) {
		f := newUploadFixture()
		f.store.putErr = infra.WrapErr(infra.KindStorageFailure, "bucket unavailable", nil)

		_, err := f.uc.UploadPropertyImage(ctx, f.host, f.propertyID, "front.png", pngContent)
		assert.ErrorIs(t, err, ErrUploadFailed)
	})
}
