package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
)

// TokenService issues and verifies signed identity tokens.
type TokenService interface {
	// Issue signs a token for userID and role. A zero ttl yields a token
	// without expiry.
	Issue(ctx context.Context, userID string, role models.Role, ttl time.Duration) (models.Token, error)

	// Verify checks the signature first and the expiry second. Failures are
	// ErrInvalidToken or ErrExpiredToken, both wrapping ErrUnauthenticated.
	Verify(ctx context.Context, token string) (models.Identity, error)
}

// AccountService implements signup, signin and profile management for both
// roles.
type AccountService interface {
	Signup(ctx context.Context, role models.Role, req models.SignupRequest) (models.AuthResult, error)
	Signin(ctx context.Context, role models.Role, req models.SigninRequest) (models.AuthResult, error)
	Signout(ctx context.Context) models.MessageResponse

	Profile(ctx context.Context, identity models.Identity) (models.PublicUser, error)

	// UpdateProfile applies the non-nil fields of update to the account of
	// identity. A non-nil picture is stored and becomes the profile picture.
	UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate, picture *models.Upload) (models.PublicUser, error)

	ListUsers(ctx context.Context) ([]models.PublicUser, error)
}

type ItemService interface {
	ReportItem(ctx context.Context, identity models.Identity, item models.NewItem, images []models.Upload) (models.Item, error)
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
}

type NotesService interface {
	AddNotes(ctx context.Context, notes models.NewNotes, image *models.Upload) (models.Notes, error)
	ListNotes(ctx context.Context) ([]models.Notes, error)
}

// UploadService accepts image uploads and serves stored files.
type UploadService interface {
	// SaveImage checks that upload is an image within the size limit and
	// returns the stored filename.
	SaveImage(ctx context.Context, upload models.Upload) (string, error)

	Open(ctx context.Context, filename string) (io.ReadCloser, error)

	// Discard removes files stored by SaveImage whose owning record could
	// not be written. Failures are logged and otherwise ignored.
	Discard(ctx context.Context, filenames ...string)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
