package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-lost-found/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered with email or ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given id or ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// stored result. An email taken by another account yields ErrAlreadyExists.
	UpdateUser(ctx context.Context, update models.UserUpdate, updatedAt time.Time) (models.User, error)

	// ListUsers returns every account ordered by creation time.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ItemRepository persists lost and found items together with their images.
type ItemRepository interface {
	// CreateItem inserts item and its images atomically. A taken item name
	// yields ErrAlreadyExists; an unknown owner yields ErrNotFound.
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)

	// ListItems returns items matching filter, newest first.
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
}

// NotesRepository persists reference notes.
type NotesRepository interface {
	// CreateNotes inserts notes. A taken title yields ErrAlreadyExists.
	CreateNotes(ctx context.Context, notes models.Notes) (models.Notes, error)

	// ListNotes returns every notes entry, newest first.
	ListNotes(ctx context.Context) ([]models.Notes, error)
}

// UploadStorage keeps uploaded image files.
type UploadStorage interface {
	// Save stores body under a freshly generated name that keeps the
	// extension of originalName and returns that name.
	Save(ctx context.Context, originalName, contentType string, body io.Reader) (string, error)

	// Open returns the content of a stored file or ErrNotFound.
	Open(ctx context.Context, filename string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, filename string) error
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
