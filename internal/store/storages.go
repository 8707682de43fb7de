package store

import (
	"context"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
)

// Storages groups every persistence dependency of the services.
type Storages struct {
	UserRepository  UserRepository
	ItemRepository  ItemRepository
	NotesRepository NotesRepository
	UploadStorage   UploadStorage
}

// NewStorages wires the SQL repositories on db together with uploads.
func NewStorages(db *DB, uploads UploadStorage) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, db.logger),
		ItemRepository:  NewItemRepository(db, db.logger),
		NotesRepository: NewNotesRepository(db, db.logger),
		UploadStorage:   uploads,
	}
}

// NewUploadStorage picks the S3 backend when a bucket is configured and the
// local directory backend otherwise.
func NewUploadStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (UploadStorage, error) {
	if cfg.S3.Enabled() {
		return NewS3UploadStorage(ctx, cfg.S3, log)
	}
	return NewLocalUploadStorage(cfg.Files.UploadsDir, log)
}
