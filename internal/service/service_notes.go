package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

type notesService struct {
	notesRepository store.NotesRepository
	uploadService   UploadService
	validator       validators.Validator
	ids             utils.IDGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewNotesService(notesRepository store.NotesRepository, uploadService UploadService, validator validators.Validator, logger *logger.Logger) NotesService {
	return &notesService{
		notesRepository: notesRepository,
		uploadService:   uploadService,
		validator:       validator,
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

// AddNotes publishes a notes entry with a generated slug. The image is
// optional. A taken title yields ErrAlreadyExists.
func (s *notesService) AddNotes(ctx context.Context, newNotes models.NewNotes, image *models.Upload) (models.Notes, error) {
	newNotes.Title = strings.TrimSpace(newNotes.Title)
	newNotes.Link = strings.TrimSpace(newNotes.Link)
	if err := s.validator.Validate(ctx, newNotes); err != nil {
		return models.Notes{}, err
	}

	var imageName string
	if image != nil {
		filename, err := s.uploadService.SaveImage(ctx, *image)
		if err != nil {
			return models.Notes{}, err
		}
		imageName = filename
	}

	now := s.now().UTC()
	notes := models.Notes{
		ID:         s.ids.Generate(),
		Title:      newNotes.Title,
		Slug:       utils.UniqueSlug(newNotes.Title),
		NotesLink:  newNotes.Link,
		NotesImage: imageName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.notesRepository.CreateNotes(ctx, notes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", notes.Title).Msg("error creating notes")
		if imageName != "" {
			s.uploadService.Discard(ctx, imageName)
		}
		return models.Notes{}, fromStoreError(err, "error creating notes")
	}

	return created, nil
}

func (s *notesService) ListNotes(ctx context.Context) ([]models.Notes, error) {
	notes, err := s.notesRepository.ListNotes(ctx)
	if err != nil {
		return nil, fromStoreError(err, "error listing notes")
	}

	return notes, nil
}
