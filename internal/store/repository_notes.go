package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
)

type notesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNotesRepository constructs a [NotesRepository] over the "notes" table.
func NewNotesRepository(db *DB, logger *logger.Logger) NotesRepository {
	logger.Debug().Msg("creating notes repository")
	return &notesRepository{
		db:     db,
		logger: logger,
	}
}

func (r *notesRepository) CreateNotes(ctx context.Context, notes models.Notes) (models.Notes, error) {
	query, args, err := r.db.buildInsertNotesQuery(notes)
	if err != nil {
		return models.Notes{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = r.db.classify(err)
		if !errors.Is(err, ErrAlreadyExists) {
			logger.FromContext(ctx).Err(err).Str("func", "*notesRepository.CreateNotes").Msg("error inserting notes")
		}
		return models.Notes{}, err
	}

	return notes, nil
}

func (r *notesRepository) ListNotes(ctx context.Context) ([]models.Notes, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListNotesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notesRepository.ListNotes").Msg("error querying notes")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	notes := make([]models.Notes, 0)
	for rows.Next() {
		var n models.Notes
		if err := rows.Scan(&n.ID, &n.Title, &n.Slug, &n.NotesLink, &n.NotesImage, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}
