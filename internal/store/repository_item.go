package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
)

type itemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewItemRepository constructs an [ItemRepository] over the "items" and
// "item_images" tables.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertItemQuery(item)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.classify(err)
		}

		if len(item.Images) == 0 {
			return nil
		}

		imgQuery, imgArgs, err := r.db.buildInsertItemImagesQuery(item.ID, item.Images)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, imgQuery, imgArgs...); err != nil {
			return r.db.classify(err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyExists) {
			log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error inserting item")
		}
		return models.Item{}, err
	}

	if item.Images == nil {
		item.Images = []models.ItemImage{}
	}
	return item, nil
}

// ListItems loads the matching items first and their images with a second
// query keyed by item id.
func (r *itemRepository) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectItemsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error querying items")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	index := make(map[string]int)
	for rows.Next() {
		var i models.Item
		if err := rows.Scan(&i.ID, &i.UserID, &i.ItemName, &i.Description, &i.ItemType, &i.Question,
			&i.ItemStatus, &i.Date, &i.CreatedAt, &i.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error scanning item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		i.Images = []models.ItemImage{}
		index[i.ID] = len(items)
		items = append(items, i)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(items) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}

	if err = r.attachImages(ctx, items, index, ids); err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("error loading item images")
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) attachImages(ctx context.Context, items []models.Item, index map[string]int, ids []string) error {
	query, args, err := r.db.buildSelectItemImagesQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return r.db.classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, filename string
		var position int
		if err := rows.Scan(&itemID, &position, &filename); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if i, ok := index[itemID]; ok {
			items[i].Images = append(items[i].Images, models.ItemImage{Img: filename})
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
