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

type itemService struct {
	itemRepository store.ItemRepository
	uploadService  UploadService
	validator      validators.Validator
	ids            utils.IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, uploadService UploadService, validator validators.Validator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		uploadService:  uploadService,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// ReportItem stores images first and then inserts the item with status
// "reported". A taken item name yields ErrAlreadyExists.
func (s *itemService) ReportItem(ctx context.Context, identity models.Identity, newItem models.NewItem, images []models.Upload) (models.Item, error) {
	newItem.ItemName = strings.TrimSpace(newItem.ItemName)
	if err := s.validator.Validate(ctx, newItem); err != nil {
		return models.Item{}, err
	}

	stored := make([]models.ItemImage, 0, len(images))
	for _, img := range images {
		filename, err := s.uploadService.SaveImage(ctx, img)
		if err != nil {
			s.discardImages(ctx, stored)
			return models.Item{}, err
		}
		stored = append(stored, models.ItemImage{Img: filename})
	}

	now := s.now().UTC()
	item := models.Item{
		ID:          s.ids.Generate(),
		UserID:      identity.UserID,
		ItemName:    newItem.ItemName,
		Description: newItem.Description,
		ItemType:    newItem.ItemType,
		Question:    newItem.Question,
		ItemStatus:  models.ItemReported,
		Date:        now,
		Images:      stored,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("item_name", item.ItemName).Msg("error creating item")
		s.discardImages(ctx, stored)
		return models.Item{}, fromStoreError(err, "error creating item")
	}

	return created, nil
}

func (s *itemService) discardImages(ctx context.Context, images []models.ItemImage) {
	if len(images) == 0 {
		return
	}
	names := make([]string, 0, len(images))
	for _, img := range images {
		names = append(names, img.Img)
	}
	s.uploadService.Discard(ctx, names...)
}

func (s *itemService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}

	items, err := s.itemRepository.ListItems(ctx, filter)
	if err != nil {
		return nil, fromStoreError(err, "error listing items")
	}

	return items, nil
}
