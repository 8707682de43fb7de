package service

import (
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/crypto"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/validators"
)

type Services struct {
	TokenService   TokenService
	AccountService AccountService
	ItemService    ItemService
	NotesService   NotesService
	UploadService  UploadService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()
	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)

	tokenService := NewTokenService(cfg.App, logger)
	uploadService := NewUploadService(storages.UploadStorage, cfg.Storage.Files, logger)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TokenService:   tokenService,
		AccountService: NewAccountService(storages.UserRepository, hasher, tokenService, uploadService, validator, cfg.App, logger),
		ItemService:    NewItemService(storages.ItemRepository, uploadService, validator, logger),
		NotesService:   NewNotesService(storages.NotesRepository, uploadService, validator, logger),
		UploadService:  uploadService,
		AppInfoService: appInfoService,
	}, nil
}
