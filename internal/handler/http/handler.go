package http

import (
	"time"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenHeader is the request header the identity token is read from.
	tokenHeader string

	requestTimeout time.Duration

	// maxUploadSize limits a single uploaded file; multipart bodies are
	// capped at a multiple of it.
	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	tokenHeader := cfg.App.TokenHeader
	if tokenHeader == "" {
		tokenHeader = config.DefaultTokenHeader
	}
	maxUploadSize := cfg.Storage.Files.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}

	return &Handler{
		services:       services,
		tokenHeader:    tokenHeader,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}
