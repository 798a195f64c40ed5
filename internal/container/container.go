package container

import (
	"fmt"
	"net/http"

	"go-label-analyzer/internal/config"
	"go-label-analyzer/internal/extraction"
	"go-label-analyzer/internal/service"
	"go-label-analyzer/internal/storage"
	"go-label-analyzer/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config          *config.Config
	photoStore      storage.PhotoStore
	extractor       extraction.LabelExtractor
	analysisService service.LabelAnalysisService
	handler         http.Handler
}

// NewContainer wires the dependency graph. Clients are constructed once
// here and injected; nothing constructs its own collaborators.
func NewContainer(cfg *config.Config) (*Container, error) {
	photoStore, err := storage.NewAzurePhotoStore(cfg.AzureStorageAccount, cfg.AzureStorageKey, cfg.PhotoContainer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo store: %w", err)
	}

	extractor := extraction.NewGeminiExtractor(cfg.GeminiAPIKey, cfg.GeminiModel)
	analysisService := service.NewLabelAnalysisService(photoStore, extractor)
	handler := transport.NewHandler(analysisService, cfg)

	return &Container{
		config:          cfg,
		photoStore:      photoStore,
		extractor:       extractor,
		analysisService: analysisService,
		handler:         handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
