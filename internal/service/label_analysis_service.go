package service

import (
	"context"
	"strings"

	apperrors "go-label-analyzer/internal/errors"
	"go-label-analyzer/internal/extraction"
	"go-label-analyzer/internal/imaging"
	"go-label-analyzer/internal/logger"
	"go-label-analyzer/internal/storage"
	"go-label-analyzer/pkg/models"

	"github.com/sirupsen/logrus"
)

// LabelAnalysisService runs the per-request label pipeline: decode the
// photo payload, persist it, prompt the extraction model, normalize the
// output, and assemble the response.
type LabelAnalysisService interface {
	AnalyzeLabel(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error)
}

type labelAnalysisService struct {
	photos    storage.PhotoStore
	extractor extraction.LabelExtractor
}

// NewLabelAnalysisService creates a new label analysis service
func NewLabelAnalysisService(photos storage.PhotoStore, extractor extraction.LabelExtractor) LabelAnalysisService {
	return &labelAnalysisService{
		photos:    photos,
		extractor: extractor,
	}
}

// AnalyzeLabel is strictly sequential: the photo must be persisted before
// the model is prompted, since the photo URL is part of every successful
// outcome including an unidentified one. Each external call is attempted
// exactly once.
func (s *labelAnalysisService) AnalyzeLabel(ctx context.Context, req models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	if strings.TrimSpace(req.PhotoBase64) == "" {
		return nil, apperrors.NewValidationError("photoBase64 is required", nil)
	}

	image, mimeType, err := imaging.DecodePayload(req.PhotoBase64)
	if err != nil {
		return nil, apperrors.NewValidationError("photoBase64 is not valid base64", err)
	}

	photoURL, err := s.photos.Upload(ctx, image, mimeType)
	if err != nil {
		return nil, apperrors.NewStorageError("photo upload failed", err)
	}

	logger.WithFields(logrus.Fields{
		"photo_url": photoURL,
		"mime_type": mimeType,
		"bytes":     len(image),
	}).Debug("Photo persisted, invoking extraction model")

	result, err := s.extractor.Extract(ctx, image, mimeType)
	if err != nil {
		// The photo stays persisted; nothing is rolled back.
		return nil, apperrors.NewUpstreamError("label extraction failed", err)
	}

	labelData := extraction.Normalize(result.Text)

	return &models.AnalyzeResponse{
		PhotoURL:      photoURL,
		Status:        labelData.Status(),
		LabelData:     labelData,
		RawExtraction: result.Raw,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}, nil
}
