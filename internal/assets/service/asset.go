package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	assetserrors "roomly/internal/assets/errors"
	"roomly/internal/assets/repository"
	apperrors "roomly/pkg/errors"
	"roomly/pkg/logger"
	"roomly/pkg/model"
	"roomly/pkg/sanitizer"

	"github.com/go-playground/validator/v10"
)

type AssetService interface {
	List(ctx context.Context) ([]model.Asset, error)
	GetByID(ctx context.Context, id string) (*model.Asset, error)
	Create(ctx context.Context, asset *model.Asset) error
	Delete(ctx context.Context, id string) (bool, error)
}

// assetService is deliberately thinner than the room service: assets have
// a minimal lifecycle and no query layer beyond a name-sorted listing.
type assetService struct {
	repo     repository.AssetRepository
	validate *validator.Validate
	log      *logger.Logger
}

func NewAssetService(repo repository.AssetRepository, log *logger.Logger) AssetService {
	return &assetService{
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

func (s *assetService) List(ctx context.Context) ([]model.Asset, error) {
	assets, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list assets", "error", err)
		return nil, apperrors.Internal("Failed to retrieve assets", err)
	}

	sorted := make([]model.Asset, len(assets))
	copy(sorted, assets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted, nil
}

func (s *assetService) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Asset ID cannot be empty")
	}

	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, assetserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Asset", id)
		}
		return nil, apperrors.Internal("Failed to retrieve asset", err)
	}
	return asset, nil
}

func (s *assetService) Create(ctx context.Context, asset *model.Asset) error {
	asset.Name = sanitizer.Label(asset.Name)
	asset.InventoryCode = sanitizer.Label(asset.InventoryCode)
	if asset.Status == "" {
		asset.Status = model.AssetAvailable
	}

	if err := s.validate.Struct(asset); err != nil {
		s.log.Warn("Asset validation failed", "error", err)
		return apperrors.Validation("Asset validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		s.log.Error("Failed to create asset", "error", err)
		return apperrors.Internal("Failed to create asset", err)
	}

	s.log.Info("Asset created", "id", asset.ID, "name", asset.Name)
	return nil
}

func (s *assetService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, apperrors.InvalidInput("Asset ID cannot be empty")
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete asset", "id", id, "error", err)
		return false, apperrors.Internal("Failed to delete asset", err)
	}

	s.log.Info("Asset delete finished", "id", id, "removed", removed)
	return removed, nil
}
