package repository

import (
	"context"
	"fmt"
	"sync"

	assetserrors "roomly/internal/assets/errors"
	"roomly/internal/store"
	"roomly/pkg/ident"
	"roomly/pkg/model"
)

type AssetRepository interface {
	List(ctx context.Context) ([]model.Asset, error)
	FindByID(ctx context.Context, id string) (*model.Asset, error)
	Create(ctx context.Context, asset *model.Asset) error
	Update(ctx context.Context, id string, updates *model.AssetUpdate) (*model.Asset, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReplaceAll(ctx context.Context, assets []model.Asset) error
}

type storeAssetRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewStoreAssetRepository(s store.Store) AssetRepository {
	return &storeAssetRepository{store: s}
}

func (r *storeAssetRepository) List(ctx context.Context) ([]model.Asset, error) {
	assets, err := store.LoadAll[model.Asset](ctx, r.store, store.Assets)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	return assets, nil
}

func (r *storeAssetRepository) FindByID(ctx context.Context, id string) (*model.Asset, error) {
	assets, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		if assets[i].ID == id {
			return &assets[i], nil
		}
	}
	return nil, assetserrors.ErrNotFound
}

func (r *storeAssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if asset.ID == "" {
		asset.ID = ident.New(ident.AssetPrefix)
	}

	assets, err := r.List(ctx)
	if err != nil {
		return err
	}

	assets = append([]model.Asset{*asset}, assets...)

	if err := store.SaveAll(ctx, r.store, store.Assets, assets); err != nil {
		return fmt.Errorf("failed to save assets: %w", err)
	}
	return nil
}

func (r *storeAssetRepository) Update(ctx context.Context, id string, updates *model.AssetUpdate) (*model.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assets, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range assets {
		if assets[i].ID != id {
			continue
		}
		updates.Apply(&assets[i])
		if err := store.SaveAll(ctx, r.store, store.Assets, assets); err != nil {
			return nil, fmt.Errorf("failed to save assets: %w", err)
		}
		updated := assets[i]
		return &updated, nil
	}

	return nil, assetserrors.ErrNotFound
}

func (r *storeAssetRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assets, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range assets {
		if assets[i].ID != id {
			continue
		}
		assets = append(assets[:i], assets[i+1:]...)
		if err := store.SaveAll(ctx, r.store, store.Assets, assets); err != nil {
			return false, fmt.Errorf("failed to save assets: %w", err)
		}
		return true, nil
	}

	return false, nil
}

func (r *storeAssetRepository) ReplaceAll(ctx context.Context, assets []model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := store.SaveAll(ctx, r.store, store.Assets, assets); err != nil {
		return fmt.Errorf("failed to save assets: %w", err)
	}
	return nil
}
