package material

import (
	"context"
	"fmt"
	"time"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// Service defines the interface for material and price read operations
type Service interface {
	GetMaterial(ctx context.Context, id int64) (*domain.Material, error)
	ListMaterials(ctx context.Context, filter repository.MaterialFilter) ([]domain.Material, int64, error)

	// GetCurrentPrice returns the current price for a material, served from
	// cache when possible. Returns domain.ErrPriceUnresolved when the
	// material has no current price.
	GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error)
	ListPriceHistory(ctx context.Context, materialID int64) ([]domain.MaterialPrice, error)

	// InvalidatePrice drops the cached current price for one material.
	// The ingestion path calls this after every price replacement.
	InvalidatePrice(materialID int64)
	GetCacheStats() CacheStats
}

type service struct {
	repo  repository.Material
	cache *priceCache
}

// NewService creates a new material service
func NewService(repo repository.Material, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newPriceCache(cacheSize, cacheTTL),
	}
}

func (s *service) GetMaterial(ctx context.Context, id int64) (*domain.Material, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	if m == nil {
		return nil, domain.ErrMaterialNotFound
	}
	return m, nil
}

func (s *service) ListMaterials(ctx context.Context, filter repository.MaterialFilter) ([]domain.Material, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = DefaultPageSize
	}
	if filter.Size > MaxPageSize {
		filter.Size = MaxPageSize
	}

	materials, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, total, nil
}

func (s *service) GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error) {
	if price, found := s.cache.Get(materialID); found {
		return price, nil
	}

	price, err := s.repo.GetCurrentPrice(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current price: %w", err)
	}
	if price == nil {
		// Misses are not cached: a price may land at any moment.
		return nil, fmt.Errorf("%w: material %d", domain.ErrPriceUnresolved, materialID)
	}

	s.cache.Set(materialID, price)
	return price, nil
}

func (s *service) ListPriceHistory(ctx context.Context, materialID int64) ([]domain.MaterialPrice, error) {
	m, err := s.repo.GetByID(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	if m == nil {
		return nil, domain.ErrMaterialNotFound
	}

	prices, err := s.repo.ListPrices(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return prices, nil
}

func (s *service) InvalidatePrice(materialID int64) {
	s.cache.Invalidate(materialID)
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}
