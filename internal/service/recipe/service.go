// Package recipe serves the low-salt recipe collection. Listings are
// read-heavy and change rarely, so they sit behind a short-lived cache.
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/karadarhythm/health-api/internal/catalog"
	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository"
	"github.com/karadarhythm/health-api/pkg/errors"
)

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

type Service struct {
	repo  repository.RecipeRepository
	cache *gocache.Cache
}

func NewService(repo repository.RecipeRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// Seed loads the starter recipes on an empty store. Re-running against
// a populated store is a no-op.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.repo.List(ctx, &model.RecipeFilter{Limit: 1})
	if err != nil {
		return fmt.Errorf("failed to check recipe store: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeds := catalog.SeedRecipes()
	for _, r := range seeds {
		if err := s.repo.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", r.Name, err)
		}
	}
	log.Info().Int("count", len(seeds)).Msg("seeded starter recipes")
	return nil
}

func (s *Service) Create(ctx context.Context, recipe *model.Recipe) error {
	if err := s.repo.Create(ctx, recipe); err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	s.cache.Flush()
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	if cached, ok := s.cache.Get(id.String()); ok {
		return cached.(*model.Recipe), nil
	}

	recipe, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, errors.NotFound("recipe", nil)
	}

	s.cache.Set(id.String(), recipe, gocache.DefaultExpiration)
	return recipe, nil
}

func (s *Service) List(ctx context.Context, filter *model.RecipeFilter) ([]*model.Recipe, error) {
	key := listKey(filter)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]*model.Recipe), nil
	}

	recipes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	s.cache.Set(key, recipes, gocache.DefaultExpiration)
	return recipes, nil
}

// SetFavorite toggles the only mutable recipe field.
func (s *Service) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*model.Recipe, error) {
	recipe, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, errors.NotFound("recipe", nil)
	}

	if err := s.repo.SetFavorite(ctx, id, favorite); err != nil {
		return nil, fmt.Errorf("failed to update favorite: %w", err)
	}
	recipe.IsFavorite = favorite
	s.cache.Flush()
	return recipe, nil
}

func listKey(filter *model.RecipeFilter) string {
	return fmt.Sprintf("list:%s:%t:%s:%d", filter.Category, filter.Favorite, filter.Search, filter.Limit)
}
