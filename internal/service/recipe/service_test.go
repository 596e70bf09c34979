package recipe

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/catalog"
	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
	apperrors "github.com/karadarhythm/health-api/pkg/errors"
)

func TestSeedLoadsStarterRecipes(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	recipes, err := svc.List(ctx, &model.RecipeFilter{})
	require.NoError(t, err)
	assert.Len(t, recipes, len(catalog.SeedRecipes()))
}

func TestSeedIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	recipes, err := store.ListRecipes(ctx, &model.RecipeFilter{})
	require.NoError(t, err)
	assert.Len(t, recipes, len(catalog.SeedRecipes()))
}

func TestGetMissingRecipe(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListByCategoryAndFavorite(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	soups, err := svc.List(ctx, &model.RecipeFilter{Category: "soup"})
	require.NoError(t, err)
	require.NotEmpty(t, soups)
	for _, r := range soups {
		assert.Equal(t, "soup", r.Category)
	}

	favorites, err := svc.List(ctx, &model.RecipeFilter{Favorite: true})
	require.NoError(t, err)
	assert.Empty(t, favorites, "seeds start unfavorited")
}

func TestSetFavoriteInvalidatesListCache(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())
	ctx := context.Background()
	require.NoError(t, svc.Seed(ctx))

	all, err := svc.List(ctx, &model.RecipeFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	// Prime the favorites cache entry before the toggle.
	favorites, err := svc.List(ctx, &model.RecipeFilter{Favorite: true})
	require.NoError(t, err)
	require.Empty(t, favorites)

	updated, err := svc.SetFavorite(ctx, all[0].ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsFavorite)

	favorites, err = svc.List(ctx, &model.RecipeFilter{Favorite: true})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, all[0].ID, favorites[0].ID)
}

func TestSetFavoriteMissingRecipe(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())

	_, err := svc.SetFavorite(context.Background(), uuid.New(), true)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateUserRecipe(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Recipes())
	ctx := context.Background()

	recipe := &model.Recipe{Name: "トマトの冷製スープ", Category: "soup", SaltG: 0.4}
	require.NoError(t, svc.Create(ctx, recipe))
	require.NotEqual(t, uuid.Nil, recipe.ID)

	got, err := svc.Get(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "トマトの冷製スープ", got.Name)
}
