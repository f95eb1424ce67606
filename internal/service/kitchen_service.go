package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vbonduro/kitchenlist/internal/domain"
	"github.com/vbonduro/kitchenlist/internal/store"
)

// pantryRepository is the subset of store.PantryStore that KitchenService requires.
type pantryRepository interface {
	Upsert(d store.ItemDraft) []domain.Item
	Replace(drafts []store.ItemDraft) []domain.Item
	Remove(name string) ([]domain.Item, error)
	List() []domain.Item
}

// groceryRepository is the subset of store.GroceryStore that KitchenService requires.
type groceryRepository interface {
	Upsert(d store.ItemDraft) []domain.GroceryItem
	Replace(drafts []store.ItemDraft) []domain.GroceryItem
	SetCompleted(name string, completed bool) ([]domain.GroceryItem, error)
	Remove(name string) ([]domain.GroceryItem, error)
	PurgeCompleted() (int, []domain.GroceryItem)
	List() []domain.GroceryItem
}

// recipeRepository is the subset of store.RecipeStore that KitchenService requires.
type recipeRepository interface {
	Create(ctx context.Context, d store.RecipeDraft) (domain.Recipe, []domain.Recipe, error)
	List() []domain.Recipe
}

// archiveRepository is the subset of store.ArchiveStore that KitchenService requires.
type archiveRepository interface {
	Append(entry json.RawMessage) (int, int, error)
	List() ([]json.RawMessage, int)
}

// KitchenService owns every collection for the lifetime of the process.
type KitchenService struct {
	pantry    pantryRepository
	groceries groceryRepository
	recipes   recipeRepository
	archive   archiveRepository
	logger    *slog.Logger
}

func NewKitchenService(
	pantry pantryRepository,
	groceries groceryRepository,
	recipes recipeRepository,
	archive archiveRepository,
	logger *slog.Logger,
) *KitchenService {
	return &KitchenService{
		pantry:    pantry,
		groceries: groceries,
		recipes:   recipes,
		archive:   archive,
		logger:    logger,
	}
}

func (s *KitchenService) AddIngredient(d store.ItemDraft) []domain.Item {
	items := s.pantry.Upsert(d)
	s.logger.Info("ingredient upserted", "ingredients", len(items))
	return items
}

func (s *KitchenService) ListIngredients() []domain.Item {
	return s.pantry.List()
}

func (s *KitchenService) RemoveIngredient(name string) ([]domain.Item, error) {
	items, err := s.pantry.Remove(name)
	if err != nil {
		return nil, fmt.Errorf("failed to remove ingredient: %w", err)
	}
	return items, nil
}

// ReplaceIngredients swaps the pantry for the items in raw, which must be a
// JSON array.
func (s *KitchenService) ReplaceIngredients(raw json.RawMessage) ([]domain.Item, error) {
	drafts, err := store.DecodeDrafts(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to replace ingredients: %w", err)
	}
	items := s.pantry.Replace(drafts)
	s.logger.Info("ingredients replaced", "received", len(drafts), "kept", len(items))
	return items, nil
}

func (s *KitchenService) AddGroceryItem(d store.ItemDraft) []domain.GroceryItem {
	items := s.groceries.Upsert(d)
	s.logger.Info("grocery item upserted", "grocery_items", len(items))
	return items
}

func (s *KitchenService) ListGroceries() []domain.GroceryItem {
	return s.groceries.List()
}

func (s *KitchenService) ReplaceGroceries(raw json.RawMessage) ([]domain.GroceryItem, error) {
	drafts, err := store.DecodeDrafts(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to replace grocery list: %w", err)
	}
	items := s.groceries.Replace(drafts)
	s.logger.Info("grocery list replaced", "received", len(drafts), "kept", len(items))
	return items, nil
}

func (s *KitchenService) SetGroceryCompleted(name string, completed bool) ([]domain.GroceryItem, error) {
	items, err := s.groceries.SetCompleted(name, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to update grocery item: %w", err)
	}
	return items, nil
}

func (s *KitchenService) RemoveGroceryItem(name string) ([]domain.GroceryItem, error) {
	items, err := s.groceries.Remove(name)
	if err != nil {
		return nil, fmt.Errorf("failed to remove grocery item: %w", err)
	}
	return items, nil
}

func (s *KitchenService) PurgeCompletedGroceries() (int, []domain.GroceryItem) {
	removed, remaining := s.groceries.PurgeCompleted()
	s.logger.Info("completed grocery items purged", "removed", removed, "remaining", len(remaining))
	return removed, remaining
}

// SaveGroceryList archives a finished shopping list and returns its index and
// the archive size.
func (s *KitchenService) SaveGroceryList(entry json.RawMessage) (int, int, error) {
	idx, total, err := s.archive.Append(entry)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to save grocery list: %w", err)
	}
	s.logger.Info("grocery list archived", "saved_list_id", idx, "total", total)
	return idx, total, nil
}

func (s *KitchenService) ListSavedGroceryLists() ([]json.RawMessage, int) {
	return s.archive.List()
}

func (s *KitchenService) CreateRecipe(ctx context.Context, d store.RecipeDraft) (domain.Recipe, []domain.Recipe, error) {
	recipe, recipes, err := s.recipes.Create(ctx, d)
	if err != nil {
		return domain.Recipe{}, nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	s.logger.Info("recipe created", "recipe_id", recipe.ID, "name", recipe.Name)
	return recipe, recipes, nil
}

func (s *KitchenService) ListRecipes() []domain.Recipe {
	return s.recipes.List()
}
