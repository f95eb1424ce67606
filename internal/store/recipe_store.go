package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/vbonduro/kitchenlist/internal/domain"
	"github.com/vbonduro/kitchenlist/internal/recipefile"
)

// RecipeDraft is a loosely typed recipe, either from a client or from the
// persisted file.
type RecipeDraft struct {
	ID          any `json:"id"`
	Name        any `json:"name"`
	Description any `json:"description"`
	Servings    any `json:"servings"`
	Ingredients any `json:"ingredients"`
	Image       any `json:"image"`
}

// RecipeStore keeps recipes in memory and writes the whole collection through
// to its persister after every creation.
type RecipeStore struct {
	mu        sync.Mutex
	recipes   []domain.Recipe
	persister recipefile.Persister
	logger    *slog.Logger
}

func NewRecipeStore(persister recipefile.Persister, logger *slog.Logger) *RecipeStore {
	return &RecipeStore{recipes: []domain.Recipe{}, persister: persister, logger: logger}
}

// Load replaces the in-memory collection with the persisted one. A missing or
// unreadable file leaves the store empty; malformed fields fall back to
// defaults. Entries without a usable integer id are numbered after the
// highest valid id, in file order.
func (s *RecipeStore) Load(ctx context.Context) {
	recipes := s.readPersisted(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = recipes
	s.logger.Info("recipes loaded", "count", len(recipes))
}

func (s *RecipeStore) readPersisted(ctx context.Context) []domain.Recipe {
	data, err := s.persister.Load(ctx)
	if err != nil {
		if errors.Is(err, recipefile.ErrNotFound) {
			s.logger.Info("no persisted recipes, starting empty")
		} else {
			s.logger.Error("failed to read persisted recipes", "error", err)
		}
		return []domain.Recipe{}
	}

	trimmed := bytes.TrimSpace(data)
	var entries []json.RawMessage
	if len(trimmed) == 0 || trimmed[0] != '[' || json.Unmarshal(trimmed, &entries) != nil {
		s.logger.Warn("persisted recipes are not a list, starting empty")
		return []domain.Recipe{}
	}

	recipes := make([]domain.Recipe, 0, len(entries))
	var missingID []int
	var maxID int64
	for _, raw := range entries {
		var d RecipeDraft
		if err := json.Unmarshal(raw, &d); err != nil {
			s.logger.Warn("skipping malformed recipe entry", "error", err)
			continue
		}
		r := domain.Recipe{
			Name:        strings.TrimSpace(coerceString(d.Name)),
			Description: strings.TrimSpace(coerceString(d.Description)),
			Servings:    positiveServings(d.Servings),
			Ingredients: normalizeRecipeIngredients(d.Ingredients),
			Image:       strings.TrimSpace(coerceString(d.Image)),
		}
		if id, ok := integerID(d.ID); ok {
			r.ID = id
			maxID = max(maxID, id)
		} else {
			missingID = append(missingID, len(recipes))
		}
		recipes = append(recipes, r)
	}
	for _, idx := range missingID {
		maxID++
		recipes[idx].ID = maxID
		s.logger.Warn("assigned id to persisted recipe", "name", recipes[idx].Name, "id", maxID)
	}
	return recipes
}

// Create validates and appends a new recipe, then persists the full
// collection. Persistence failures are logged and do not fail the call.
func (s *RecipeStore) Create(ctx context.Context, d RecipeDraft) (domain.Recipe, []domain.Recipe, error) {
	name := strings.TrimSpace(coerceString(d.Name))
	if name == "" {
		return domain.Recipe{}, nil, fmt.Errorf("recipe name: %w", ErrMissingName)
	}
	recipe := domain.Recipe{
		Name:        name,
		Description: strings.TrimSpace(coerceString(d.Description)),
		Servings:    domain.DefaultServings,
		Ingredients: normalizeRecipeIngredients(d.Ingredients),
		Image:       strings.TrimSpace(coerceString(d.Image)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	recipe.ID = s.nextID()
	s.recipes = append(s.recipes, recipe)
	s.persist(ctx)
	return recipe, snapshot(s.recipes), nil
}

func (s *RecipeStore) List() []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.recipes)
}

func (s *RecipeStore) nextID() int64 {
	if len(s.recipes) == 0 {
		return 1
	}
	next := s.recipes[0].ID
	for _, r := range s.recipes[1:] {
		next = max(next, r.ID)
	}
	return next + 1
}

// persist must be called with s.mu held.
func (s *RecipeStore) persist(ctx context.Context) {
	data, err := json.MarshalIndent(s.recipes, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode recipes", "error", err)
		return
	}
	if err := s.persister.Save(ctx, data); err != nil {
		s.logger.Error("failed to persist recipes", "count", len(s.recipes), "error", err)
		return
	}
	s.logger.Debug("recipes persisted", "count", len(s.recipes))
}

func normalizeRecipeIngredients(v any) []domain.RecipeIngredient {
	out := []domain.RecipeIngredient{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, elem := range list {
		m, ok := elem.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(coerceString(m["name"]))
		if name == "" {
			continue
		}
		category := strings.TrimSpace(coerceString(m["category"]))
		if category == "" {
			category = domain.DefaultCategory
		}
		out = append(out, domain.RecipeIngredient{
			Name:        name,
			Measurement: strings.TrimSpace(coerceString(m["measurement"])),
			Quantity:    parseQuantity(m["quantity"]),
			Category:    category,
		})
	}
	return out
}

func positiveServings(v any) float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return domain.DefaultServings
	}
	return f
}

func integerID(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
