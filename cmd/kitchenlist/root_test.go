package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/kitchenlist/internal/config"
)

func TestRootCmd_Metadata(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "kitchenlist", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("addr"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("recipes"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("static"))
}

func TestRecipesCmd_PrintsPersistedRecipes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"name":"Soup","servings":4},{"name":"Bread"}]`), 0o644))
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"recipes", "--recipes", path})
	require.NoError(t, cmd.Execute())

	var recipes []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &recipes))
	require.Len(t, recipes, 2)
	assert.Equal(t, "Soup", recipes[0]["name"])
	assert.Equal(t, 4.0, recipes[0]["servings"])
	assert.Equal(t, 2.0, recipes[1]["id"])
}

func TestRecipesCmd_MissingFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"recipes", "--recipes", filepath.Join(t.TempDir(), "none.json")})
	require.NoError(t, cmd.Execute())

	assert.JSONEq(t, "[]", out.String())
}

func TestAppRun_CleansUpWhenServerFails(t *testing.T) {
	cleaned := 0
	a := &app{
		cfg: &config.Config{
			ListenAddr:  "127.0.0.1:99999",
			RecipesPath: filepath.Join(t.TempDir(), "recipes.json"),
		},
		logger:  slog.Default(),
		cleanup: func() { cleaned++ },
	}

	err := a.run(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, cleaned)
}
