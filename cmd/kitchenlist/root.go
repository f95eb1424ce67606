package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vbonduro/kitchenlist/internal/config"
	"github.com/vbonduro/kitchenlist/internal/logging"
	"github.com/vbonduro/kitchenlist/internal/recipefile/local"
	"github.com/vbonduro/kitchenlist/internal/service"
	"github.com/vbonduro/kitchenlist/internal/store"
	"github.com/vbonduro/kitchenlist/internal/web"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	cleanup func()
}

func newRootCmd() *cobra.Command {
	a := &app{cleanup: func() {}}
	var addr, recipesPath, staticDir string

	cmd := &cobra.Command{
		Use:   "kitchenlist",
		Short: "Household kitchen backend: pantry, shopping list and recipes",
		Long: `kitchenlist serves a JSON API over the pantry, the shopping list,
the archive of completed shopping trips and a recipe collection persisted
to a JSON file.

Examples:
  kitchenlist --addr :3000 --recipes ./recipes.json --static ./public
  kitchenlist recipes`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.ListenAddr = addr
			}
			if cmd.Flags().Changed("recipes") {
				cfg.RecipesPath = recipesPath
			}
			if cmd.Flags().Changed("static") {
				cfg.StaticDir = staticDir
			}

			logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, a.logger, a.cleanup = cfg, logger, cleanup
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx)
		},
	}

	cmd.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides LISTEN_ADDR/PORT)")
	cmd.PersistentFlags().StringVar(&recipesPath, "recipes", "", "recipe file path (overrides RECIPES_PATH)")
	cmd.PersistentFlags().StringVar(&staticDir, "static", "", "directory of front-end files served at / (overrides STATIC_DIR)")

	cmd.AddCommand(newRecipesCmd(a))
	return cmd
}

func (a *app) loadRecipes(ctx context.Context) (*store.RecipeStore, error) {
	file, err := local.NewLocalFile(a.cfg.RecipesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize recipe file: %w", err)
	}
	recipes := store.NewRecipeStore(file, a.logger)
	recipes.Load(ctx)
	return recipes, nil
}

// run serves until ctx ends and releases the logger's resources on every
// exit path; cobra skips post-run hooks when RunE fails.
func (a *app) run(ctx context.Context) error {
	defer a.cleanup()
	return a.serve(ctx)
}

func (a *app) serve(ctx context.Context) error {
	recipes, err := a.loadRecipes(ctx)
	if err != nil {
		a.logger.Error("failed to load recipes", "error", err)
		return err
	}

	svc := service.NewKitchenService(
		store.NewPantryStore(nil, a.logger),
		store.NewGroceryStore(nil, a.logger),
		recipes,
		store.NewArchiveStore(),
		a.logger,
	)
	server := web.NewServer(svc, web.Options{
		StaticDir:      a.cfg.StaticDir,
		AllowedOrigins: a.cfg.AllowedOrigins,
	}, a.logger)

	if err := server.ListenAndServe(ctx, a.cfg.ListenAddr); err != nil {
		a.logger.Error("server error", "error", err)
		return err
	}
	return nil
}
