package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRecipesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "Print the recipes persisted at the configured path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.cleanup()
			recipes, err := a.loadRecipes(cmd.Context())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(recipes.List(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode recipes: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
