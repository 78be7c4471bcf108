package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtrainer/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored training configuration so defaults apply",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfigRepo(cmd, func(ctx context.Context, repo store.ConfigRepo) error {
			if err := repo.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Training configuration reset to defaults.")
			return nil
		})
	},
}
