package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtrainer/internal/store"
	"github.com/abhisek/mathtrainer/internal/training"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the stored training configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored training configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfigRepo(cmd, func(ctx context.Context, repo store.ConfigRepo) error {
			return showConfig(ctx, repo, cmd.OutOrStdout())
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the stored training configuration",
	Example: "  mathtrainer config set --count 20 --tables 2,3,7\n" +
		"  mathtrainer config set --tables 1-12",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfigRepo(cmd, func(ctx context.Context, repo store.ConfigRepo) error {
			cfg, err := repo.Load(ctx)
			if err != nil {
				return err
			}
			cfg, err = applyConfigFlags(cmd, cfg)
			if err != nil {
				return err
			}
			if err := repo.Save(ctx, cfg); err != nil {
				return err
			}
			return showConfig(ctx, repo, cmd.OutOrStdout())
		})
	},
}

func init() {
	addConfigFlags(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// withConfigRepo sets up stderr logging, opens the store and runs fn.
func withConfigRepo(cmd *cobra.Command, fn func(context.Context, store.ConfigRepo) error) error {
	v := viperForCmd(cmd)
	if _, err := setupLogging(v, false); err != nil {
		return err
	}
	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(cmd.Context(), st.ConfigRepo())
}

func showConfig(ctx context.Context, repo store.ConfigRepo, w io.Writer) error {
	cfg, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if cfg.SelectedNumbers == nil {
		cfg.SelectedNumbers = []int{}
	}
	return enc.Encode(cfg)
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", 0, fmt.Sprintf("Problems per session (%d-%d)", training.MinProblemCount, training.MaxProblemCount))
	cmd.Flags().String("tables", "", fmt.Sprintf("Comma-separated numbers or ranges to practice (%d-%d), e.g. 2,3,7 or 1-12", training.MinTable, training.MaxTable))
}

// applyConfigFlags overrides cfg with the --count and --tables flags that
// were given on the command line.
func applyConfigFlags(cmd *cobra.Command, cfg training.Configuration) (training.Configuration, error) {
	if cmd.Flags().Changed("count") {
		n, _ := cmd.Flags().GetInt("count")
		if n < training.MinProblemCount || n > training.MaxProblemCount {
			return cfg, fmt.Errorf("--count must be between %d and %d, got %d",
				training.MinProblemCount, training.MaxProblemCount, n)
		}
		cfg.ProblemCount = n
	}
	if cmd.Flags().Changed("tables") {
		raw, _ := cmd.Flags().GetString("tables")
		nums, err := parseTables(raw)
		if err != nil {
			return cfg, err
		}
		cfg.SelectedNumbers = nums
	}
	return cfg.Normalized(), nil
}

// parseTables parses "2,3,7" or "1-5,9" into a sorted unique list.
func parseTables(raw string) ([]int, error) {
	var nums []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(field, "-")
		from, err := parseTable(lo)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = parseTable(hi); err != nil {
				return nil, err
			}
			if to < from {
				return nil, fmt.Errorf("invalid table range %q", field)
			}
		}
		for n := from; n <= to; n++ {
			nums = append(nums, n)
		}
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("--tables needs at least one number")
	}
	return training.Configuration{SelectedNumbers: nums}.Normalized().SelectedNumbers, nil
}

func parseTable(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid table %q: %w", s, err)
	}
	if n < training.MinTable || n > training.MaxTable {
		return 0, fmt.Errorf("table %d out of range %d-%d", n, training.MinTable, training.MaxTable)
	}
	return n, nil
}
