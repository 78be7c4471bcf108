package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session right away",
	Long: "Start a practice session without the configuration screen. --count and\n" +
		"--tables override the stored configuration, and the result is saved.",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		st, err := openStore(v)
		if err != nil {
			return err
		}
		cfg, err := st.ConfigRepo().Load(cmd.Context())
		st.Close()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		cfg, err = applyConfigFlags(cmd, cfg)
		if err != nil {
			return err
		}
		return runApp(cmd, &cfg)
	},
}

func init() {
	addConfigFlags(playCmd)
}
