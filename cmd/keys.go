package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	engineinput "github.com/darkwater/console-timeline/pkg/engine/input"
	"github.com/darkwater/console-timeline/pkg/timeline/config"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the window's key bindings",
	Long: `Keys prints every window action with the keys bound to it, after applying
the bindings section of the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.ApplyBindings(); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), formatBindings(engineinput.GetBindingsByAction()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

// formatBindings lists actions in declaration order, one per line
func formatBindings(byAction map[engineinput.Action][]string) string {
	var b strings.Builder
	for a := engineinput.ActionScrollLeft; a <= engineinput.ActionQuit; a++ {
		codes := strings.Join(byAction[a], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		fmt.Fprintf(&b, "%-14s %s\n", engineinput.ActionName(a)+":", codes)
	}
	return b.String()
}
