package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/darkwater/console-timeline/pkg/timeline/renderer"
	"github.com/darkwater/console-timeline/pkg/timeline/renderer/tui"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the timeline to the terminal",
	Long: `Print draws every lineage and console bar in the terminal, scaled to its
width, followed by the lifetime sales of each console.`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().Int("width", 0, "columns to use (default: terminal width)")
	printCmd.Flags().Bool("no-color", false, "disable colour output")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	p := tui.New(a.source, os.Stdout)
	p.Theme = a.theme
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		p.Width = w
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		p.Color = false
	}

	var r renderer.Renderer = p
	return r.Run(cmd.Context())
}
