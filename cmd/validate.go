package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darkwater/console-timeline/pkg/timeline/catalog"
	"github.com/darkwater/console-timeline/pkg/timeline/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog for integrity errors",
	Long: `Validate loads the configured catalog (or the built-in one) and lists
every integrity problem: consoles without a release, invalid dates, duplicate
short names and inconsistent estimates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		c, err := loadCatalog(cfg.Catalog)
		if err != nil {
			problems := validationErrors(err)
			if len(problems) == 0 {
				return err
			}
			for _, p := range problems {
				fmt.Fprintf(os.Stderr, "✗ %v\n", p)
			}
			return fmt.Errorf("%s: %d problem(s)", catalogName(cfg.Catalog), len(problems))
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %d lineages, %d consoles, %d-%d\n",
			catalogName(cfg.Catalog), len(c.Lineages), c.ConsoleCount(), c.StartYear, c.EndYear)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// validationErrors collects every ValidationError in err's tree
func validationErrors(err error) []*catalog.ValidationError {
	switch e := err.(type) {
	case *catalog.ValidationError:
		return []*catalog.ValidationError{e}
	case interface{ Unwrap() []error }:
		var out []*catalog.ValidationError
		for _, inner := range e.Unwrap() {
			out = append(out, validationErrors(inner)...)
		}
		return out
	case interface{ Unwrap() error }:
		return validationErrors(e.Unwrap())
	}
	return nil
}
