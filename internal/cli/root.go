package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"harmony-match/internal/service"
)

// RootOptions guarda los flags globales.
type RootOptions struct {
	Format string
}

// Deps son las dependencias compartidas por los subcomandos.
type Deps struct {
	Engine    *service.CompatibilityEngine
	Validator *service.YearValidator
}

// NewRootCommand crea el comando raíz del CLI.
func NewRootCommand(deps Deps) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "harmony",
		Short:         "Chinese zodiac profiles and compatibility",
		Long:          "Resolve zodiac profiles from birth years and score the compatibility of two partners.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")

	cmd.AddCommand(newProfileCommand(opts, deps))
	cmd.AddCommand(newMatchCommand(opts, deps))
	cmd.AddCommand(newYearsCommand(opts, deps))
	cmd.AddCommand(newDataCommand(opts, deps))

	return cmd
}

func formatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
