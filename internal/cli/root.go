// Package cli implements the allocate command, an offline front end to the
// allocation engine.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format  string // "json" | "text"
	Ceiling int64
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the allocate CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Split transaction totals across participants",
		Long: `Compute equal splits and check manual allocations with the same rules the
server applies to transaction drafts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Ceiling < 1 {
				return fmt.Errorf("invalid ceiling %d: must be at least 1", opts.Ceiling)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().Int64Var(&opts.Ceiling, "ceiling", allocation.DefaultCeiling, "largest accepted total")

	cmd.AddCommand(NewEqualCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
