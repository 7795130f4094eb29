package cli

import (
	"github.com/spf13/cobra"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

// ValidateResult is the output of a successful validate command.
type ValidateResult struct {
	Total  int64   `json:"total"`
	Split  bool    `json:"split"`
	Shares []int64 `json:"shares"`
}

func (r ValidateResult) String() string {
	if !r.Split {
		return printer.Sprintf("valid: single payer carries %d", r.Total)
	}
	return printer.Sprintf("valid: %d shares add up to %d", len(r.Shares), r.Total)
}

type validateOptions struct {
	single bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <total> [share]...",
		Short: "Check that shares add up to a total",
		Long: `Check a manual allocation the way a draft submission is checked.

The total must be positive and within the ceiling. Shares must be whole
numbers and add up to the total exactly; an empty share counts as 0.
With --single the payer carries the whole total and shares are ignored.`,
		Example: "  allocate validate 100 50 30 20",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			result, err := runValidate(args[0], args[1:], !opts.single, rootOpts.Ceiling)
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(result)
		},
	}

	cmd.Flags().BoolVar(&opts.single, "single", false, "the payer carries the whole total")

	return cmd
}

func runValidate(totalText string, shares []string, split bool, ceiling int64) (ValidateResult, error) {
	total, err := allocation.ParseUnits(totalText)
	if err != nil {
		return ValidateResult{}, err
	}

	validated, err := allocation.Validate(allocation.Request{
		Total:  total,
		Mode:   allocation.ModeManual,
		Split:  split,
		Shares: shares,
	}, ceiling)
	if err != nil {
		return ValidateResult{}, err
	}

	return ValidateResult{
		Total:  validated.Total,
		Split:  validated.Split,
		Shares: validated.Shares,
	}, nil
}
