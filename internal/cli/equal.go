package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/width"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/allocation"
)

var errNoParticipants = errors.New("every participant is excluded")

type unknownParticipantError struct {
	name string
}

func (e *unknownParticipantError) Error() string {
	return fmt.Sprintf("unknown participant %q", e.name)
}

// ParticipantShare is one row of an equal split.
type ParticipantShare struct {
	Name     string `json:"name"`
	Included bool   `json:"included"`
	Share    int64  `json:"share"`
}

// EqualResult is the output of the equal command.
type EqualResult struct {
	Total        int64              `json:"total"`
	Participants []ParticipantShare `json:"participants"`
}

// String renders the split as an aligned table ending with the total.
func (r EqualResult) String() string {
	column := cells("total")
	for _, p := range r.Participants {
		column = max(column, cells(p.Name))
	}

	var b strings.Builder
	for _, p := range r.Participants {
		line := padRight(p.Name, column) + "  " + printer.Sprintf("%d", p.Share)
		if !p.Included {
			line += " (excluded)"
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(padRight("total", column) + "  " + printer.Sprintf("%d", r.Total))
	return b.String()
}

// cells returns the terminal width of s. East Asian wide and fullwidth runes
// take two cells.
func cells(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padRight(s string, column int) string {
	return s + strings.Repeat(" ", column-cells(s))
}

type equalOptions struct {
	exclude []string
}

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &equalOptions{}

	cmd := &cobra.Command{
		Use:   "equal <total> <participant>...",
		Short: "Split a total equally",
		Long: `Split a total equally across the included participants.

Shares are whole units. When the total does not divide evenly the first
included participants each carry one extra unit. Excluded participants get 0.`,
		Example: "  allocate equal 100 alice bob carol --exclude carol",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			result, err := runEqual(args[0], args[1:], opts.exclude, rootOpts.Ceiling)
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(result)
		},
	}

	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "participants to leave out of the split")

	return cmd
}

func runEqual(totalText string, names, exclude []string, ceiling int64) (EqualResult, error) {
	total, err := parseTotal(totalText, ceiling)
	if err != nil {
		return EqualResult{}, err
	}

	mask := make([]bool, len(names))
	for i := range mask {
		mask[i] = true
	}
	for _, name := range exclude {
		found := false
		for i, candidate := range names {
			if candidate == name {
				mask[i] = false
				found = true
			}
		}
		if !found {
			return EqualResult{}, &unknownParticipantError{name: name}
		}
	}

	shares, ok := allocation.ComputeEqualShares(total, mask)
	if !ok {
		return EqualResult{}, errNoParticipants
	}

	result := EqualResult{Total: total, Participants: make([]ParticipantShare, len(names))}
	for i, name := range names {
		result.Participants[i] = ParticipantShare{Name: name, Included: mask[i], Share: shares[i]}
	}
	return result, nil
}
