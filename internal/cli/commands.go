package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"harmony-match/internal/domain"
	"harmony-match/internal/service"
)

const (
	defaultYearsStart = 1940
	defaultYearsEnd   = 2030
)

func newProfileCommand(opts *RootOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "profile <year>",
		Short: "Show the zodiac profile for a birth year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := deps.Validator.Validate(args[0])
			if err != nil {
				return invalidInput(err)
			}
			profile := deps.Engine.ResolveProfile(year)
			return formatter(cmd, opts).Write(profile, func(w io.Writer) error {
				return writeProfile(w, profile)
			})
		},
	}
}

func newMatchCommand(opts *RootOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "match <year1> <year2>",
		Short: "Score the compatibility of two birth years",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year1, year2, err := deps.Validator.ValidatePair(args[0], args[1])
			if err != nil {
				return invalidInput(err)
			}
			report := deps.Engine.Report(year1, year2)
			return formatter(cmd, opts).Write(report, func(w io.Writer) error {
				return writeReport(w, report)
			})
		},
	}
}

func newYearsCommand(opts *RootOptions, deps Deps) *cobra.Command {
	var start, end int
	cmd := &cobra.Command{
		Use:   "years <animal>",
		Short: "List the years of an animal within a range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			animal, err := domain.ParseAnimal(args[0])
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "unknown animal", Err: err}
			}
			years, err := deps.Engine.YearsForAnimal(animal, start, end)
			if err != nil {
				if errors.Is(err, service.ErrInvalidYearRange) {
					return &ExitError{Code: ExitCommandError, Message: "invalid range", Err: err}
				}
				return err
			}
			payload := map[string]any{"animal": animal, "start": start, "end": end, "years": years}
			return formatter(cmd, opts).Write(payload, func(w io.Writer) error {
				parts := make([]string, len(years))
				for i, y := range years {
					parts[i] = fmt.Sprint(y)
				}
				_, err := fmt.Fprintf(w, "%s (%d-%d): %s\n", animal, start, end, strings.Join(parts, ", "))
				return err
			})
		},
	}
	cmd.Flags().IntVar(&start, "start", defaultYearsStart, "first year of the range")
	cmd.Flags().IntVar(&end, "end", defaultYearsEnd, "last year of the range")
	return cmd
}

func newDataCommand(opts *RootOptions, deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Print the reference wheel of animals and elements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := deps.Engine.Data()
			return formatter(cmd, opts).Write(data, func(w io.Writer) error {
				for _, name := range data.Animals {
					if _, err := fmt.Fprintf(w, "%s %-8s %s  allies: %s  clash: %s  secret friend: %s\n",
						data.Emojis[name], name, data.Chinese[name],
						strings.Join(data.Allies[name], ", "), data.Clashes[name], data.SecretFriends[name],
					); err != nil {
						return err
					}
				}
				for _, name := range data.Elements {
					if _, err := fmt.Fprintf(w, "%-6s %s %s  generates %s, overcomes %s\n",
						name, data.ElementChinese[name], data.ElementColors[name],
						data.Generating[name], data.Overcoming[name],
					); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// invalidInput convierte errores de validación en ExitError con los mensajes por año.
func invalidInput(err error) error {
	var pairErr *service.YearPairError
	if errors.As(err, &pairErr) {
		return &ExitError{Code: ExitCommandError, Message: "invalid input", Err: pairErr}
	}
	var yerr *service.InvalidYearError
	if errors.As(err, &yerr) {
		return NewExitError(ExitCommandError, yerr.Message)
	}
	return err
}

func writeProfile(w io.Writer, p domain.Profile) error {
	_, err := fmt.Fprintf(w,
		"%d: %s %s (%s %s)\nPolarity:      %s\nColor:         %s\nAllies:        %s, %s\nClash:         %s\nSecret friend: %s\n",
		p.Year, p.FullSign, p.Emoji, p.ElementChinese, p.AnimalChinese,
		p.Polarity, p.ElementColor, p.Allies[0], p.Allies[1], p.Clash, p.SecretFriend,
	)
	return err
}

func writeReport(w io.Writer, r domain.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%d) + %s %s (%d)\n",
		r.Partner1.Emoji, r.Partner1.FullSign, r.Partner1.Year,
		r.Partner2.Emoji, r.Partner2.FullSign, r.Partner2.Year,
	)
	fmt.Fprintf(&b, "Score: %d%% - %s Compatibility\n%s\n", r.Scores.Overall, r.Level, r.LevelDescription)
	fmt.Fprintf(&b, "Animal %d%% | Element %d%% (%s) | Polarity %d%% (%s + %s)\n",
		r.Scores.Animal, r.Scores.Element, r.ElementRelationship.Relationship,
		r.Scores.Polarity, r.Partner1.Polarity, r.Partner2.Polarity,
	)
	fmt.Fprintf(&b, "Element:  %s\nPolarity: %s\n", r.ElementRelationship.Description, r.PolarityRelationship.Description)
	if len(r.Tags) > 0 {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = t.Icon + " " + t.Text
		}
		fmt.Fprintf(&b, "Dynamics: %s\n", strings.Join(tags, ", "))
	}
	b.WriteString("Strengths:\n")
	for _, s := range r.Strengths {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	fmt.Fprintf(&b, "Pairing: %s\n", r.PairingKey)
	_, err := io.WriteString(w, b.String())
	return err
}
