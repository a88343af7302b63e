package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/importer"
	"github.com/piwi3910/giftwrap/internal/model"
)

// quoteFlags are shared by quote, compare and template save.
type quoteFlags struct {
	shape   string
	dims    string
	quality string
	colour  string
	bow     bool
	label   string
}

func (f *quoteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.shape, "shape", "cube", "gift shape: cube, cuboid or cylinder")
	cmd.Flags().StringVar(&f.dims, "dims", "", "comma separated lengths in cm (cube: edge; cuboid: w,h,d; cylinder: r,h)")
	cmd.Flags().StringVar(&f.quality, "quality", "cheap", "paper quality: cheap or expensive")
	cmd.Flags().StringVar(&f.colour, "colour", "purple", "paper colour")
	cmd.Flags().BoolVar(&f.bow, "bow", false, "add a bow")
	cmd.Flags().StringVar(&f.label, "label", "", "label text (adds a label)")
	_ = cmd.MarkFlagRequired("dims")
}

// build turns the flags into a validated quote.
func (f *quoteFlags) build() (model.Quote, error) {
	q := model.NewQuote()

	shape, err := model.ParseGiftShape(f.shape)
	if err != nil {
		return model.Quote{}, err
	}
	q.Gift.SetShape(shape)

	names := shape.DimensionNames()
	raw := strings.Split(f.dims, ",")
	if len(raw) != len(names) {
		return model.Quote{}, fmt.Errorf("%s needs %d dimension(s) (%s), got %d",
			shape, len(names), strings.Join(names, ", "), len(raw))
	}
	for i, s := range raw {
		v, err := importer.ValidateDimension(s, model.Settings().MaxDimension)
		if err != nil {
			return model.Quote{}, fmt.Errorf("%s: %w", names[i], err)
		}
		_ = q.Gift.SetDimension(i, v)
	}

	if q.Wrap.Quality, err = model.ParsePaperQuality(f.quality); err != nil {
		return model.Quote{}, err
	}
	if q.Wrap.Colour, err = model.ParseColour(f.colour); err != nil {
		return model.Quote{}, err
	}
	q.IncludesBow = f.bow
	if f.label != "" {
		q.IncludesLabel = true
		q.LabelText = f.label
	}
	return q, nil
}

// quote --shape --dims --quality --colour --bow --label: print one priced quote.
func quoteCmd() *cobra.Command {
	var f quoteFlags
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a single gift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := f.build()
			if err != nil {
				return err
			}
			b := model.EstimateQuote(q)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, q.Summary())
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Paper\t%.1f cm² @ %.2fp\t%s\n", b.Area, b.Rate, model.FormatMoney(b.PaperCost))
			if q.IncludesBow {
				fmt.Fprintf(w, "Bow\t\t%s\n", model.FormatMoney(b.BowCost))
			}
			if q.IncludesLabel {
				fmt.Fprintf(w, "Label\t%d characters\t%s\n", len([]rune(q.LabelText)), model.FormatMoney(b.LabelCost))
			}
			fmt.Fprintf(w, "Total\t\t%s\n", model.FormatMoney(b.Total))
			return w.Flush()
		},
	}
	f.register(cmd)
	return cmd
}

// compare: price a gift against the other paper quality and without its extras.
func compareCmd() *cobra.Command {
	var f quoteFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a quote with other paper and extras",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := f.build()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Scenario\tTotal\tDifference")
			for _, r := range engine.CompareQualities(q) {
				delta := "-"
				if r.Delta != 0 {
					delta = model.FormatMoney(r.Delta)
					if r.Delta > 0 {
						delta = "+" + delta
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Scenario.Name, model.FormatMoney(r.Breakdown.Total), delta)
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	return cmd
}
