package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/models"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/output"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/render"
)

// inputFlags holds the four generation primitives.
type inputFlags struct {
	unit    string
	periods int
	amount  float64
	columns int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "", "Period unit: day, week or month")
	cmd.Flags().IntVarP(&f.periods, "periods", "n", 0, "Number of periods")
	cmd.Flags().Float64VarP(&f.amount, "amount", "a", 0, "Savings amount per period")
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "Cells per grid row (3-10)")
}

// resolve merges flags over the configured defaults and validates the result.
func (f *inputFlags) resolve(cmd *cobra.Command, s *session) (models.SavingsInput, error) {
	g := s.cfg.Grid
	unitName, periods, amount, columns := g.PeriodUnit, g.PeriodCount, g.AmountPerPeriod, g.Columns
	if cmd.Flags().Changed("unit") {
		unitName = f.unit
	}
	if cmd.Flags().Changed("periods") {
		periods = f.periods
	}
	if cmd.Flags().Changed("amount") {
		amount = f.amount
	}
	if cmd.Flags().Changed("columns") {
		columns = f.columns
	}

	unit, err := savegrid.ParsePeriodUnit(unitName)
	if err != nil {
		return models.SavingsInput{}, err
	}
	in := models.SavingsInput{
		PeriodUnit:      unit,
		PeriodCount:     periods,
		AmountPerPeriod: amount,
		ColumnCount:     columns,
	}
	if err := savegrid.ValidateInput(in); err != nil {
		return models.SavingsInput{}, err
	}
	return in, nil
}

func generate(cmd *cobra.Command, s *session, flags *inputFlags) (models.SavingsInput, *models.Grid, error) {
	in, err := flags.resolve(cmd, s)
	if err != nil {
		return in, nil, err
	}
	grid := savegrid.BuildGrid(in, s.options())
	s.logger.WithFields(logrus.Fields{
		"unit":    in.PeriodUnit,
		"periods": in.PeriodCount,
		"columns": grid.ColumnCount,
		"rows":    len(grid.Rows),
	}).Debug("grid generated")
	return in, grid, nil
}

func newGridCmd() *cobra.Command {
	var (
		flags    inputFlags
		asJSON   bool
		prettyJS bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Generate and print the savings grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			in, grid, err := generate(cmd, s, &flags)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := output.ToJSON(output.NewGridDocument(in, grid, s.options()), prettyJS)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), render.Grid(savegrid.Display(grid, s.options())))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the grid as JSON")
	cmd.Flags().BoolVar(&prettyJS, "pretty", false, "Pretty-print JSON output")
	return cmd
}
