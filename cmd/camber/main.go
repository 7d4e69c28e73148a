package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	beam "Camber/internal/calc/beam"

	"github.com/spf13/cobra"
)

var (
	flagUnits   string
	flagSpan    float64
	flagEMod    float64
	flagInertia float64
	flagUDL     float64
	flagPoint   float64
)

var rootCmd = &cobra.Command{
	Use:   "camber",
	Short: "Simply supported beam response calculator",
	Long: `Offline front-end for the beam evaluator: reactions, peak shear,
peak moment and midspan deflection for a simply supported beam under a
uniform load or a midspan point load.

Results are always printed in kN, kN*m and mm regardless of the input
unit system.`,
}

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Evaluate one simply supported beam",
	Long: `Evaluate a simply supported beam. Give exactly one of --udl or
--point; the other load case is ignored.

Units follow --units:
  us      span in, E ksi, I in4, udl kip/in, point kip
  metric  span mm, E GPa, I mm4, udl kN/mm, point kN

Examples:
  camber beam --units us --span 120 --e 29000 --i 200 --udl 0.001
  camber beam --units metric --span 3000 --e 200 --i 8.333e7 --point 10`,
	RunE: runBeam,
}

func init() {
	beamCmd.Flags().StringVar(&flagUnits, "units", "metric", "Unit system: us or metric")
	beamCmd.Flags().Float64Var(&flagSpan, "span", 0, "Span (in or mm) [required]")
	beamCmd.Flags().Float64Var(&flagEMod, "e", 0, "Elastic modulus (ksi or GPa) [required]")
	beamCmd.Flags().Float64Var(&flagInertia, "i", 0, "Moment of inertia (in4 or mm4) [required]")
	beamCmd.Flags().Float64Var(&flagUDL, "udl", 0, "Uniform load (kip/in or kN/mm)")
	beamCmd.Flags().Float64Var(&flagPoint, "point", 0, "Midspan point load (kip or kN)")

	beamCmd.MarkFlagRequired("span")
	beamCmd.MarkFlagRequired("e")
	beamCmd.MarkFlagRequired("i")

	rootCmd.AddCommand(beamCmd)
}

func runBeam(cmd *cobra.Command, args []string) error {
	in := beam.Input{
		Units:   beam.UnitSystem(flagUnits),
		Span:    flagSpan,
		EMod:    flagEMod,
		Inertia: flagInertia,
	}
	switch {
	case flagPoint != 0 && flagUDL != 0:
		return fmt.Errorf("give only one of --udl and --point")
	case flagPoint != 0:
		in.LoadKind = beam.LoadMidspanPoint
		in.PointLoad = flagPoint
	default:
		in.LoadKind = beam.LoadDistributed
		in.UDL = flagUDL
	}

	res, err := beam.Calculate(in)
	if err != nil {
		if errors.Is(err, beam.ErrIncomplete) {
			return fmt.Errorf("incomplete input: span, e, i and the load magnitude must all be non-zero")
		}
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Span:\t%g %s\n", in.Span, beam.SpanUnit(in.Units))
	fmt.Fprintf(w, "E:\t%g %s\n", in.EMod, beam.ModulusUnit(in.Units))
	fmt.Fprintf(w, "I:\t%g %s\n", in.Inertia, beam.InertiaUnit(in.Units))
	if in.LoadKind == beam.LoadMidspanPoint {
		fmt.Fprintf(w, "Load:\tP = %g %s at midspan\n", in.PointLoad, beam.LoadUnit(in.Units, in.LoadKind))
	} else {
		fmt.Fprintf(w, "Load:\tw = %g %s over full span\n", in.UDL, beam.LoadUnit(in.Units, in.LoadKind))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Support reaction:\t%.4f kN\n", res.ReactionKN)
	fmt.Fprintf(w, "Peak shear:\t%.4f kN\n", res.PeakShearKN)
	fmt.Fprintf(w, "Peak moment:\t%.4f kN*m\n", res.PeakMomentKNM)
	fmt.Fprintf(w, "Max deflection:\t%.4f mm\n", res.MaxDeflectionMM)
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
