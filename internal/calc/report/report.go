package report

import (
	"fmt"
	"time"

	beam "Camber/internal/calc/beam"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Title   string     `json:"title"`
	Beam    beam.Input `json:"beam"`
}

// Build evaluates the beam and lays out a one-page calculation sheet:
// the input echoed in its native units, the formulas applied, and the
// result in the fixed display units.
func Build(in Input) (*gofpdf.Fpdf, error) {
	res, err := beam.Calculate(in.Beam)
	if err != nil {
		return nil, err
	}
	if in.Title == "" {
		in.Title = "Beam Calculation Sheet"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input (simply supported beam)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	b := in.Beam
	pdf.Cell(0, 6, fmt.Sprintf("Span: %g %s", b.Span, beam.SpanUnit(b.Units)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Elastic modulus E: %g %s", b.EMod, beam.ModulusUnit(b.Units)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Moment of inertia I: %g %s", b.Inertia, beam.InertiaUnit(b.Units)))
	pdf.Ln(6)
	if b.LoadKind == beam.LoadMidspanPoint {
		pdf.Cell(0, 6, fmt.Sprintf("Midspan point load P: %g %s", b.PointLoad, beam.LoadUnit(b.Units, b.LoadKind)))
		pdf.Ln(8)
		pdf.Cell(0, 6, "Formulas: R = P/2, M = P*L/4, d = P*L^3/(48*E*I)")
	} else {
		pdf.Cell(0, 6, fmt.Sprintf("Uniform load w: %g %s", b.UDL, beam.LoadUnit(b.Units, b.LoadKind)))
		pdf.Ln(8)
		pdf.Cell(0, 6, "Formulas: R = w*L/2, M = w*L^2/8, d = 5*w*L^4/(384*E*I)")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results (display units)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Support reaction: %.4f kN", res.ReactionKN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Peak shear: %.4f kN", res.PeakShearKN))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Peak moment: %.4f kN*m", res.PeakMomentKNM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Max deflection: %.4f mm", res.MaxDeflectionMM))

	return pdf, nil
}
