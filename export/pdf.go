package export

import (
	"bytes"
	"fmt"

	"fll/config"
	"fll/scoring"

	"github.com/jung-kurt/gofpdf"
)

// WritePdf renders the event report as a printable document: a ranking table
// followed by one section per team with the per-judge breakdown. Positions
// are printed as numbers, the core fonts have no glyphs for the medal
// markers.
func WritePdf(report *scoring.EventReport) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(config.Env().ReportTitle), false)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(config.Env().ReportTitle), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(report.EventName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, report.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeRankingTable(pdf, tr, report)
	for _, team := range report.Teams {
		writeTeamSection(pdf, tr, team)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeRankingTable(pdf *gofpdf.Fpdf, tr func(string) string, report *scoring.EventReport) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Posiciones"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(20, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(110, 7, tr("Equipo"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, tr("Puntaje"), "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, team := range report.Teams {
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", team.Position), "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, 7, tr(team.TeamName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", team.Total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTeamSection(pdf *gofpdf.Fpdf, tr func(string) string, team *scoring.TeamReport) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("%d. %s (%d puntos)", team.Position, team.TeamName, team.Total)), "", 1, "L", false, 0, "")

	for _, judge := range team.Judges {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, tr(judge.Name), "", 1, "L", false, 0, "")
		for _, rubric := range judge.Rubrics {
			pdf.SetFont("Arial", "B", 10)
			pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s (suma: %d)", rubric.Name, rubric.Total)), "", 1, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			for _, aspect := range rubric.Aspects {
				line := fmt.Sprintf("%s: nivel %d, %d puntos", aspect.Name, aspect.SelectedLevel, aspect.Total)
				if aspect.Observation != "" {
					line += " / " + aspect.Observation
				}
				pdf.MultiCell(0, 5, tr(line), "", "L", false)
			}
			if rubric.GeneralObservation != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, tr("Observación general: "+rubric.GeneralObservation), "", "L", false)
				pdf.SetFont("Arial", "", 9)
			}
			pdf.Ln(2)
		}
	}
}
