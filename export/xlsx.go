package export

import (
	"bytes"

	"fll/scoring"

	"github.com/xuri/excelize/v2"
)

// WriteXlsx renders the event report as a workbook with one summary sheet and
// one flat detail sheet. Cells carry the already aggregated values, nothing is
// recomputed here.
func WriteXlsx(report *scoring.EventReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, report); err != nil {
		return nil, err
	}
	if err := writeDetailSheet(f, report); err != nil {
		return nil, err
	}
	// drop the default sheet created by NewFile
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func writeSummarySheet(f *excelize.File, report *scoring.EventReport) error {
	sheet := "Resumen"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Posición", "Equipo", "Puntaje Total", "Calificaciones"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for rowIdx, team := range report.Teams {
		values := []interface{}{
			scoring.RankLabel(team.Position),
			team.TeamName,
			team.Total,
			team.ScoreCount,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDetailSheet(f *excelize.File, report *scoring.EventReport) error {
	sheet := "Detalle"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Equipo", "Jurado", "Rúbrica", "Aspecto", "Nivel", "Puntos", "Observación", "Observación General"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	row := 2
	for _, team := range report.Teams {
		for _, judge := range team.Judges {
			for _, rubric := range judge.Rubrics {
				for _, aspect := range rubric.Aspects {
					values := []interface{}{
						team.TeamName,
						judge.Name,
						rubric.Name,
						aspect.Name,
						aspect.SelectedLevel,
						aspect.Total,
						aspect.Observation,
						rubric.GeneralObservation,
					}
					for colIdx, value := range values {
						cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
						if err != nil {
							return err
						}
						if err := f.SetCellValue(sheet, cell, value); err != nil {
							return err
						}
					}
					row++
				}
			}
		}
	}
	return nil
}
