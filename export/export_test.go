package export

import (
	"bytes"
	"testing"
	"time"

	"fll/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *scoring.EventReport {
	return &scoring.EventReport{
		EventId:     1,
		EventName:   "Regional 2026",
		GeneratedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Teams: []*scoring.TeamReport{
			{
				TeamId:     10,
				TeamName:   "Robo1",
				Total:      13,
				ScoreCount: 4,
				Position:   1,
				Judges: []*scoring.JudgeReport{
					{
						JudgeId: 1,
						Name:    "Ana",
						Rubrics: []*scoring.RubricReport{
							{
								RubricId:           1,
								Name:               "Proyecto",
								Total:              7,
								GeneralObservation: "gran trabajo",
								Aspects: []*scoring.AspectReport{
									{AspectId: 1, Name: "Investigación", SelectedLevel: 3, Total: 3},
									{AspectId: 2, Name: "Solución", SelectedLevel: 4, Total: 4, Observation: "creativo"},
								},
							},
						},
					},
				},
			},
			{TeamId: 11, TeamName: "Robo2", Total: 0, Position: 2},
		},
	}
}

func TestWriteXlsx(t *testing.T) {
	buf, err := WriteXlsx(sampleReport())
	assert.NoError(t, err)
	assert.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Resumen")
	assert.Contains(t, sheets, "Detalle")
	assert.NotContains(t, sheets, "Sheet1")

	name, err := f.GetCellValue("Resumen", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Robo1", name)
	total, err := f.GetCellValue("Resumen", "C2")
	assert.NoError(t, err)
	assert.Equal(t, "13", total)

	aspect, err := f.GetCellValue("Detalle", "D2")
	assert.NoError(t, err)
	assert.Equal(t, "Investigación", aspect)
}

func TestWritePdf(t *testing.T) {
	buf, err := WritePdf(sampleReport())
	assert.NoError(t, err)
	assert.NotZero(t, buf.Len())
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
