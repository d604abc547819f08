package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScoreSubmissionCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "fll_score_submissions_total",
		Help: "Number of rubric score batches recorded by judges",
	},
)

var ScoreRowsWrittenCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "fll_score_rows_written_total",
		Help: "Number of score rows written or updated",
	},
)

var TeamAccessCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fll_team_access_total",
	Help: "Team access code checks by outcome",
}, []string{"outcome"})

var ExportCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fll_report_exports_total",
	Help: "Report downloads by format",
}, []string{"format"})
