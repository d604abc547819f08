package controller

import (
	"fmt"
	"strconv"

	"fll/app_error"
	"fll/export"
	"fll/metrics"
	"fll/repository"
	"fll/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExportController struct {
	reportService *service.ReportService
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{
		reportService: service.NewReportService(db),
	}
}

func setupExportController(db *gorm.DB) []RouteInfo {
	e := NewExportController(db)
	admin := []repository.UserRole{repository.RoleAdmin}
	routes := []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/export/pdf", HandlerFunc: e.exportPdfHandler(), Authenticated: true, RequiredRoles: admin},
		{Method: "GET", Path: "/events/:event_id/export/xlsx", HandlerFunc: e.exportXlsxHandler(), Authenticated: true, RequiredRoles: admin},
	}
	return routes
}

// @id ExportPdf
// @Description Downloads the event report as a pdf document
// @Tags export
// @Produce application/pdf
// @Param event_id path int true "Event Id"
// @Success 200 {file} binary
// @Router /events/{event_id}/export/pdf [get]
func (e *ExportController) exportPdfHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.reportService.GetEventReport(eventId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				app_error.Render(c, err)
			}
			return
		}
		buf, err := export.WritePdf(report)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		metrics.ExportCounter.WithLabelValues("pdf").Inc()
		filename := fmt.Sprintf("reporte-evento-%d.pdf", eventId)
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(200, "application/pdf", buf.Bytes())
	}
}

// @id ExportXlsx
// @Description Downloads the event report as a spreadsheet
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param event_id path int true "Event Id"
// @Success 200 {file} binary
// @Router /events/{event_id}/export/xlsx [get]
func (e *ExportController) exportXlsxHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		eventId, err := strconv.Atoi(c.Param("event_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		report, err := e.reportService.GetEventReport(eventId)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(404, gin.H{"error": "Event not found"})
			} else {
				app_error.Render(c, err)
			}
			return
		}
		buf, err := export.WriteXlsx(report)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		metrics.ExportCounter.WithLabelValues("xlsx").Inc()
		filename := fmt.Sprintf("reporte-evento-%d.xlsx", eventId)
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}
