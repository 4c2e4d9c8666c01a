package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	service *service.ReportService
}

func NewReportController(s *service.ReportService) *ReportController {
	return &ReportController{service: s}
}

type ReportRequest struct {
	// Month is 0-based (January = 0), mirroring how the frontend pickers
	// index months. Defaults to the current month/year.
	Month *int `form:"month"`
	Year  *int `form:"year"`
}

// Monthly builds the monthly report
// @Summary Monthly report
// @Description Totals, sparse daily series, and the expense-by-category breakdown for one month
// @Tags Report
// @Produce json
// @Security BearerAuth
// @Param month query int false "0-based month index"
// @Param year query int false "calendar year"
// @Success 200 {object} response.Response{data=service.MonthlyReport}
// @Router /reports [get]
func (ctrl *ReportController) Monthly(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters")
		return
	}

	now := time.Now()
	month := int(now.Month()) - 1
	year := now.Year()
	if req.Month != nil {
		month = *req.Month
	}
	if req.Year != nil {
		year = *req.Year
	}
	if month < 0 || month > 11 {
		response.Error(c, http.StatusBadRequest, "month must be between 0 and 11")
		return
	}

	report, err := ctrl.service.Monthly(c.Request.Context(), ownerID(c), month, year)
	if err != nil {
		slog.Error("monthly report failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to build report")
		return
	}
	response.Success(c, report)
}
