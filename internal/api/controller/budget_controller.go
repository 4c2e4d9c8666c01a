package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	service *service.BudgetService
}

func NewBudgetController(s *service.BudgetService) *BudgetController {
	return &BudgetController{service: s}
}

type SetBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Limit    float64 `json:"limit"`
}

// Set creates or replaces a budget
// @Summary Set budget
// @Description Upsert the monthly limit for one category
// @Tags Budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetBudgetRequest true "budget payload"
// @Success 200 {object} response.Response{data=model.Budget}
// @Router /budgets [post]
func (ctrl *BudgetController) Set(c *gin.Context) {
	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	budget, err := ctrl.service.Set(c.Request.Context(), ownerID(c), req.Category, req.Limit)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, budget)
}

// Status returns every budget with this month's spending
// @Summary Budget status
// @Description Each budget joined with the current month's expense total per category
// @Tags Budget
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]model.BudgetStatus}
// @Router /budgets [get]
func (ctrl *BudgetController) Status(c *gin.Context) {
	statuses, err := ctrl.service.Status(c.Request.Context(), ownerID(c), time.Now())
	if err != nil {
		slog.Error("budget status failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to load budget status")
		return
	}
	response.Success(c, statuses)
}

// Delete removes an owned budget
// @Summary Delete budget
// @Tags Budget
// @Produce json
// @Security BearerAuth
// @Param id path int true "budget id"
// @Success 200 {object} response.Response
// @Router /budgets/{id} [delete]
func (ctrl *BudgetController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "budget not found")
			return
		}
		slog.Error("delete budget failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to delete budget")
		return
	}
	response.Success(c, nil)
}
