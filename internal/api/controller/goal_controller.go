package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

type GoalController struct {
	service *service.GoalService
}

func NewGoalController(s *service.GoalService) *GoalController {
	return &GoalController{service: s}
}

type CreateGoalRequest struct {
	Title        string  `json:"title" binding:"required"`
	TargetAmount float64 `json:"targetAmount" binding:"required"`
}

type AddSavingRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// List returns the owner's goals with progress
// @Summary List goals
// @Tags Goal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]model.GoalStatus}
// @Router /goals [get]
func (ctrl *GoalController) List(c *gin.Context) {
	goals, err := ctrl.service.List(c.Request.Context(), ownerID(c))
	if err != nil {
		slog.Error("list goals failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to load goals")
		return
	}
	response.Success(c, goals)
}

// Create adds a savings goal
// @Summary Create goal
// @Tags Goal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "goal payload"
// @Success 200 {object} response.Response{data=model.Goal}
// @Router /goals [post]
func (ctrl *GoalController) Create(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	goal, err := ctrl.service.Create(c.Request.Context(), ownerID(c), req.Title, req.TargetAmount)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, goal)
}

// AddSaving contributes to an owned goal
// @Summary Add saving
// @Description Atomically increments the goal's saved amount
// @Tags Goal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Param request body AddSavingRequest true "contribution"
// @Success 200 {object} response.Response{data=model.GoalStatus}
// @Router /goals/{id}/save [put]
func (ctrl *GoalController) AddSaving(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req AddSavingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	status, err := ctrl.service.AddSaving(c.Request.Context(), ownerID(c), id, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "goal not found")
			return
		}
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, status)
}

// Delete removes an owned goal
// @Summary Delete goal
// @Tags Goal
// @Produce json
// @Security BearerAuth
// @Param id path int true "goal id"
// @Success 200 {object} response.Response
// @Router /goals/{id} [delete]
func (ctrl *GoalController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("delete goal failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to delete goal")
		return
	}
	response.Success(c, nil)
}
