package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	service *service.ScheduleService
}

func NewScheduleController(s *service.ScheduleService) *ScheduleController {
	return &ScheduleController{service: s}
}

type CreateScheduleRequest struct {
	Subject string `json:"subject" binding:"required"`
	Day     string `json:"day" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Room    string `json:"room"`
	Type    string `json:"type" binding:"required"`
}

type UpdateScheduleRequest struct {
	Subject     *string `json:"subject"`
	Day         *string `json:"day"`
	Time        *string `json:"time"`
	Room        *string `json:"room"`
	Type        *string `json:"type"`
	IsCompleted *bool   `json:"isCompleted"`
}

// List returns the owner's schedule
// @Summary List schedules
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param day query string false "filter by weekday"
// @Success 200 {object} response.Response{data=[]model.Schedule}
// @Router /schedules [get]
func (ctrl *ScheduleController) List(c *gin.Context) {
	schedules, err := ctrl.service.List(c.Request.Context(), ownerID(c), c.Query("day"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, schedules)
}

// Create adds a schedule entry
// @Summary Create schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateScheduleRequest true "schedule payload"
// @Success 200 {object} response.Response{data=model.Schedule}
// @Router /schedules [post]
func (ctrl *ScheduleController) Create(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	schedule, err := ctrl.service.Create(c.Request.Context(), ownerID(c), service.ScheduleInput{
		Subject: req.Subject,
		Day:     req.Day,
		Time:    req.Time,
		Room:    req.Room,
		Type:    req.Type,
	})
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, schedule)
}

// Update patches an owned schedule entry (including the completion toggle)
// @Summary Update schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "schedule id"
// @Param request body UpdateScheduleRequest true "fields to change"
// @Success 200 {object} response.Response{data=model.Schedule}
// @Router /schedules/{id} [put]
func (ctrl *ScheduleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	schedule, err := ctrl.service.Update(c.Request.Context(), ownerID(c), id, service.SchedulePatch{
		Subject:     req.Subject,
		Day:         req.Day,
		Time:        req.Time,
		Room:        req.Room,
		Type:        req.Type,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "schedule not found")
			return
		}
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, schedule)
}

// Delete removes an owned schedule entry
// @Summary Delete schedule
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param id path int true "schedule id"
// @Success 200 {object} response.Response
// @Router /schedules/{id} [delete]
func (ctrl *ScheduleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "schedule not found")
			return
		}
		slog.Error("delete schedule failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to delete schedule")
		return
	}
	response.Success(c, nil)
}
