package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/model"
	"github.com/Sanzzyy/management-finasial/internal/repository"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	service *service.TransactionService
}

func NewTransactionController(s *service.TransactionService) *TransactionController {
	return &TransactionController{service: s}
}

// ==========================================
// DTOs
// ==========================================

type CreateTransactionRequest struct {
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Priority string  `json:"priority"`
	Date     string  `json:"date"` // RFC 3339 or "2006-01-02", defaults to now
}

// UpdateTransactionRequest is a patch: absent fields stay untouched.
type UpdateTransactionRequest struct {
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount"`
	Type     *string  `json:"type"`
	Category *string  `json:"category"`
	Priority *string  `json:"priority"`
	Date     *string  `json:"date"`
}

type ListTransactionsRequest struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=20"`
	Type      string `form:"type"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"` // "2006-01-02"
	EndDate   string `form:"end_date"`
}

type ListTransactionsResponse struct {
	List  []model.Transaction `json:"list"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
}

// ==========================================
// Handlers
// ==========================================

// Create records a transaction
// @Summary Create transaction
// @Tags Transaction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "transaction payload"
// @Success 200 {object} response.Response{data=model.Transaction}
// @Router /transactions [post]
func (ctrl *TransactionController) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	input := service.TransactionInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Type:     model.TransactionType(req.Type),
		Category: req.Category,
		Priority: model.Priority(req.Priority),
	}
	if req.Date != "" {
		date, ok := parseDate(req.Date)
		if !ok {
			response.Error(c, http.StatusBadRequest, "invalid date format")
			return
		}
		input.Date = date
	}

	tx, err := ctrl.service.Create(c.Request.Context(), ownerID(c), input)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, tx)
}

// List returns the owner's transactions
// @Summary List transactions
// @Tags Transaction
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=ListTransactionsResponse}
// @Router /transactions [get]
func (ctrl *TransactionController) List(c *gin.Context) {
	var req ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters")
		return
	}

	filter := repository.TransactionFilter{
		UserID:   ownerID(c),
		Type:     model.TransactionType(req.Type),
		Category: req.Category,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.StartDate != "" {
		if t, ok := parseDate(req.StartDate); ok {
			filter.StartDate = t
		}
	}
	if req.EndDate != "" {
		if t, ok := parseDate(req.EndDate); ok {
			filter.EndDate = t.Add(24 * time.Hour) // end date is inclusive
		}
	}

	list, total, err := ctrl.service.List(c.Request.Context(), filter)
	if err != nil {
		slog.Error("list transactions failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	response.Success(c, ListTransactionsResponse{
		List:  list,
		Total: total,
		Page:  req.Page,
	})
}

// Update patches an owned transaction
// @Summary Update transaction
// @Tags Transaction
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction id"
// @Param request body UpdateTransactionRequest true "fields to change"
// @Success 200 {object} response.Response{data=model.Transaction}
// @Router /transactions/{id} [put]
func (ctrl *TransactionController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	patch := service.TransactionPatch{
		Title:  req.Title,
		Amount: req.Amount,
	}
	if req.Type != nil {
		t := model.TransactionType(*req.Type)
		patch.Type = &t
	}
	if req.Category != nil {
		patch.Category = req.Category
	}
	if req.Priority != nil {
		p := model.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.Date != nil {
		date, ok := parseDate(*req.Date)
		if !ok {
			response.Error(c, http.StatusBadRequest, "invalid date format")
			return
		}
		patch.Date = &date
	}

	tx, err := ctrl.service.Update(c.Request.Context(), ownerID(c), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "transaction not found")
			return
		}
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	response.Success(c, tx)
}

// Delete removes an owned transaction
// @Summary Delete transaction
// @Tags Transaction
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction id"
// @Success 200 {object} response.Response
// @Router /transactions/{id} [delete]
func (ctrl *TransactionController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "transaction not found")
			return
		}
		slog.Error("delete transaction failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "failed to delete transaction")
		return
	}
	response.Success(c, nil)
}

// parseDate accepts RFC 3339 first, then a bare calendar day.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}
