package controller

import (
	"net/http"

	"github.com/Sanzzyy/management-finasial/internal/api/response"
	"github.com/Sanzzyy/management-finasial/internal/service"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *service.ChatService
}

func NewChatController(s *service.ChatService) *ChatController {
	return &ChatController{service: s}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a question about the owner's finances
// @Summary Chat with FinBot
// @Description The reply is grounded in the owner's own transactions and budgets
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "question"
// @Success 200 {object} response.Response{data=ChatResponse}
// @Router /chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	reply, err := ctrl.service.Chat(c.Request.Context(), ownerID(c), req.Message)
	if err != nil {
		// Model failures already degraded to the fallback reply inside the
		// service; whatever reaches here is a persistence problem.
		response.Error(c, http.StatusInternalServerError, "failed to answer")
		return
	}
	response.Success(c, ChatResponse{Reply: reply})
}
