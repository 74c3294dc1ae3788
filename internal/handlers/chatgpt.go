package handlers

import (
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const chatNotFound = "Chat not found"

type ChatgptHandler struct {
	chatgptService *services.ChatgptService
}

func NewChatgptHandler(chatgptService *services.ChatgptService) *ChatgptHandler {
	return &ChatgptHandler{chatgptService: chatgptService}
}

func (h *ChatgptHandler) GetChats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ChatgptListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ValidationError(c, "Invalid query parameters")
		return
	}

	chats, err := h.chatgptService.GetChats(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "list chats", chatNotFound)
		return
	}
	utils.Success(c, chats)
}

func (h *ChatgptHandler) GetChat(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	chat, err := h.chatgptService.GetChat(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "get chat", chatNotFound)
		return
	}
	utils.Success(c, chat)
}

func (h *ChatgptHandler) CreateChat(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ChatgptCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	chat, err := h.chatgptService.CreateChat(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "create chat", chatNotFound)
		return
	}
	utils.Created(c, chat)
}

func (h *ChatgptHandler) UpdateChat(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ChatgptUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	chat, err := h.chatgptService.UpdateChat(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update chat", chatNotFound)
		return
	}
	utils.Success(c, chat)
}

func (h *ChatgptHandler) DeleteChat(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.chatgptService.DeleteChat(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "delete chat", chatNotFound)
		return
	}
	deleted(c, "Chat deleted successfully")
}
