package handlers

import (
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService *services.TagService
}

func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tags, err := h.tagService.GetTags(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "list tags", "Tag not found")
		return
	}
	utils.Success(c, tags)
}
