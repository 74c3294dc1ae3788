package handlers

import (
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type FolderHandler struct {
	folderService *services.FolderService
}

func NewFolderHandler(folderService *services.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

func (h *FolderHandler) GetFolders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	folders, err := h.folderService.GetFolders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "list folders", "Folder not found")
		return
	}
	utils.Success(c, folders)
}

func (h *FolderHandler) CreateFolder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.FolderCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	folder, err := h.folderService.CreateFolder(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "create folder", "Folder not found")
		return
	}
	utils.Created(c, folder)
}
