package handlers

import (
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const noteNotFound = "Note not found"

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ValidationError(c, "Invalid query parameters")
		return
	}

	notes, err := h.noteService.GetNotes(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "list notes", noteNotFound)
		return
	}
	utils.Success(c, notes)
}

// GetNote supports ?format=html to include rendered content.
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	renderHTML := c.Query("format") == "html"
	note, err := h.noteService.GetNote(c.Request.Context(), userID, c.Param("id"), renderHTML)
	if err != nil {
		respondError(c, err, "get note", noteNotFound)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.NoteCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "create note", noteNotFound)
		return
	}
	utils.Created(c, note)
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.NoteUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update note", noteNotFound)
		return
	}
	utils.Success(c, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "delete note", noteNotFound)
		return
	}
	deleted(c, "Note deleted successfully")
}
