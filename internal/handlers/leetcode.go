package handlers

import (
	"devdash-backend/internal/models"
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

const problemNotFound = "Problem not found"

type LeetcodeHandler struct {
	leetcodeService *services.LeetcodeService
	extractor       *services.ProblemExtractor
}

func NewLeetcodeHandler(leetcodeService *services.LeetcodeService, extractor *services.ProblemExtractor) *LeetcodeHandler {
	return &LeetcodeHandler{leetcodeService: leetcodeService, extractor: extractor}
}

func (h *LeetcodeHandler) GetProblems(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.LeetcodeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ValidationError(c, "Invalid query parameters")
		return
	}

	problems, err := h.leetcodeService.GetProblems(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "list leetcode problems", problemNotFound)
		return
	}
	utils.Success(c, problems)
}

func (h *LeetcodeHandler) GetProblem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	problem, err := h.leetcodeService.GetProblem(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "get leetcode problem", problemNotFound)
		return
	}
	utils.Success(c, problem)
}

func (h *LeetcodeHandler) CreateProblem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.LeetcodeCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	problem, err := h.leetcodeService.CreateProblem(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err, "create leetcode problem", problemNotFound)
		return
	}
	utils.Created(c, problem)
}

func (h *LeetcodeHandler) UpdateProblem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.LeetcodeUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	problem, err := h.leetcodeService.UpdateProblem(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update leetcode problem", problemNotFound)
		return
	}
	utils.Success(c, problem)
}

func (h *LeetcodeHandler) DeleteProblem(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.leetcodeService.DeleteProblem(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "delete leetcode problem", problemNotFound)
		return
	}
	deleted(c, "Problem deleted successfully")
}

// ExtractProblem scrapes metadata for a problem URL. Scrape failures still
// answer 200 with fallback metadata.
func (h *LeetcodeHandler) ExtractProblem(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	var req models.LeetcodeExtractRequest
	if !bindJSON(c, &req) {
		return
	}

	meta, err := h.extractor.Extract(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, err, "extract leetcode problem", problemNotFound)
		return
	}
	utils.Success(c, meta)
}
