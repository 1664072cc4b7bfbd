package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/futbol-stats-service/internal/service"
	"github.com/maxviazov/futbol-stats-service/pkg/response"
)

type GoalsHandler struct {
	svc service.GoalService
}

func NewGoalsHandler(svc service.GoalService) *GoalsHandler { return &GoalsHandler{svc: svc} }

type recordGoalsRequest struct {
	Name  string `json:"nombre"`
	Date  string `json:"fecha"`
	Goals *int   `json:"goles"`
}

type removeGoalsRequest struct {
	Name string `json:"nombre"`
	Date string `json:"fecha"`
}

// record serves PUT /jugadores/goles, overwriting the pair's goal count.
func (h *GoalsHandler) record(c *gin.Context) {
	var req recordGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if req.Goals == nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "goles", Message: "is required"}}))
		return
	}
	entry, err := h.svc.RecordGoals(c.Request.Context(), req.Name, req.Date, *req.Goals)
	if err != nil {
		response.WriteMutationError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, entry)
}

// remove serves DELETE /jugadores/goles, dropping the pair's entry.
func (h *GoalsHandler) remove(c *gin.Context) {
	var req removeGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if err := h.svc.RemoveGoals(c.Request.Context(), req.Name, req.Date); err != nil {
		response.WriteMutationError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"eliminados": 1})
}
