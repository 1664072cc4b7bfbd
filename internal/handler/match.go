package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/futbol-stats-service/internal/service"
	"github.com/maxviazov/futbol-stats-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

type createMatchRequest struct {
	Date        string  `json:"fecha"`
	Venue       *string `json:"lugar"`
	Description *string `json:"descripcion"`
}

// list serves GET /partidos in chronological order.
func (h *MatchHandler) list(c *gin.Context) {
	summaries, err := h.svc.ListMatchSummaries(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, summaries)
}

func (h *MatchHandler) create(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	match, err := h.svc.CreateMatch(c.Request.Context(), req.Date, req.Venue, req.Description)
	if err != nil {
		response.WriteMutationError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}
