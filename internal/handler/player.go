package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/futbol-stats-service/internal/service"
	"github.com/maxviazov/futbol-stats-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

type createPlayerRequest struct {
	Name      string  `json:"nombre"`
	BirthDate *string `json:"nacimiento"`
	Trait     *string `json:"caracteristica"`
	FunFact   *string `json:"curiosidad"`
}

// getSummary serves GET /jugador?nombre= with the aggregated player view.
func (h *PlayerHandler) getSummary(c *gin.Context) {
	name := strings.TrimSpace(c.Query("nombre"))
	if name == "" {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "nombre", Message: "query parameter is required"}}))
		return
	}
	summary, err := h.svc.GetPlayerSummary(c.Request.Context(), name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, summary)
}

// list serves GET /jugadores: the full leaderboard, already ranked.
func (h *PlayerHandler) list(c *gin.Context) {
	summaries, err := h.svc.ListPlayerSummaries(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, summaries)
}

func (h *PlayerHandler) create(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.CreatePlayer(c.Request.Context(), req.Name, req.BirthDate, req.Trait, req.FunFact)
	if err != nil {
		response.WriteMutationError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}
