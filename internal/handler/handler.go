package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/futbol-stats-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, players service.PlayerService, matches service.MatchService, goals service.GoalService, tokens service.TokenService) {
	h := NewHealthHandler(repo)

	// Root status plus health probes
	r.GET("/", h.Status)
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	NewAuthHandler(tokens).Register(r)

	ph := NewPlayerHandler(players)
	mh := NewMatchHandler(matches)
	gh := NewGoalsHandler(goals)

	// Public reads
	r.GET("/jugador", ph.getSummary)
	r.GET("/jugadores", ph.list)
	r.GET("/partidos", mh.list)

	// Writes require a bearer token
	protected := r.Group("", RequireAuth(tokens))
	{
		protected.POST("/jugadores", ph.create)
		protected.POST("/partidos", mh.create)
		protected.PUT("/jugadores/goles", gh.record)
		protected.DELETE("/jugadores/goles", gh.remove)
	}
}
