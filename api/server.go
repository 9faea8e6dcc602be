package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/quantlabs/atmrank/config"
	"github.com/quantlabs/atmrank/rank"
)

// RateSource supplies the current scalar risk-free rate.
type RateSource interface {
	RiskFreeRate(ctx context.Context) float64
}

// Server serves HTTP requests for the ranking service.
type Server struct {
	cfg    *config.Config
	ranker *rank.Ranker
	rates  RateSource
	router *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(cfg *config.Config, ranker *rank.Ranker, rates RateSource) *Server {
	server := &Server{cfg: cfg, ranker: ranker, rates: rates}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	authRoutes := router.Group("/v1").Use(server.authentication)
	authRoutes.POST("/rank", server.rank)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
