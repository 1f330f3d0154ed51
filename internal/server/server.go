package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agenthands/mdm/internal/config"
	"github.com/agenthands/mdm/internal/core"
)

type Server struct {
	MDM    *core.MDM
	Log    *logrus.Logger
	Config config.ServerConfig
}

func NewServer(m *core.MDM, log *logrus.Logger, cfg config.ServerConfig) *Server {
	return &Server{
		MDM:    m,
		Log:    log,
		Config: cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggerMiddleware(s.Log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	ai := api.Group("")
	if s.Config.AIRateLimit > 0 {
		ai.Use(RateLimitMiddleware(s.Config.AIRateLimit, s.Config.AIBurst))
	}
	ai.POST("/cleanse", s.Cleanse)
	ai.POST("/duplicates/check", s.CheckDuplicates)

	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", s.AddCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)

	api.GET("/users", s.ListUsers)
	api.POST("/users", s.AddUser)
	api.GET("/users/:id", s.GetUser)
	api.PUT("/users/:id", s.UpdateUser)
	api.DELETE("/users/:id", s.DeleteUser)

	return r
}
