package webserver

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/factlens/factscore/src/api/config"
	"github.com/factlens/factscore/src/factcheck/components/quota"
	"github.com/factlens/factscore/src/factcheck/pipeline"
)

func attachRoutes(r *gin.Engine, cfg config.Config, pipe *pipeline.Pipeline, gov *quota.Governor) {
	// The display layer is served from another origin; preflight requests are
	// answered by the cors middleware.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	r.Use(RequestID())

	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	factH := NewFactCheck(pipe, timeout)
	quotaH := NewQuota(gov, cfg.VideoAPIKey != "")
	healthH := NewHealth(cfg)

	v1 := r.Group("/v1")
	{
		v1.POST("/factcheck", factH.Check)
		v1.GET("/quota", quotaH.Status)
		v1.GET("/health", healthH.Status)
	}
}
