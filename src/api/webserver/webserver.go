package webserver

import (
	"github.com/gin-gonic/gin"

	"github.com/factlens/factscore/src/api/config"
	"github.com/factlens/factscore/src/factcheck/components/quota"
	"github.com/factlens/factscore/src/factcheck/pipeline"
)

func New(cfg config.Config, pipe *pipeline.Pipeline, gov *quota.Governor) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, pipe, gov)
	return g
}
