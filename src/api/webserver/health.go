package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/factlens/factscore/src/api/config"
)

type Health struct {
	cfg config.Config
}

func NewHealth(cfg config.Config) Health {
	return Health{cfg: cfg}
}

// Status reports which providers are configured without calling any of them.
func (h Health) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"providers": gin.H{
			"news":       h.cfg.SearchClientID != "",
			"factCheck":  h.cfg.FactCheckAPIKey != "",
			"video":      h.cfg.VideoAPIKey != "",
			"primary":    h.cfg.OpenAIKey != "",
			"crossCheck": h.cfg.EnableCrossCheck && h.cfg.GeminiKey != "",
		},
		"quotaCounter": h.cfg.RedisURL != "",
	})
}
