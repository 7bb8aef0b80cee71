package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/factlens/factscore/src/factcheck/components/quota"
)

type Quota struct {
	gov          *quota.Governor
	videoEnabled bool
}

func NewQuota(gov *quota.Governor, videoEnabled bool) Quota {
	return Quota{gov: gov, videoEnabled: videoEnabled}
}

// Status reports today's video-search quota. Without a video API key the
// feature is disabled; without a counter store the full ceiling is reported.
func (h Quota) Status(c *gin.Context) {
	if !h.videoEnabled {
		c.JSON(http.StatusOK, quota.Status{Enabled: false})
		return
	}
	st := h.gov.CurrentStatus(c.Request.Context())
	c.JSON(http.StatusOK, st)
}
