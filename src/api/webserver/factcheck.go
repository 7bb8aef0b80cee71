package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/factlens/factscore/src/factcheck/pipeline"
)

type FactCheck struct {
	pipe    *pipeline.Pipeline
	timeout time.Duration
}

func NewFactCheck(pipe *pipeline.Pipeline, timeout time.Duration) FactCheck {
	return FactCheck{pipe: pipe, timeout: timeout}
}

type factCheckRequest struct {
	Claim                string `json:"claim" binding:"required,min=1,max=500"`
	IncludeVideoEvidence bool   `json:"includeVideoEvidence"`
}

// Check runs the full verification pipeline for one claim. Fatal pipeline
// errors (primary evidence or primary judgment provider down) surface as a
// server error; all recoverable conditions are folded into the success
// payload.
func (h FactCheck) Check(c *gin.Context) {
	var req factCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "claim is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.pipe.Run(ctx, req.Claim, req.IncludeVideoEvidence)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
