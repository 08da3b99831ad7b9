package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSearchReportsRequest(c *gin.Context) (searchReportsReq, error) {
	var req searchReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processSearchReportsRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	return req, nil
}
