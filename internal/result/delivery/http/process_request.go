package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGetResultRequest(c *gin.Context) getResultReq {
	return getResultReq{
		ID: c.Param("id"),
	}
}
