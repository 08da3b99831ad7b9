package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
)

// maxDocumentBytes caps an onboarding document body.
const maxDocumentBytes = 1 << 20

func (h *handler) processDocumentRequest(c *gin.Context) (json.RawMessage, error) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDocumentBytes))
	if err != nil {
		h.l.Errorf(ctx, "mandate.delivery.http.processDocumentRequest: read body failed: %v", err)
		return nil, err
	}

	return json.RawMessage(body), nil
}
