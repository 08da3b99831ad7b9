package http

import (
	"dealflow-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get an analysis result
// @Description Resolve a stored analysis result by row id or report key, with best-effort fallbacks
// @Tags Result
// @Produce json
// @Param id path string true "Result ID or report key"
// @Success 200 {object} resultResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/results/{id} [get]
func (h *handler) GetResult(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processGetResultRequest(c)

	o, err := h.uc.Resolve(ctx, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "result.delivery.http.GetResult: usecase Resolve failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newResultResp(o))
}

// @Summary List stored reports
// @Description Return metadata of stored analysis results, newest first
// @Tags Result
// @Produce json
// @Success 200 {object} []reportMetaResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.ListReports(ctx)
	if err != nil {
		h.l.Errorf(ctx, "result.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}
