package http

import (
	"dealflow-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Start an analysis job
// @Description Upload deal documents and dispatch a new analysis job. Per-file upload failures are reported without blocking the start.
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param files formData file false "Deal documents"
// @Param context formData string false "Free-text deal context"
// @Param preferences formData string false "Client preference document as JSON"
// @Success 200 {object} startResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analysis/start [post]
func (h *handler) StartAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	input, cleanup, err := h.processStartAnalysisRequest(c)
	if err != nil {
		response.Error(c, errInvalidForm, h.discord)
		return
	}
	defer cleanup()

	o, err := h.uc.Start(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.StartAnalysis: usecase Start failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStartResp(o))
}

// @Summary Get job status
// @Description Snapshot the per-agent progress of a running analysis job
// @Tags Analysis
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} statusResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analysis/{job_id}/status [get]
func (h *handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processJobRequest(c)

	agents, err := h.uc.Status(ctx, req.JobID)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetStatus: usecase Status failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatusResp(agents))
}

// @Summary Get the job's report URL
// @Description Return where the job's PDF report can be fetched
// @Tags Analysis
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} reportURLResp
// @Router /api/v1/analysis/{job_id}/report-url [get]
func (h *handler) GetReportURL(c *gin.Context) {
	req := h.processJobRequest(c)

	response.OK(c, reportURLResp{URL: h.uc.ReportPDFURL(req.JobID)})
}
