package http

import (
	"dealflow-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Search stored reports
// @Description Filter stored reports by date window and free-text query over hydrated details
// @Tags Report
// @Accept json
// @Produce json
// @Param body body searchReportsReq true "Search filters"
// @Success 200 {object} searchReportsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports/search [post]
func (h *handler) SearchReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SearchReports: processSearchReportsRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SearchReports: invalid date bound: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.SearchReports: usecase Search failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSearchReportsResp(o))
}
