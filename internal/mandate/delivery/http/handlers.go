package http

import (
	"context"
	"encoding/json"

	"dealflow-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get the mandate facts document
// @Description Return the investor's structured onboarding profile, or an empty document before onboarding
// @Tags Mandate
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} response.Resp
// @Router /api/v1/mandate/facts [get]
func (h *handler) GetFacts(c *gin.Context) {
	h.getDoc(c, "GetFacts", h.uc.GetFacts)
}

// @Summary Save the mandate facts document
// @Description Persist the investor's structured onboarding profile verbatim
// @Tags Mandate
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/mandate/facts [put]
func (h *handler) PutFacts(c *gin.Context) {
	h.putDoc(c, "PutFacts", h.uc.PutFacts)
}

// @Summary Get the soft answers document
// @Description Return the investor's free-form onboarding answers, or an empty document before onboarding
// @Tags Mandate
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} response.Resp
// @Router /api/v1/mandate/soft [get]
func (h *handler) GetSoft(c *gin.Context) {
	h.getDoc(c, "GetSoft", h.uc.GetSoft)
}

// @Summary Save the soft answers document
// @Description Persist the investor's free-form onboarding answers verbatim
// @Tags Mandate
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/mandate/soft [put]
func (h *handler) PutSoft(c *gin.Context) {
	h.putDoc(c, "PutSoft", h.uc.PutSoft)
}

func (h *handler) getDoc(c *gin.Context, op string, load func(context.Context) (json.RawMessage, error)) {
	ctx := c.Request.Context()

	doc, err := load(ctx)
	if err != nil {
		h.l.Errorf(ctx, "mandate.delivery.http.%s: usecase failed: %v", op, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, doc)
}

func (h *handler) putDoc(c *gin.Context, op string, save func(context.Context, json.RawMessage) error) {
	ctx := c.Request.Context()

	doc, err := h.processDocumentRequest(c)
	if err != nil {
		response.Error(c, errInvalidDocument, h.discord)
		return
	}

	if err := save(ctx, doc); err != nil {
		h.l.Errorf(ctx, "mandate.delivery.http.%s: usecase failed: %v", op, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
