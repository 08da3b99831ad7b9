package http

import (
	"dealflow-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get preferences
// @Description Return current notification and report preferences, defaults when nothing is saved
// @Tags Preference
// @Produce json
// @Success 200 {object} prefsResp
// @Router /api/v1/settings [get]
func (h *handler) GetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Load(ctx)
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.GetSettings: usecase Load failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newPrefsResp(o))
}

// @Summary Save preferences
// @Description Persist preferences; a failed durable save still keeps them locally
// @Tags Preference
// @Accept json
// @Produce json
// @Param body body savePrefsReq true "Preferences"
// @Success 200 {object} saveResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/settings [put]
func (h *handler) SaveSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveSettingsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.SaveSettings: processSaveSettingsRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	o, err := h.uc.Save(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.SaveSettings: usecase Save failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, saveResp{Success: o.Success, Message: o.Message})
}
