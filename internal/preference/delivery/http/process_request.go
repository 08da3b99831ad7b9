package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"dealflow-srv/internal/preference"
)

var (
	validLanguages = map[string]bool{"en": true, "de": true, "fr": true}
	validRisks     = map[string]bool{"low": true, "medium": true, "high": true}
)

func (h *handler) processSaveSettingsRequest(c *gin.Context) (savePrefsReq, error) {
	var req savePrefsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.processSaveSettingsRequest: ShouldBindJSON failed: %v", err)
		return req, err
	}

	if !validLanguages[req.Language] {
		return req, fmt.Errorf("%w: language %q", preference.ErrInvalidPrefs, req.Language)
	}
	if !validRisks[req.RiskProfile] {
		return req, fmt.Errorf("%w: risk_profile %q", preference.ErrInvalidPrefs, req.RiskProfile)
	}

	return req, nil
}
