package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dealflow-srv/pkg/discord"
	pkgErrors "dealflow-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. Mapped HTTPErrors keep their status code;
// everything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		if httpErr.StatusCode >= http.StatusInternalServerError {
			notify(c, notifier, err)
		}
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notify(c, notifier, err)
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
	notify(c, notifier, fmt.Errorf("panic: %v", recovered))
}

func notify(c *gin.Context, notifier discord.IDiscord, err error) {
	if notifier == nil {
		return
	}
	// Alerting is best effort; the response has already been written.
	_ = notifier.SendError(c.Request.Context(),
		"Unexpected server error",
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
		err,
	)
}
