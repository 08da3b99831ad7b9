package http

import (
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"dealflow-srv/internal/analysis"
)

type jobReq struct {
	JobID string
}

func (h *handler) processJobRequest(c *gin.Context) jobReq {
	return jobReq{
		JobID: c.Param("job_id"),
	}
}

// processStartAnalysisRequest parses the multipart start form. The returned
// cleanup closes every opened file part and must run after the use case has
// consumed the readers.
func (h *handler) processStartAnalysisRequest(c *gin.Context) (analysis.StartInput, func(), error) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.processStartAnalysisRequest: MultipartForm failed: %v", err)
		return analysis.StartInput{}, func() {}, err
	}

	input := analysis.StartInput{
		Context: c.PostForm("context"),
	}
	if raw := c.PostForm("preferences"); raw != "" && json.Valid([]byte(raw)) {
		input.Preferences = json.RawMessage(raw)
	}

	opened := make([]multipart.File, 0)
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			h.l.Errorf(ctx, "analysis.delivery.http.processStartAnalysisRequest: open %s failed: %v", fh.Filename, err)
			return analysis.StartInput{}, func() {}, err
		}
		opened = append(opened, f)

		input.Files = append(input.Files, analysis.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      io.Reader(f),
		})
	}

	return input, cleanup, nil
}
