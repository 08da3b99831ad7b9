package report

import (
	"time"

	"dealflow-srv/internal/model"
)

// SearchInput filters stored reports by date window and free text. Nil
// bounds leave that side of the window open.
type SearchInput struct {
	Query string
	From  *time.Time
	To    *time.Time
}

// SearchOutput lists the matching reports in storage order. Pending carries
// the keys whose details are still hydrating, so callers can tell "no
// matches" from "not loaded yet".
type SearchOutput struct {
	Reports []model.ReportMeta
	Pending []string
}
