package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/report"
	"dealflow-srv/pkg/util"
)

// Search filters stored reports by date window and free text. Storage order
// is preserved; no re-sort happens here. Text matching runs against lazily
// hydrated details: each key is fetched at most once ever, concurrent
// searches share in-flight fetches, and a row whose detail is not hydrated
// yet (or whose fetch failed) never matches.
func (uc *implUseCase) Search(ctx context.Context, input report.SearchInput) (report.SearchOutput, error) {
	metas, err := uc.resultUC.ListReports(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Search: ListReports failed: %v", err)
		return report.SearchOutput{}, fmt.Errorf("%w: %v", report.ErrListFailed, err)
	}

	filtered := filterByDate(metas, input.From, input.To)

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return report.SearchOutput{Reports: filtered, Pending: []string{}}, nil
	}

	hydrations := uc.hydrate(filtered)

	out := report.SearchOutput{Reports: []model.ReportMeta{}, Pending: []string{}}
	needle := strings.ToLower(query)
	for i, m := range filtered {
		h := hydrations[i]
		// An already-hydrated detail always counts, even when the request
		// context has expired; only a genuinely in-flight fetch is pending.
		select {
		case <-h.done:
		default:
			select {
			case <-h.done:
			case <-ctx.Done():
				out.Pending = append(out.Pending, metaKey(m))
				continue
			}
		}
		if h.err == nil && matches(h.res, needle) {
			out.Reports = append(out.Reports, m)
		}
	}

	return out, nil
}

func filterByDate(metas []model.ReportMeta, from, to *time.Time) []model.ReportMeta {
	filtered := make([]model.ReportMeta, 0, len(metas))
	for _, m := range metas {
		if from != nil && m.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && m.CreatedAt.After(util.EndOfDay(*to)) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// hydrate starts detail fetches for every key not seen before and returns
// the hydration handles in meta order. Fetches run detached from the
// request context so an abandoned search cannot poison the cache.
func (uc *implUseCase) hydrate(metas []model.ReportMeta) []*hydration {
	handles := make([]*hydration, len(metas))

	uc.mu.Lock()
	for i, m := range metas {
		key := metaKey(m)
		if h, ok := uc.cache[key]; ok {
			handles[i] = h
			continue
		}
		h := &hydration{done: make(chan struct{})}
		uc.cache[key] = h
		handles[i] = h

		go func(key string, h *hydration) {
			defer close(h.done)
			res, err := uc.resultUC.Resolve(context.Background(), key)
			if err != nil {
				uc.l.Warnf(context.Background(), "report.usecase.hydrate: Resolve %s failed: %v", key, err)
				h.err = err
				return
			}
			h.res = res
		}(key, h)
	}
	uc.mu.Unlock()

	return handles
}

// metaKey picks the identifier details are fetched by: the opaque report
// key when present, otherwise the numeric row id.
func metaKey(m model.ReportMeta) string {
	if m.ReportID != "" {
		return m.ReportID
	}
	return strconv.FormatInt(m.ID, 10)
}

// matches reports whether needle occurs in the concatenated searchable text
// of a hydrated result. needle must already be lowercased.
func matches(res model.Results, needle string) bool {
	var b strings.Builder
	b.WriteString(res.MainKPI.Label)
	b.WriteByte(' ')
	b.WriteString(res.MainKPI.Value)
	b.WriteByte(' ')
	b.WriteString(res.MainKPI.Context)
	b.WriteByte(' ')
	b.WriteString(res.MainKPI.ExecutiveSummary)
	for _, in := range res.Insights {
		b.WriteByte(' ')
		b.WriteString(in.Title)
		b.WriteByte(' ')
		b.WriteString(in.Summary)
	}
	for _, dd := range res.DeepDive {
		b.WriteByte(' ')
		b.WriteString(dd.Title)
		b.WriteByte(' ')
		b.WriteString(dd.Summary)
	}
	for _, f := range res.GreenFlags {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	for _, f := range res.RedFlags {
		b.WriteByte(' ')
		b.WriteString(f)
	}

	return strings.Contains(strings.ToLower(b.String()), needle)
}
