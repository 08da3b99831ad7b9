package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dealflow-srv/internal/model"
	"dealflow-srv/internal/preference/repository"
	"dealflow-srv/pkg/probe"
)

// LoadLatest returns the most recently created settings row, probing table
// name variants in order. The two JSON columns split the document: general
// preferences in personal_settings, agent flags in analyse_settings.
func (r *implRepository) LoadLatest(ctx context.Context) (*model.PreferenceDoc, error) {
	var doc *model.PreferenceDoc
	err := r.prober.Do(ctx, func(ctx context.Context, table string) error {
		query := fmt.Sprintf(`SELECT personal_settings, analyse_settings FROM %q ORDER BY created_at DESC LIMIT 1`, table)

		var personal, analyse []byte
		if err := r.db.QueryRowContext(ctx, query).Scan(&personal, &analyse); err != nil {
			return err
		}

		d := &model.PreferenceDoc{}
		if len(personal) > 0 {
			if err := json.Unmarshal(personal, &d.General); err != nil {
				r.l.Warnf(ctx, "preference.repository.postgre.LoadLatest: bad personal_settings JSON: %v", err)
			}
		}
		if len(analyse) > 0 {
			if err := json.Unmarshal(analyse, &d.AnalysisAgents); err != nil {
				r.l.Warnf(ctx, "preference.repository.postgre.LoadLatest: bad analyse_settings JSON: %v", err)
			}
		}
		doc = d
		return nil
	})
	if err != nil {
		return nil, r.mapError(ctx, "LoadLatest", err)
	}
	return doc, nil
}

// Save updates the most recent settings row, inserting a fresh row when the
// table is empty. A missing table variant falls through to the next one.
func (r *implRepository) Save(ctx context.Context, doc model.PreferenceDoc) error {
	personal, err := json.Marshal(doc.General)
	if err != nil {
		return fmt.Errorf("failed to marshal personal settings: %w", err)
	}
	analyse, err := json.Marshal(doc.AnalysisAgents)
	if err != nil {
		return fmt.Errorf("failed to marshal analyse settings: %w", err)
	}

	err = r.prober.Do(ctx, func(ctx context.Context, table string) error {
		update := fmt.Sprintf(`UPDATE %q SET personal_settings = $1, analyse_settings = $2
			WHERE id = (SELECT id FROM %q ORDER BY created_at DESC LIMIT 1)`, table, table)

		res, execErr := r.db.ExecContext(ctx, update, personal, analyse)
		if execErr != nil {
			return execErr
		}
		affected, execErr := res.RowsAffected()
		if execErr != nil {
			return execErr
		}
		if affected > 0 {
			return nil
		}

		insert := fmt.Sprintf(`INSERT INTO %q (created_at, personal_settings, analyse_settings) VALUES (NOW(), $1, $2)`, table)
		_, execErr = r.db.ExecContext(ctx, insert, personal, analyse)
		return execErr
	})
	if err != nil {
		return r.mapError(ctx, "Save", err)
	}
	return nil
}

func (r *implRepository) mapError(ctx context.Context, op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, probe.ErrNoCandidate) {
		return repository.ErrSettingsNotFound
	}
	r.l.Errorf(ctx, "preference.repository.postgre.%s: query failed: %v", op, err)
	return err
}
