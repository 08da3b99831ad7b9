package postgre

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"dealflow-srv/internal/preference/repository"
	"dealflow-srv/pkg/log"
	"dealflow-srv/pkg/probe"
)

// pgUndefinedTable is the PostgreSQL error code for a missing relation.
const pgUndefinedTable = "42P01"

// settingsTableVariants lists the table names deployments are known to use.
var settingsTableVariants = []string{"settings", "Settings"}

type implRepository struct {
	db     *sql.DB
	l      log.Logger
	prober *probe.Prober
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db:     db,
		l:      l,
		prober: probe.New(settingsTableVariants, isUndefinedTable),
	}
}

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUndefinedTable
	}
	return false
}
