// Package pgerr classifies postgres driver errors into the domain error
// taxonomy. Its main job is recognizing "relation does not exist"
// failures so callers can tell a missing schema apart from a broken
// statement and degrade instead of failing.
package pgerr

import (
	"errors"
	"strings"

	"pipeyard/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// undefinedTable is the postgres error code for a missing relation.
const undefinedTable = "42P01"

// WrapSchemaMissing returns a SchemaMissingError when err reports that
// the relation does not exist, and err unchanged otherwise. The message
// sniff covers drivers that flatten the pg error before returning it.
func WrapSchemaMissing(relation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == undefinedTable {
			return errs.NewSchemaMissingError(relation, err)
		}
		return err
	}

	if strings.Contains(err.Error(), "does not exist") && strings.Contains(err.Error(), "relation") {
		return errs.NewSchemaMissingError(relation, err)
	}

	return err
}
