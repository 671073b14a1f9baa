package errors

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the server error code for a unique key violation.
const mysqlDuplicateEntry = 1062

// ErrorResponse is the JSON body for every failed request. Details is only
// populated for validation failures, keyed by input field name.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// IsDuplicateEntry reports whether err is a MySQL unique constraint
// violation. The unique index on users.email is the authoritative guard
// against concurrent duplicate registrations, so inserts racing past the
// handler's existence pre-check surface here.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
