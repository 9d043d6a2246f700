// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into user-friendly messages (e.g., converting
// a "foreign key violation" into a "Bad Request" error).
package sqlerr

import "fmt"

// Code is the category of a database error, independent of SQLSTATE.
type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	NotNullViolation    Code = "not_null_violation"
	CheckViolation      Code = "check_violation"
	InvalidText         Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	SyntaxError         Code = "syntax_error"
	ConnectionFailure   Code = "connection_failure"
	QueryCanceled       Code = "query_canceled"
)

// sqlStateCodes maps exact SQLSTATE values to a Code.
var sqlStateCodes = map[string]Code{
	"23505": UniqueViolation,
	"23503": ForeignKeyViolation,
	"23502": NotNullViolation,
	"23514": CheckViolation,
	"22P02": InvalidText,
	"22003": NumericOutOfRange,
	"42P01": UndefinedTable,
	"42703": UndefinedColumn,
	"42601": SyntaxError,
	"57014": QueryCanceled,
}

// MapCode converts a Postgres SQLSTATE into a Code. Every class 08 state
// is a connection failure.
func MapCode(sqlState string) Code {
	if code, ok := sqlStateCodes[sqlState]; ok {
		return code
	}
	if len(sqlState) == 5 && sqlState[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// Severity is the Postgres severity of an error report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityFatal   Severity = "fatal"
	SeverityPanic   Severity = "panic"
	SeverityWarning Severity = "warning"
	SeverityNotice  Severity = "notice"
	SeverityDebug   Severity = "debug"
	SeverityInfo    Severity = "info"
	SeverityLog     Severity = "log"
)

// MapSeverity converts the severity string of a server report. Unknown
// values are treated as errors.
func MapSeverity(severity string) Severity {
	switch severity {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	case "WARNING":
		return SeverityWarning
	case "NOTICE":
		return SeverityNotice
	case "DEBUG":
		return SeverityDebug
	case "INFO":
		return SeverityInfo
	case "LOG":
		return SeverityLog
	default:
		return SeverityError
	}
}

// Error is a normalized database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
