package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// <table>_<column>_key or <table>_<column>_ukey
	uniqueConstraintRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

	// <table>_<column>_fkey, where column usually ends in _id
	foreignKeyConstraintRe = regexp.MustCompile(`^[a-z]+(?:_[a-z]+)*?_([a-z]+_id)_fkey$`)
)

// ErrCode reports the Code of a database error anywhere in err's chain.
// Both a converted *Error and a raw *pgconn.PgError from the driver are
// recognised; anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// IsNotFound reports whether err means "no matching row".
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// singularize strips a plural suffix: "properties" -> "property",
// "users" -> "user". It is not a general English singularizer.
func singularize(word string) string {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(lower, "s") && len(word) > 1:
		return word[:len(word)-1]
	default:
		return word
	}
}

// generateErrorCode creates machine-friendly codes of the form
// <DOMAIN>_<ACTION>, e.g. USER_ALREADY_EXISTS.
func generateErrorCode(domain string, errType Code) string {
	if domain == "" {
		domain = "RECORD"
	}

	domain = strings.ToUpper(singularize(domain))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces a client-facing message.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		// "identifier" is replaced later when the column can be inferred.
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name: a "<name>_id" column wins, then the
// singular table name, then "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singularize(tableName))
	}

	return "record"
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique
// constraint name: unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueConstraintRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// extractColumnForForeignKeyViolation infers the referencing column from a
// default Postgres FK name: properties_owner_id_fkey -> owner_id.
func extractColumnForForeignKeyViolation(constraintName string) string {
	if matches := foreignKeyConstraintRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a low-level database error into an application error.
//
//   - *errs.HTTPError: returned unchanged
//   - *pgconn.PgError: mapped to 400 for constraint violations, else 500
//   - no rows: 404, naming the entity when the error carries "table:<name>:"
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)

		switch sqlErr.Code {
		case ForeignKeyViolation:
			if sqlErr.ColumnName == "" {
				sqlErr.ColumnName = extractColumnForForeignKeyViolation(sqlErr.ConstraintName)
			}
			domain := strings.TrimSuffix(sqlErr.ColumnName, "_id")
			if domain == "" {
				domain = sqlErr.TableName
			}
			errorCode := generateErrorCode(domain, sqlErr.Code)
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr), false, &errorCode, nil, nil)

		case UniqueViolation:
			errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
			userMessage := formatUserFriendlyMessage(sqlErr)
			if columnName := extractColumnForUniqueViolation(sqlErr.ConstraintName); columnName != "" {
				userMessage = strings.ReplaceAll(userMessage, "identifier", humanizeText(columnName))
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)

		case NotNullViolation:
			errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr), true, &errorCode, fieldErrors, nil)

		case CheckViolation:
			errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
			return errs.NewBadRequestError(formatUserFriendlyMessage(sqlErr), true, &errorCode, nil, nil)

		default:
			// Unknown database errors must not leak details to clients.
			return errs.NewInternalServerError()
		}
	}

	if IsNotFound(err) {
		errMsg := err.Error()
		tablePrefix := "table:"
		if strings.Contains(errMsg, tablePrefix) {
			table := strings.Split(strings.Split(errMsg, tablePrefix)[1], ":")[0]
			entityName := getEntityName(table, "")
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", entityName), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
