// Package query builds parameterized SELECT statements from optional filters.
//
// Instead of concatenating SQL fragments and counting placeholders by hand,
// callers record predicates as (column, operator, value) tuples. Build then
// renders the statement text and the bound argument list in a single pass,
// so placeholder N always refers to the Nth value in the argument list.
//
// Example:
//
//	sql, args := query.New("SELECT * FROM properties").
//		Where("city", "LIKE", "%Austin%").
//		OrderBy("cost_per_night").
//		Limit(10).
//		Build()
//
//	rows, err := db.Query(ctx, sql, args...)
//
// The builder only produces SQL; it never executes anything.
package query

import (
	"strconv"
	"strings"
)

// Placeholder renders the placeholder for the n-th (1-based) bound argument.
type Placeholder func(n int) string

// Dollar renders Postgres style positional placeholders ($1, $2, ...).
func Dollar(n int) string {
	return "$" + strconv.Itoa(n)
}

// Question renders anonymous placeholders (?) used by MySQL and SQLite.
func Question(int) string {
	return "?"
}

// Predicate is a single comparison bound to one argument.
type Predicate struct {
	// Column is the column or expression on the left-hand side.
	Column string

	// Op is the SQL comparison operator, e.g. "=", ">=", "LIKE".
	Op string

	// Value is bound to the placeholder generated for this predicate.
	Value any
}

// Builder accumulates the clauses of one SELECT statement.
//
// A Builder is not safe for concurrent use. Each search request builds its
// own statement.
type Builder struct {
	base        string
	where       []Predicate
	having      []Predicate
	groupBy     []string
	orderBy     []string
	limit       *int
	placeholder Placeholder
}

// New starts a statement from a base SELECT ... FROM ... [JOIN ...] fragment.
func New(base string) *Builder {
	return &Builder{
		base:        strings.TrimSpace(base),
		placeholder: Dollar,
	}
}

// WithPlaceholder switches the placeholder style. Defaults to Dollar.
func (b *Builder) WithPlaceholder(p Placeholder) *Builder {
	if p != nil {
		b.placeholder = p
	}
	return b
}

// Where appends a row predicate. Predicates are AND-joined in call order.
func (b *Builder) Where(column, op string, value any) *Builder {
	b.where = append(b.where, Predicate{Column: column, Op: op, Value: value})
	return b
}

// Having appends a post-aggregation predicate. expr should be the aggregate
// expression itself (e.g. "avg(rating)"), not the raw column.
func (b *Builder) Having(expr, op string, value any) *Builder {
	b.having = append(b.having, Predicate{Column: expr, Op: op, Value: value})
	return b
}

// GroupBy appends grouping columns.
func (b *Builder) GroupBy(cols ...string) *Builder {
	b.groupBy = append(b.groupBy, cols...)
	return b
}

// OrderBy appends ordering terms, e.g. "cost_per_night" or "id DESC".
func (b *Builder) OrderBy(cols ...string) *Builder {
	b.orderBy = append(b.orderBy, cols...)
	return b
}

// Limit bounds the number of returned rows. The limit is bound as the last
// argument of the statement.
func (b *Builder) Limit(n int) *Builder {
	b.limit = &n
	return b
}

// Build renders the statement and its arguments.
//
// Clause order is fixed: base, WHERE, GROUP BY, HAVING, ORDER BY, LIMIT.
// Every placeholder is rendered at the moment its value is appended to the
// argument list.
func (b *Builder) Build() (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(b.where)+len(b.having)+1)

	bind := func(v any) string {
		args = append(args, v)
		return b.placeholder(len(args))
	}

	sb.WriteString(b.base)

	writePredicates := func(keyword string, preds []Predicate) {
		for i, p := range preds {
			if i == 0 {
				sb.WriteString("\n" + keyword + " ")
			} else {
				sb.WriteString("\n  AND ")
			}
			sb.WriteString(p.Column)
			sb.WriteString(" ")
			sb.WriteString(p.Op)
			sb.WriteString(" ")
			sb.WriteString(bind(p.Value))
		}
	}

	writePredicates("WHERE", b.where)

	if len(b.groupBy) > 0 {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}

	writePredicates("HAVING", b.having)

	if len(b.orderBy) > 0 {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit != nil {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(bind(*b.limit))
	}

	sb.WriteString(";")

	return sb.String(), args
}
