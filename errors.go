package arcserde

import "fmt"

// SchemaError reports a structural mismatch between an engine-declared
// schema and the canonical one, found during NewCodec. Column is the
// offending index, or -1 when the column count itself is wrong.
type SchemaError struct {
	Column   int
	Expected string
	Actual   string
}

func (e *SchemaError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("schema must have %s columns, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("column %d must be type %s, got %s", e.Column, e.Expected, e.Actual)
}

// TypeError reports a value whose runtime category does not match what an
// operation expects at a field. Field is the canonical field name, or empty
// when decode received the wrong input kind entirely. A field name missing
// from the compiled layout reports the same way; both stem from schema
// noncompliance.
type TypeError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("expected %s, received %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("field %s is not a %s field, got %s", e.Field, e.Expected, e.Actual)
}
