package arcserde

import (
	"strings"

	"github.com/skelhorn/arcserde/coltype"
)

// NumColumns is the fixed width of the archive schema. The codec accepts
// exactly this many columns, in canonical order, with canonical types.
const NumColumns = 11

// Canonical field names, in column order.
const (
	FieldURI          = "uri"
	FieldHostIP       = "hostIP"
	FieldTimestamp    = "timestamp"
	FieldMimeType     = "mimeType"
	FieldRecordLength = "recordLength"
	FieldFileHeaders  = "fileHeaders"
	FieldContent      = "content"
	FieldArcFileName  = "arcFileName"
	FieldArcFilePos   = "arcFilePos"
	FieldFlags        = "flags"
	FieldFileSize     = "fileSize"
)

// Sub-field names of the header struct, in field order.
const (
	headerKeyField   = "key"
	headerValueField = "value"
)

// Column is one engine-declared column: a name and a type descriptor.
type Column struct {
	Name string
	Type coltype.Type
}

// HeaderType returns the type of the fileHeaders column,
// array<struct<key:string,value:string>>.
func HeaderType() coltype.Type {
	return &coltype.List{Elem: &coltype.Struct{Fields: []coltype.Field{
		{Name: headerKeyField, Type: coltype.String},
		{Name: headerValueField, Type: coltype.String},
	}}}
}

// CanonicalColumns returns a fresh copy of the canonical 11-column schema.
func CanonicalColumns() []Column {
	return []Column{
		{Name: FieldURI, Type: coltype.String},
		{Name: FieldHostIP, Type: coltype.String},
		{Name: FieldTimestamp, Type: coltype.Bigint},
		{Name: FieldMimeType, Type: coltype.String},
		{Name: FieldRecordLength, Type: coltype.Int},
		{Name: FieldFileHeaders, Type: HeaderType()},
		{Name: FieldContent, Type: coltype.String},
		{Name: FieldArcFileName, Type: coltype.String},
		{Name: FieldArcFilePos, Type: coltype.Int},
		{Name: FieldFlags, Type: coltype.Int},
		{Name: FieldFileSize, Type: coltype.Int},
	}
}

// CanonicalTypeString returns the comma-joined type signatures, the value a
// table definition carries as its column-types property.
func CanonicalTypeString() string {
	cols := CanonicalColumns()
	sigs := make([]string, len(cols))
	for i, c := range cols {
		sigs[i] = c.Type.String()
	}
	return strings.Join(sigs, ",")
}

// categoryFor maps a canonical column index to the value category its cell
// must hold.
func categoryFor(idx int) Category {
	switch idx {
	case 0, 1, 3, 6, 7:
		return CategoryString
	case 2:
		return CategoryBigint
	case 4, 8, 9, 10:
		return CategoryInt
	case 5:
		return CategoryHeaderList
	}
	return CategoryInvalid
}
