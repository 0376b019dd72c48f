package arcserde

import (
	"fmt"

	"github.com/skelhorn/arcserde/arc"
	"github.com/skelhorn/arcserde/coltype"
)

// Layout is the compiled field contract: the declared column name to row
// position mapping. The header sub-struct's key/value positions are fixed
// by validation (key first, value second) and carried by the HeaderPair
// type itself. A Layout is read-only after NewCodec builds it.
type Layout struct {
	index map[string]int
}

// Index returns the row position of a declared column name.
func (l *Layout) Index(name string) (int, bool) {
	if l == nil {
		return 0, false
	}
	i, ok := l.index[name]
	return i, ok
}

// Codec converts between arc.FileItem and Row against a validated schema.
// A Codec is immutable after NewCodec and safe for concurrent use; each
// Decode/Encode call works on its own transient row and item.
type Codec struct {
	layout Layout
}

// NewCodec validates an engine-declared column list against the canonical
// schema and compiles the layout. The declaration must have exactly
// NumColumns columns whose types structurally equal the canonical ones, in
// order; any mismatch fails with a SchemaError naming the column. Column
// names are recorded as declared and drive encode-time field lookup.
func NewCodec(cols []Column) (*Codec, error) {
	if len(cols) != NumColumns {
		return nil, &SchemaError{
			Column:   -1,
			Expected: fmt.Sprintf("%d", NumColumns),
			Actual:   fmt.Sprintf("%d", len(cols)),
		}
	}
	canonical := CanonicalColumns()
	index := make(map[string]int, NumColumns)
	for i, col := range cols {
		if !coltype.Equal(col.Type, canonical[i].Type) {
			return nil, &SchemaError{
				Column:   i,
				Expected: canonical[i].Type.String(),
				Actual:   typeSignature(col.Type),
			}
		}
		index[col.Name] = i
	}
	return &Codec{layout: Layout{index: index}}, nil
}

func typeSignature(t coltype.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// Layout returns the compiled layout.
func (c *Codec) Layout() *Layout { return &c.layout }

// Decode maps a wire item to a fresh NumColumns-cell row. A nil input
// passes through as a nil row without error. Any input other than an
// *arc.FileItem fails with a TypeError. An item without headers decodes to
// an empty, never nil, header list; all other fields copy exactly.
func (c *Codec) Decode(v any) (Row, error) {
	if v == nil {
		return nil, nil
	}
	item, ok := v.(*arc.FileItem)
	if !ok {
		return nil, &TypeError{Expected: "an arc.FileItem", Actual: fmt.Sprintf("a %T", v)}
	}
	if item == nil {
		return nil, nil
	}

	headers := make(HeaderList, 0, len(item.HeaderItems))
	for _, h := range item.HeaderItems {
		headers = append(headers, HeaderPair{Key: h.Key, Value: h.Value})
	}

	return Row{
		String(item.URI),
		String(item.HostIP),
		Bigint(item.Timestamp),
		String(item.MimeType),
		Int(item.RecordLength),
		headers,
		String(item.Content.Bytes()),
		String(item.ArcFileName),
		Int(item.ArcFilePos),
		Int(item.Flags),
		Int(item.ArcFileSize),
	}, nil
}

// Encode rebuilds a wire item from a row. Each canonical field is located
// through the layout by name and its value's category checked; a missing
// name, a short row, or a wrong variant fails with a TypeError naming the
// field. The returned item is fully populated and freshly allocated, with
// content bytes copied out of the row (no aliasing of caller memory).
func (c *Codec) Encode(row Row) (*arc.FileItem, error) {
	uri, err := c.stringField(row, FieldURI)
	if err != nil {
		return nil, err
	}
	hostIP, err := c.stringField(row, FieldHostIP)
	if err != nil {
		return nil, err
	}
	timestamp, err := c.bigintField(row, FieldTimestamp)
	if err != nil {
		return nil, err
	}
	mimeType, err := c.stringField(row, FieldMimeType)
	if err != nil {
		return nil, err
	}
	recordLength, err := c.intField(row, FieldRecordLength)
	if err != nil {
		return nil, err
	}
	headers, err := c.headerField(row, FieldFileHeaders)
	if err != nil {
		return nil, err
	}
	content, err := c.stringField(row, FieldContent)
	if err != nil {
		return nil, err
	}
	arcFileName, err := c.stringField(row, FieldArcFileName)
	if err != nil {
		return nil, err
	}
	arcFilePos, err := c.intField(row, FieldArcFilePos)
	if err != nil {
		return nil, err
	}
	flags, err := c.intField(row, FieldFlags)
	if err != nil {
		return nil, err
	}
	fileSize, err := c.intField(row, FieldFileSize)
	if err != nil {
		return nil, err
	}

	items := make([]arc.HeaderItem, 0, len(headers))
	for _, h := range headers {
		items = append(items, arc.HeaderItem{Key: h.Key, Value: h.Value})
	}

	return &arc.FileItem{
		URI:          string(uri),
		HostIP:       string(hostIP),
		Timestamp:    int64(timestamp),
		MimeType:     string(mimeType),
		RecordLength: int32(recordLength),
		HeaderItems:  items,
		Content:      arc.NewBuffer([]byte(content)),
		ArcFileName:  string(arcFileName),
		ArcFilePos:   int32(arcFilePos),
		Flags:        int32(flags),
		ArcFileSize:  int32(fileSize),
	}, nil
}

// cell locates a field's value by declared name and checks its category.
func (c *Codec) cell(row Row, name string, want Category) (Value, error) {
	pos, ok := c.layout.Index(name)
	if !ok || pos >= len(row) {
		return nil, &TypeError{Field: name, Expected: want.String(), Actual: "absent"}
	}
	v := row[pos]
	if v == nil || v.Category() != want {
		return nil, &TypeError{Field: name, Expected: want.String(), Actual: cellCategory(v)}
	}
	return v, nil
}

func cellCategory(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Category().String()
}

func (c *Codec) stringField(row Row, name string) (String, error) {
	v, err := c.cell(row, name, CategoryString)
	if err != nil {
		return "", err
	}
	return v.(String), nil
}

func (c *Codec) intField(row Row, name string) (Int, error) {
	v, err := c.cell(row, name, CategoryInt)
	if err != nil {
		return 0, err
	}
	return v.(Int), nil
}

func (c *Codec) bigintField(row Row, name string) (Bigint, error) {
	v, err := c.cell(row, name, CategoryBigint)
	if err != nil {
		return 0, err
	}
	return v.(Bigint), nil
}

func (c *Codec) headerField(row Row, name string) (HeaderList, error) {
	v, err := c.cell(row, name, CategoryHeaderList)
	if err != nil {
		return nil, err
	}
	return v.(HeaderList), nil
}
