package arcserde

// Category identifies which variant a row cell holds. Categories are what
// encode checks values against, and what TypeError reports as the expected
// shape.
type Category int

const (
	CategoryInvalid Category = iota
	CategoryString
	CategoryInt
	CategoryBigint
	CategoryHeaderList
)

func (c Category) String() string {
	switch c {
	case CategoryString:
		return "string"
	case CategoryInt:
		return "int"
	case CategoryBigint:
		return "bigint"
	case CategoryHeaderList:
		return "list<struct>"
	}
	return "invalid"
}

// Value is one row cell. The concrete variants are String, Int, Bigint and
// HeaderList; a nil Value matches no category.
type Value interface {
	Category() Category
}

// String holds a string cell (uri, hostIP, mimeType, content, arcFileName).
type String string

func (String) Category() Category { return CategoryString }

// Int holds a 32-bit integer cell (recordLength, arcFilePos, flags, fileSize).
type Int int32

func (Int) Category() Category { return CategoryInt }

// Bigint holds a 64-bit integer cell (timestamp).
type Bigint int64

func (Bigint) Category() Category { return CategoryBigint }

// HeaderPair is one element of the fileHeaders column: the 2-field
// key/value record declared as struct<key:string,value:string>.
type HeaderPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// HeaderList holds the fileHeaders cell. A decoded row always carries a
// non-nil list; an item without headers decodes to an empty one.
type HeaderList []HeaderPair

func (HeaderList) Category() Category { return CategoryHeaderList }

// Row is one decoded record: exactly NumColumns cells, positionally aligned
// to the canonical schema. Decode allocates a fresh Row per call and the
// caller owns it afterward.
type Row []Value
