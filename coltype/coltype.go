// Package coltype describes column types the way an embedding query engine
// declares them: primitives, homogeneous lists, and structs with named,
// ordered fields. Signatures render and parse in the familiar compact form,
// for example "array<struct<key:string,value:string>>".
//
// The package carries no validation policy of its own; it only models the
// descriptor tree and structural equality over it.
package coltype

import "strings"

// Kind identifies a descriptor node type.
type Kind int

const (
	KindPrimitive Kind = iota
	KindList
	KindStruct
)

// Type is the root descriptor interface.
type Type interface {
	Kind() Kind
	// String renders the canonical signature for the type.
	String() string
}

// Primitive is a named scalar type.
type Primitive struct {
	Name string
}

func (p *Primitive) Kind() Kind     { return KindPrimitive }
func (p *Primitive) String() string { return p.Name }

// The primitives the archive schema uses. Signatures follow the engine's
// naming: "int" is 32-bit, "bigint" is 64-bit.
var (
	String = &Primitive{Name: "string"}
	Int    = &Primitive{Name: "int"}
	Bigint = &Primitive{Name: "bigint"}
)

// List is an ordered collection of one element type.
type List struct {
	Elem Type
}

func (l *List) Kind() Kind     { return KindList }
func (l *List) String() string { return "array<" + l.Elem.String() + ">" }

// Field is one named struct member.
type Field struct {
	Name string
	Type Type
}

// Struct is a record of named, ordered fields.
type Struct struct {
	Fields []Field
}

func (s *Struct) Kind() Kind { return KindStruct }

func (s *Struct) String() string {
	b := &strings.Builder{}
	b.WriteString("struct<")
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(f.Name)
		b.WriteString(":")
		b.WriteString(f.Type.String())
	}
	b.WriteString(">")
	return b.String()
}

// Equal reports structural equality: primitives by name, lists by element
// type, structs by field count, names, order, and field types. Two nil
// types are equal; nil never equals a non-nil type.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch at := a.(type) {
	case *Primitive:
		bt := b.(*Primitive)
		return at.Name == bt.Name
	case *List:
		bt := b.(*List)
		return Equal(at.Elem, bt.Elem)
	case *Struct:
		bt := b.(*Struct)
		if len(at.Fields) != len(bt.Fields) {
			return false
		}
		for i := range at.Fields {
			if at.Fields[i].Name != bt.Fields[i].Name {
				return false
			}
			if !Equal(at.Fields[i].Type, bt.Fields[i].Type) {
				return false
			}
		}
		return true
	}
	return false
}
