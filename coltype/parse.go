package coltype

import (
	"fmt"
	"strings"
)

// Parse reads a single type signature.
//
// Grammar:
//
//	type  := primitive | "array" "<" type ">" | "struct" "<" field ("," field)* ">"
//	field := name ":" type
//
// Whitespace around tokens is ignored; names are case-sensitive. Trailing
// input after a complete type is an error.
func Parse(s string) (Type, error) {
	p := &parser{in: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.in) {
		return nil, fmt.Errorf("coltype: trailing input %q after type", p.in[p.pos:])
	}
	return t, nil
}

// ParseList splits a comma-separated list of signatures at bracket depth
// zero and parses each, e.g. the value of a table's column-types property.
func ParseList(s string) ([]Type, error) {
	parts := splitTopLevel(s)
	types := make([]Type, 0, len(parts))
	for _, part := range parts {
		t, err := Parse(part)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

type parser struct {
	in  string
	pos int
}

func (p *parser) parseType() (Type, error) {
	name, err := p.readName()
	if err != nil {
		return nil, err
	}
	switch name {
	case "array":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return &List{Elem: elem}, nil
	case "struct":
		if err := p.expect('<'); err != nil {
			return nil, err
		}
		var fields []Field
		for {
			fname, err := p.readName()
			if err != nil {
				return nil, err
			}
			if err := p.expect(':'); err != nil {
				return nil, err
			}
			ftype, err := p.parseType()
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: fname, Type: ftype})
			p.skipSpace()
			if p.pos < len(p.in) && p.in[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect('>'); err != nil {
			return nil, err
		}
		return &Struct{Fields: fields}, nil
	case "string":
		return String, nil
	case "int":
		return Int, nil
	case "bigint":
		return Bigint, nil
	}
	return nil, fmt.Errorf("coltype: unknown type name %q", name)
}

func (p *parser) readName() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && !strings.ContainsRune("<>:,", rune(p.in[p.pos])) && p.in[p.pos] != ' ' && p.in[p.pos] != '\t' {
		p.pos++
	}
	if p.pos == start {
		if p.pos >= len(p.in) {
			return "", fmt.Errorf("coltype: unexpected end of input, expected a name")
		}
		return "", fmt.Errorf("coltype: unexpected %q at offset %d, expected a name", p.in[p.pos], p.pos)
	}
	return p.in[start:p.pos], nil
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.in) {
		return fmt.Errorf("coltype: unexpected end of input, expected %q", c)
	}
	if p.in[p.pos] != c {
		return fmt.Errorf("coltype: unexpected %q at offset %d, expected %q", p.in[p.pos], p.pos, c)
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t') {
		p.pos++
	}
}
