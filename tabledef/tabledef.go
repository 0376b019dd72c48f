// Package tabledef loads table definitions: the document an engine
// deployment uses to declare the archive table's column names and type
// signatures. Definitions parse from YAML or JSON; validation against the
// canonical schema stays in arcserde.NewCodec.
package tabledef

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/coltype"
)

// Column is one declared column: a name and a type signature.
type Column struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Definition declares a table. Either Columns lists every column, or Types
// carries the compact comma-joined signature list and names default to the
// canonical field names.
type Definition struct {
	Name    string   `yaml:"name" json:"name"`
	Columns []Column `yaml:"columns,omitempty" json:"columns,omitempty"`
	Types   string   `yaml:"types,omitempty" json:"types,omitempty"`
}

// Canonical returns the canonical 11-column definition under the given
// table name.
func Canonical(name string) *Definition {
	cols := arcserde.CanonicalColumns()
	def := &Definition{Name: name, Columns: make([]Column, 0, len(cols))}
	for _, c := range cols {
		def.Columns = append(def.Columns, Column{Name: c.Name, Type: c.Type.String()})
	}
	return def
}

// ParseYAML reads a definition from YAML.
func ParseYAML(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("tabledef: invalid YAML: %w", err)
	}
	return &def, nil
}

// ParseJSON reads a definition from JSON.
func ParseJSON(data []byte) (*Definition, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("tabledef: invalid JSON: %w", err)
	}
	return &def, nil
}

// Load reads a definition file, choosing the format by extension
// (.yaml/.yml/.json).
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tabledef: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	}
	return nil, fmt.Errorf("tabledef: unsupported extension on %s (want .yaml, .yml or .json)", path)
}

// SchemaColumns parses the declared types and returns the column list to
// hand to arcserde.NewCodec. With an empty Columns list, Types is split and
// the canonical field names are assumed.
func (d *Definition) SchemaColumns() ([]arcserde.Column, error) {
	if len(d.Columns) > 0 {
		cols := make([]arcserde.Column, 0, len(d.Columns))
		for _, c := range d.Columns {
			typ, err := coltype.Parse(c.Type)
			if err != nil {
				return nil, fmt.Errorf("tabledef: column %q: %w", c.Name, err)
			}
			cols = append(cols, arcserde.Column{Name: c.Name, Type: typ})
		}
		return cols, nil
	}
	if d.Types == "" {
		return nil, fmt.Errorf("tabledef: definition %q declares no columns and no types", d.Name)
	}
	types, err := coltype.ParseList(d.Types)
	if err != nil {
		return nil, fmt.Errorf("tabledef: types of %q: %w", d.Name, err)
	}
	canonical := arcserde.CanonicalColumns()
	cols := make([]arcserde.Column, 0, len(types))
	for i, typ := range types {
		name := fmt.Sprintf("col%d", i)
		if i < len(canonical) {
			name = canonical[i].Name
		}
		cols = append(cols, arcserde.Column{Name: name, Type: typ})
	}
	return cols, nil
}
