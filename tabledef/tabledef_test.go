package tabledef_test

import (
	"os"
	"path/filepath"
	"testing"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/tabledef"
)

const yamlDef = `
name: arc_items
columns:
  - name: uri
    type: string
  - name: hostIP
    type: string
  - name: timestamp
    type: bigint
  - name: mimeType
    type: string
  - name: recordLength
    type: int
  - name: fileHeaders
    type: array<struct<key:string,value:string>>
  - name: content
    type: string
  - name: arcFileName
    type: string
  - name: arcFilePos
    type: int
  - name: flags
    type: int
  - name: fileSize
    type: int
`

func TestParseYAML_FullColumns(t *testing.T) {
	def, err := tabledef.ParseYAML([]byte(yamlDef))
	if err != nil {
		t.Fatalf("ParseYAML err=%v", err)
	}
	if def.Name != "arc_items" || len(def.Columns) != 11 {
		t.Fatalf("unexpected definition: %+v", def)
	}
	cols, err := def.SchemaColumns()
	if err != nil {
		t.Fatalf("SchemaColumns err=%v", err)
	}
	if _, err := arcserde.NewCodec(cols); err != nil {
		t.Fatalf("canonical definition rejected: %v", err)
	}
}

func TestParseJSON_TypesFallback(t *testing.T) {
	doc := `{"name":"arc_items","types":"string,string,bigint,string,int,array<struct<key:string,value:string>>,string,string,int,int,int"}`
	def, err := tabledef.ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON err=%v", err)
	}
	cols, err := def.SchemaColumns()
	if err != nil {
		t.Fatalf("SchemaColumns err=%v", err)
	}
	if len(cols) != 11 {
		t.Fatalf("len=%d want 11", len(cols))
	}
	// Names default to the canonical field names.
	if cols[5].Name != arcserde.FieldFileHeaders {
		t.Fatalf("column 5 name=%q want %q", cols[5].Name, arcserde.FieldFileHeaders)
	}
	if _, err := arcserde.NewCodec(cols); err != nil {
		t.Fatalf("types fallback rejected: %v", err)
	}
}

func TestSchemaColumns_BadSignature(t *testing.T) {
	def := &tabledef.Definition{
		Name:    "broken",
		Columns: []tabledef.Column{{Name: "uri", Type: "varchar"}},
	}
	if _, err := def.SchemaColumns(); err == nil {
		t.Fatalf("expected error for unknown type name")
	}
}

func TestSchemaColumns_Empty(t *testing.T) {
	def := &tabledef.Definition{Name: "empty"}
	if _, err := def.SchemaColumns(); err == nil {
		t.Fatalf("expected error for definition without columns or types")
	}
}

func TestLoad_ByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "def.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlDef), 0o644); err != nil {
		t.Fatalf("write err=%v", err)
	}
	def, err := tabledef.Load(yamlPath)
	if err != nil {
		t.Fatalf("Load yaml err=%v", err)
	}
	if len(def.Columns) != 11 {
		t.Fatalf("yaml columns=%d want 11", len(def.Columns))
	}

	jsonPath := filepath.Join(dir, "def.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name":"t","types":"string"}`), 0o644); err != nil {
		t.Fatalf("write err=%v", err)
	}
	def, err = tabledef.Load(jsonPath)
	if err != nil {
		t.Fatalf("Load json err=%v", err)
	}
	if def.Types != "string" {
		t.Fatalf("json types=%q", def.Types)
	}

	badPath := filepath.Join(dir, "def.toml")
	if err := os.WriteFile(badPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write err=%v", err)
	}
	if _, err := tabledef.Load(badPath); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestCanonical(t *testing.T) {
	def := tabledef.Canonical("arc_items")
	cols, err := def.SchemaColumns()
	if err != nil {
		t.Fatalf("SchemaColumns err=%v", err)
	}
	if _, err := arcserde.NewCodec(cols); err != nil {
		t.Fatalf("canonical definition rejected: %v", err)
	}
}
