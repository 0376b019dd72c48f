package arcserde_test

import (
	"strings"
	"testing"

	arcserde "github.com/skelhorn/arcserde"
	"github.com/skelhorn/arcserde/coltype"
)

func TestCanonicalColumns_Shape(t *testing.T) {
	cols := arcserde.CanonicalColumns()
	if len(cols) != arcserde.NumColumns {
		t.Fatalf("len=%d want %d", len(cols), arcserde.NumColumns)
	}
	wantNames := []string{
		"uri", "hostIP", "timestamp", "mimeType", "recordLength",
		"fileHeaders", "content", "arcFileName", "arcFilePos", "flags", "fileSize",
	}
	for i, name := range wantNames {
		if cols[i].Name != name {
			t.Errorf("column %d name=%q want %q", i, cols[i].Name, name)
		}
	}
	if !coltype.Equal(cols[5].Type, arcserde.HeaderType()) {
		t.Fatalf("column 5 type=%v want %v", cols[5].Type, arcserde.HeaderType())
	}
}

func TestCanonicalColumns_FreshCopy(t *testing.T) {
	a := arcserde.CanonicalColumns()
	a[0].Name = "mutated"
	b := arcserde.CanonicalColumns()
	if b[0].Name != "uri" {
		t.Fatalf("CanonicalColumns leaked shared state: %q", b[0].Name)
	}
}

func TestCanonicalTypeString_ParsesBack(t *testing.T) {
	sig := arcserde.CanonicalTypeString()
	want := "string,string,bigint,string,int,array<struct<key:string,value:string>>,string,string,int,int,int"
	if sig != want {
		t.Fatalf("got %q want %q", sig, want)
	}
	types, err := coltype.ParseList(sig)
	if err != nil {
		t.Fatalf("ParseList err=%v", err)
	}
	canonical := arcserde.CanonicalColumns()
	for i, typ := range types {
		if !coltype.Equal(typ, canonical[i].Type) {
			t.Errorf("column %d parsed type %v != canonical %v", i, typ, canonical[i].Type)
		}
	}
}

func TestSchemaError_Message(t *testing.T) {
	cols := arcserde.CanonicalColumns()
	cols[4].Type = coltype.Bigint
	_, err := arcserde.NewCodec(cols)
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "column 4") || !strings.Contains(msg, "int") || !strings.Contains(msg, "bigint") {
		t.Fatalf("message should name the column and both types: %q", msg)
	}
}

func TestTypeError_Message(t *testing.T) {
	te := &arcserde.TypeError{Field: "timestamp", Expected: "bigint", Actual: "string"}
	msg := te.Error()
	if !strings.Contains(msg, "timestamp") || !strings.Contains(msg, "bigint") {
		t.Fatalf("message should name the field and expected category: %q", msg)
	}
}
