package coltype_test

import (
	"testing"

	"github.com/skelhorn/arcserde/coltype"
)

func TestParse_RoundTrip(t *testing.T) {
	cases := []string{
		"string",
		"int",
		"bigint",
		"array<int>",
		"array<struct<key:string,value:string>>",
		"struct<key:string,value:string>",
		"array<array<string>>",
	}
	for _, sig := range cases {
		t.Run(sig, func(t *testing.T) {
			typ, err := coltype.Parse(sig)
			if err != nil {
				t.Fatalf("Parse(%q) err=%v", sig, err)
			}
			if got := typ.String(); got != sig {
				t.Fatalf("render mismatch: got %q want %q", got, sig)
			}
		})
	}
}

func TestParse_IgnoresWhitespace(t *testing.T) {
	typ, err := coltype.Parse(" array< struct< key : string , value : string > > ")
	if err != nil {
		t.Fatalf("parse err=%v", err)
	}
	want := "array<struct<key:string,value:string>>"
	if got := typ.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := []string{
		"",
		"varchar",
		"String", // case-sensitive
		"array<",
		"array<int",
		"array<>",
		"struct<>",
		"struct<key string>",
		"struct<key:string,>",
		"int extra",
		"array<int>>",
	}
	for _, sig := range cases {
		t.Run(sig, func(t *testing.T) {
			if _, err := coltype.Parse(sig); err == nil {
				t.Fatalf("Parse(%q) unexpectedly succeeded", sig)
			}
		})
	}
}

func TestParseList(t *testing.T) {
	sig := "string,string,bigint,string,int,array<struct<key:string,value:string>>,string,string,int,int,int"
	types, err := coltype.ParseList(sig)
	if err != nil {
		t.Fatalf("ParseList err=%v", err)
	}
	if len(types) != 11 {
		t.Fatalf("len=%d want 11", len(types))
	}
	if types[5].Kind() != coltype.KindList {
		t.Fatalf("column 5 kind=%v want list", types[5].Kind())
	}
	if types[2] != coltype.Bigint {
		t.Fatalf("column 2 = %v want bigint", types[2])
	}
}

func TestParseList_PropagatesErrors(t *testing.T) {
	if _, err := coltype.ParseList("string,bogus,int"); err == nil {
		t.Fatalf("expected error for unknown type in list")
	}
}
