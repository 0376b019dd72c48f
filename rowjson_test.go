package arcserde_test

import (
	"reflect"
	"testing"

	arcserde "github.com/skelhorn/arcserde"
)

func TestRowJSON_RoundTrip(t *testing.T) {
	c := newCodec(t)
	row, err := c.Decode(sampleItem())
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	data, err := arcserde.MarshalRow(row)
	if err != nil {
		t.Fatalf("MarshalRow err=%v", err)
	}
	got, err := arcserde.UnmarshalRow(data)
	if err != nil {
		t.Fatalf("UnmarshalRow err=%v", err)
	}
	if !reflect.DeepEqual(got, row) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, row)
	}
}

func TestMarshalRow_WrongArity(t *testing.T) {
	if _, err := arcserde.MarshalRow(arcserde.Row{arcserde.String("x")}); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUnmarshalRow_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not an array", `{"uri":"x"}`},
		{"wrong arity", `["a","b"]`},
		{"string where int expected", `["u","h",1,"m","x",[],"c","f",0,0,0]`},
		{"number where string expected", `[42,"h",1,"m",2,[],"c","f",0,0,0]`},
		{"scalar header cell", `["u","h",1,"m",2,"hdr","c","f",0,0,0]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := arcserde.UnmarshalRow([]byte(tc.in)); err == nil {
				t.Fatalf("UnmarshalRow(%s) unexpectedly succeeded", tc.in)
			}
		})
	}
}
