package jsonv_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/jsonview/jsonv"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		input, compact string
	}{
		{`null`, `null`},
		{` true `, `true`},
		{`"aA\n"`, `"aA\n"`},
		{`-0`, `0`},
		{`1.50`, `1.5`},
		{`1e21`, `1e+21`},
		{`123456789012345678901`, `123456789012345680000`},
		{`0.000001`, `0.000001`},
		{`1E-7`, `1e-7`},
		{`1e400`, `null`},
		{`[]`, `[]`},
		{`{}`, `{}`},
		{`{"a":1,"b":[1,2]}`, `{"a":1,"b":[1,2]}`},
		{"{\n  \"x\" : [ true , null ]\n}", `{"x":[true,null]}`},
		{`{"a":1,"a":2,"b":3}`, `{"a":2,"b":3}`},
		{`{"b":1,"2":2,"a":3,"1":4,"01":5}`, `{"1":4,"2":2,"b":1,"a":3,"01":5}`},
		{`" </script>"`, "\" </script>\""},
		{`"\u0001\u001f"`, `"\u0001\u001f"`},
	}
	for _, test := range tests {
		v, err := jsonv.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%#q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.compact, jsonv.Compact(v)); diff != "" {
			t.Errorf("Input: %#q\nCompact: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		msg    string
		offset int
	}{
		{``, "Unexpected end of JSON input", -1},
		{`   `, "Unexpected end of JSON input", -1},
		{`{"a":`, "Unexpected end of JSON input", -1},
		{`{"a":1,}`, "Unexpected token } in JSON at position 7", 7},
		{`{"a" 1}`, "Unexpected number in JSON at position 5", 5},
		{`[x]`, "Unexpected token x in JSON at position 1", 1},
		{"[\x1b]", `Unexpected token \u001b in JSON at position 1`, 1},
		{`{} []`, "Unexpected token [ in JSON at position 3", 3},
		{`1 "two"`, "Unexpected string in JSON at position 2", 2},
		{"{\n  \"a\": 1,\n}", "Unexpected token } in JSON at position 12", 12},
		{`[01]`, "Unexpected number in JSON at position 1", 1},
	}
	for _, test := range tests {
		_, err := jsonv.Parse(test.input)
		var pe *jsonv.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%#q): got error %v, want *ParseError", test.input, err)
			continue
		}
		got := struct {
			Msg    string
			Offset int
		}{pe.Message, pe.Offset}
		want := struct {
			Msg    string
			Offset int
		}{test.msg, test.offset}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Input: %#q\nError: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseSpans(t *testing.T) {
	text := `{"a": [1, "x"]}`
	v, err := jsonv.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	arr := v.Members()[0].Value
	if got := text[arr.Span().Pos:arr.Span().End]; got != `[1, "x"]` {
		t.Errorf("array span text: got %q", got)
	}
	str := arr.Items()[1]
	if got := text[str.Span().Pos:str.Span().End]; got != `"x"` {
		t.Errorf("string span text: got %q", got)
	}
	if got := v.Span(); got != (jsonv.Span{Pos: 0, End: len(text)}) {
		t.Errorf("root span: got %+v", got)
	}
}

func TestValueAccessors(t *testing.T) {
	v, err := jsonv.Parse(`{"s":"x","n":-1.5e3,"b":true,"z":null,"a":[1]}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var kinds []string
	for _, m := range v.Members() {
		kinds = append(kinds, m.Key+":"+m.Value.Kind().String())
	}
	want := []string{"s:string", "n:number", "b:boolean", "z:null", "a:array"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds (-want, +got)\n%s", diff)
	}

	ms := v.Members()
	if ms[0].Value.Str() != "x" || ms[1].Value.Literal() != "-1.5e3" || !ms[2].Value.Bool() {
		t.Errorf("accessors: %q %q %v", ms[0].Value.Str(), ms[1].Value.Literal(), ms[2].Value.Bool())
	}
	if v.Len() != 5 || ms[4].Value.Len() != 1 || ms[0].Value.Len() != 0 {
		t.Errorf("lengths: %d %d %d", v.Len(), ms[4].Value.Len(), ms[0].Value.Len())
	}
	if !v.IsContainer() || ms[3].Value.IsContainer() {
		t.Error("IsContainer mismatch")
	}
}

func TestEqual(t *testing.T) {
	a, _ := jsonv.Parse(`{"a":[1.0,"x"],"b":null}`)
	b := jsonv.NewObject(
		jsonv.Field("a", jsonv.NewArray(jsonv.NewNumber("1"), jsonv.NewString("x"))),
		jsonv.Field("b", jsonv.NewNull()),
	)
	if !jsonv.Equal(a, b) {
		t.Errorf("Equal(%s, %s) = false", jsonv.Compact(a), jsonv.Compact(b))
	}
	c := jsonv.NewObject(jsonv.Field("b", jsonv.NewNull()), jsonv.Field("a", jsonv.NewArray()))
	if jsonv.Equal(a, c) {
		t.Errorf("Equal(%s, %s) = true", jsonv.Compact(a), jsonv.Compact(c))
	}
}
