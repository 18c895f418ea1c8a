package structured

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	got, err := Format(`{"name":"John","age":30,"tags":["a","b"]}`)
	require.NoError(t, err)
	want := "{\n  \"name\": \"John\",\n  \"age\": 30,\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ]\n}"
	assert.Equal(t, want, got)
}

func TestMinify(t *testing.T) {
	t.Parallel()

	got, err := Minify("{\n  \"b\": 1,\n  \"a\": [ 1, 2 ]\n}\n")
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":[1,2]}`, got)
}

func TestMinify_Reserialises(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{`{"a":1,"a":2}`, `{"a":2}`},
		{`{"a":1,"b":2,"a":3}`, `{"a":3,"b":2}`},
		{`[1.0, 1e2, -0, 1.50, 2E-3]`, `[1,100,0,1.5,0.002]`},
		{`[1e21, 1e-7, 123456789012345678901, 1e400]`, `[1e+21,1e-7,123456789012345680000,null]`},
		{`{"b":1,"2":2,"10":3,"01":4,"a":5}`, `{"2":2,"10":3,"b":1,"01":4,"a":5}`},
		{`"<tag> & \u0001 \u00e9"`, `"<tag> & \u0001 é"`},
		{`{"e":{},"f":[]}`, `{"e":{},"f":[]}`},
	}
	for _, tt := range tests {
		got, err := Minify(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	got, err := Format(`{"x":1,"x":{"y":2.0}}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"x\": {\n    \"y\": 2\n  }\n}", got)
}

func TestFormatMinifyIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`{"a":1}`,
		`[1, 2, {"x": null, "y": true}]`,
		"  \"just a string\"  ",
		`{"nested":{"deep":{"deeper":[1.5e3, -2]}}}`,
		`42`,
	}
	for _, in := range inputs {
		min, err := Minify(in)
		require.NoError(t, err, in)
		a, err := Format(min)
		require.NoError(t, err, in)
		b, err := Format(in)
		require.NoError(t, err, in)
		assert.Equal(t, b, a, in)
	}
}

func TestInvalidJSON(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`{"a":}`, `{`, `nope`, `[1,2,]`, `{"a":1}}`} {
		for _, mode := range []string{ModeFormat, ModeMinify, ModeValidate} {
			_, err := Apply(mode, in)
			require.Error(t, err, in)
			assert.True(t, toolerr.Is(err, toolerr.KindParse), in)
			assert.True(t, strings.HasPrefix(err.Error(), "Invalid JSON: "), err.Error())
		}
	}
}

func TestEmptyJSON(t *testing.T) {
	t.Parallel()

	_, err := Format("   \n")
	require.Error(t, err)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
	assert.Equal(t, "Please enter JSON data", err.Error())
}

func TestValidateMode(t *testing.T) {
	t.Parallel()

	got, err := Apply(ModeValidate, `{"ok":true}`)
	require.NoError(t, err)
	assert.Equal(t, ValidMessage, got)
}

func TestCSVToJSON(t *testing.T) {
	t.Parallel()

	got, err := CSVToJSON("name,age\nJohn,30", DelimComma)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"John\",\n    \"age\": \"30\"\n  }\n]", got)

	min, err := Minify(got)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"John","age":"30"}]`, min)
}

func TestCSVToJSON_Delimiters(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		DelimComma:     "a,b\n1,2",
		DelimSemicolon: "a;b\n1;2",
		DelimTab:       "a\tb\n1\t2",
		DelimPipe:      "a|b\n1|2",
	}
	for delim, in := range tests {
		got, err := CSVToJSON(in, delim)
		require.NoError(t, err, delim)
		min, err := Minify(got)
		require.NoError(t, err)
		assert.Equal(t, `[{"a":"1","b":"2"}]`, min, delim)
	}
}

func TestParseCSV_Cleaning(t *testing.T) {
	t.Parallel()

	recs, err := ParseCSV(" \"name\" , 'city' ,zip\r\n\"Ann\", 'Paris'\n\nBob\n", DelimComma)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"name", "city", "zip"}, recs[0].Keys())
	assert.Equal(t, "Ann", recs[0].Get("name"))
	assert.Equal(t, "Paris", recs[0].Get("city"))
	assert.Equal(t, "", recs[0].Get("zip"))
	assert.Equal(t, "Bob", recs[1].Get("name"))
	assert.Equal(t, "", recs[1].Get("city"))
}

func TestParseCSV_Errors(t *testing.T) {
	t.Parallel()

	_, err := ParseCSV("", DelimComma)
	require.Error(t, err)
	assert.Equal(t, "Please enter CSV data to convert", err.Error())

	_, err = ParseCSV("only,headers\n", DelimComma)
	require.Error(t, err)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
	assert.Equal(t, "CSV must have at least a header row and one data row", err.Error())
}

func TestDelimiterFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ",", DelimiterFor(""))
	assert.Equal(t, ",", DelimiterFor(DelimComma))
	assert.Equal(t, ";", DelimiterFor(";"))
	assert.Equal(t, "\t", DelimiterFor(DelimTab))
	assert.Equal(t, "|", DelimiterFor(DelimPipe))
}
