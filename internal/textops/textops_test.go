package textops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-rushton/toolbelt/internal/toolerr"
)

func TestConvertCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{CaseUpper, "hello World", "HELLO WORLD"},
		{CaseLower, "Hello WORLD", "hello world"},
		{CaseTitle, "hello world", "Hello World"},
		{CaseTitle, "HELLO wORLD", "Hello World"},
		{CaseCamel, "hello world", "helloWorld"},
		{CaseCamel, "Hello-big_World", "helloBigWorld"},
		{CaseSnake, "hello world", "hello_world"},
		{CaseSnake, "Hello   Big\tWorld", "hello_big_world"},
		{CaseSentence, "hello THERE. how are you? fine!  ok", "Hello there. How are you? Fine!  Ok"},
		{CaseSentence, "  leading space", "  Leading space"},
		{"unknown", "Same", "Same"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertCase(tt.name, tt.in))
		})
	}
}

func TestRemoveLineBreaks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "one two three four", RemoveLineBreaks("one\ntwo\r\n  three\n\n\tfour\n"))
	assert.Equal(t, "", RemoveLineBreaks("\n\n"))
}

func TestCount(t *testing.T) {
	t.Parallel()

	s := Count("Hello world. Foo?")
	assert.Equal(t, 3, s.Words)
	assert.Equal(t, 2, s.Sentences)
	assert.Equal(t, 1, s.Paragraphs)
	assert.Equal(t, 17, s.Characters)
	assert.Equal(t, 15, s.CharactersNoSpaces)
	assert.Equal(t, 1, s.ReadingTime)
}

func TestCount_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Stats{}, Count(""))
	assert.Equal(t, Stats{Characters: 3}, Count(" \n "))
}

func TestCount_Paragraphs(t *testing.T) {
	t.Parallel()

	s := Count("First para.\n\nSecond para.\n\n\n\nThird.")
	assert.Equal(t, 3, s.Paragraphs)
	assert.Equal(t, 3, s.Sentences)
}

func TestCount_Runes(t *testing.T) {
	t.Parallel()

	s := Count("日本 語")
	assert.Equal(t, 4, s.Characters)
	assert.Equal(t, 3, s.CharactersNoSpaces)
	assert.Equal(t, 2, s.Words)
}

func TestCount_ReadingTime(t *testing.T) {
	t.Parallel()

	words := make([]byte, 0, 201*2)
	for range 201 {
		words = append(words, 'a', ' ')
	}
	assert.Equal(t, 2, Count(string(words)).ReadingTime)
}

func TestDiff_Identical(t *testing.T) {
	t.Parallel()

	got, err := Diff("the quick brown fox", "the quick brown fox")
	require.NoError(t, err)
	for _, tok := range got {
		assert.Equal(t, Unchanged, tok.Type)
	}
	assert.Len(t, got, 4)
}

func TestDiff_Positional(t *testing.T) {
	t.Parallel()

	got, err := Diff("a b c", "a x c d")
	require.NoError(t, err)
	want := []Token{
		{Unchanged, "a"},
		{Removed, "b"},
		{Added, "x"},
		{Unchanged, "c"},
		{Added, "d"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}

	added, removed, unchanged := DiffSummary(got)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, unchanged)
}

func TestDiff_InsertionShiftsAlignment(t *testing.T) {
	t.Parallel()

	got, err := Diff("a b", "z a b")
	require.NoError(t, err)
	want := []Token{
		{Removed, "a"},
		{Added, "z"},
		{Removed, "b"},
		{Added, "a"},
		{Added, "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_RequiresBoth(t *testing.T) {
	t.Parallel()

	_, err := Diff("", "b")
	require.Error(t, err)
	assert.True(t, toolerr.Is(err, toolerr.KindValidation))
	assert.Equal(t, "Please enter text in both fields", err.Error())
}

func TestBeautify(t *testing.T) {
	t.Parallel()

	got, err := Beautify(LangJSON, `{"a":[1]}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", got)

	got, err = Beautify(LangCSS, "  body {\n\t\tcolor: red;  \n }")
	require.NoError(t, err)
	assert.Equal(t, "body {\ncolor: red;\n}", got)
}

func TestBeautify_Errors(t *testing.T) {
	t.Parallel()

	_, err := Beautify(LangHTML, "  ")
	require.Error(t, err)
	assert.Equal(t, "Please enter code to beautify", err.Error())

	_, err = Beautify(LangJSON, "{bad")
	require.Error(t, err)
	assert.Equal(t, "Failed to format code", toolerr.Message(err, ""))
}
