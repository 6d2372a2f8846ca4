package flashcard

import (
	"reflect"
	"testing"
)

func TestParseSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     []Part
	}{
		{
			"single bracket",
			"勉強している【うちに】眠くなった",
			[]Part{
				{Text: "勉強している"},
				{Text: "うちに", Grammar: true},
				{Text: "眠くなった"},
			},
		},
		{
			"leading bracket",
			"【たとえ】雨でも行く",
			[]Part{
				{Text: "たとえ", Grammar: true},
				{Text: "雨でも行く"},
			},
		},
		{
			"multiple brackets",
			"【たとえ】雨【でも】行く",
			[]Part{
				{Text: "たとえ", Grammar: true},
				{Text: "雨"},
				{Text: "でも", Grammar: true},
				{Text: "行く"},
			},
		},
		{
			"no brackets",
			"雨が降る",
			[]Part{{Text: "雨が降る"}},
		},
		{
			"unclosed bracket stays plain",
			"雨【でも行く",
			[]Part{{Text: "雨【でも行く"}},
		},
		{"empty", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseSentence(tc.sentence)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseSentence(%q) = %v, want %v", tc.sentence, got, tc.want)
			}
		})
	}
}

func TestBlankSentence(t *testing.T) {
	got := BlankSentence("勉強している【うちに】眠くなった")
	want := "勉強している____眠くなった"
	if got != want {
		t.Errorf("BlankSentence = %q, want %q", got, want)
	}
}

func TestStripBrackets(t *testing.T) {
	got := StripBrackets("勉強している【うちに】眠くなった")
	want := "勉強しているうちに眠くなった"
	if got != want {
		t.Errorf("StripBrackets = %q, want %q", got, want)
	}
}

func TestGrammarText(t *testing.T) {
	if got := GrammarText("【たとえ】雨【でも】行く"); got != "たとえでも" {
		t.Errorf("GrammarText = %q", got)
	}
}
