package flashcard

import "strings"

// Part is one segment of a grammar example sentence.
type Part struct {
	Text    string
	Grammar bool
}

const (
	bracketOpen  = "【"
	bracketClose = "】"
)

// ParseSentence splits a sentence with 【】 notation into plain and
// grammar parts, in order. An unclosed bracket is kept as plain text.
func ParseSentence(sentence string) []Part {
	var parts []Part
	rest := sentence
	for {
		open := strings.Index(rest, bracketOpen)
		if open < 0 {
			break
		}
		tail := rest[open+len(bracketOpen):]
		close := strings.Index(tail, bracketClose)
		if close < 0 {
			break
		}
		if open > 0 {
			parts = append(parts, Part{Text: rest[:open]})
		}
		parts = append(parts, Part{Text: tail[:close], Grammar: true})
		rest = tail[close+len(bracketClose):]
	}
	if rest != "" {
		parts = append(parts, Part{Text: rest})
	}
	return parts
}

// BlankSentence replaces each grammar part with a blank for fill-in cards.
func BlankSentence(sentence string) string {
	var b strings.Builder
	for _, p := range ParseSentence(sentence) {
		if p.Grammar {
			b.WriteString("____")
		} else {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// StripBrackets removes the 【】 markers, keeping the sentence text.
func StripBrackets(sentence string) string {
	sentence = strings.ReplaceAll(sentence, bracketOpen, "")
	return strings.ReplaceAll(sentence, bracketClose, "")
}

// GrammarText extracts just the bracketed grammar text.
func GrammarText(sentence string) string {
	var b strings.Builder
	for _, p := range ParseSentence(sentence) {
		if p.Grammar {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
