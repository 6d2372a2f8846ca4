package flashcard

import "github.com/ayato/kioku/internal/dataset"

// Mode selects which fields of an item form the card's front and back.
type Mode string

// Vocabulary modes.
const (
	ModeKanjiToChinese    Mode = "kanji-to-chinese"
	ModeHiraganaToChinese Mode = "hiragana-to-chinese"
	ModeChineseToJapanese Mode = "chinese-to-japanese"
)

// Grammar modes.
const (
	ModeGrammarToChinese Mode = "grammar-to-chinese"
	ModeExampleToChinese Mode = "example-to-chinese"
	ModeChineseToGrammar Mode = "chinese-to-grammar"
	ModeFillInGrammar    Mode = "fill-in-grammar"
)

// ModeRandom re-rolls a concrete mode per card.
const ModeRandom Mode = "random"

// vocabModes and grammarModes list the concrete (non-random) modes per
// category, in menu order.
var (
	vocabModes   = []Mode{ModeKanjiToChinese, ModeHiraganaToChinese, ModeChineseToJapanese}
	grammarModes = []Mode{ModeGrammarToChinese, ModeExampleToChinese, ModeChineseToGrammar, ModeFillInGrammar}
)

// ModesFor returns the selectable modes for a dataset category,
// including the trailing random option.
func ModesFor(cat dataset.Category) []Mode {
	var modes []Mode
	if cat == dataset.CategoryVocabulary {
		modes = append(modes, vocabModes...)
	} else {
		modes = append(modes, grammarModes...)
	}
	return append(modes, ModeRandom)
}

// DefaultMode returns the first concrete mode for a category.
func DefaultMode(cat dataset.Category) Mode {
	if cat == dataset.CategoryVocabulary {
		return ModeKanjiToChinese
	}
	return ModeGrammarToChinese
}

// Label returns the menu label for a mode.
func (m Mode) Label() string {
	switch m {
	case ModeKanjiToChinese:
		return "漢字 → 中文"
	case ModeHiraganaToChinese:
		return "假名 → 中文"
	case ModeChineseToJapanese:
		return "中文 → 日文"
	case ModeGrammarToChinese:
		return "文法 → 中文"
	case ModeExampleToChinese:
		return "例句 → 中文"
	case ModeChineseToGrammar:
		return "中文 → 文法"
	case ModeFillInGrammar:
		return "填空 → 文法"
	case ModeRandom:
		return "隨機"
	}
	return string(m)
}

// ValidFor reports whether m is selectable for the given category.
func (m Mode) ValidFor(cat dataset.Category) bool {
	for _, candidate := range ModesFor(cat) {
		if m == candidate {
			return true
		}
	}
	return false
}
