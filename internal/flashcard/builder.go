package flashcard

import (
	"math/rand"

	"github.com/ayato/kioku/internal/dataset"
)

// Build renders an item into card content for the given mode. rng drives
// the random-mode re-roll and the grammar example choice; it is injected
// so sessions and tests control the randomness. A nil rng degrades to
// the first concrete mode and the first example.
func Build(item dataset.Item, mode Mode, rng *rand.Rand) Content {
	switch it := item.(type) {
	case dataset.VocabItem:
		return buildVocab(it, mode, rng)
	case dataset.GrammarItem:
		return buildGrammar(it, mode, rng)
	}
	return Content{}
}

func pick[T any](rng *rand.Rand, options []T) T {
	if rng == nil {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}

func buildVocab(item dataset.VocabItem, mode Mode, rng *rand.Rand) Content {
	if mode == ModeRandom {
		mode = pick(rng, vocabModes)
	}

	switch mode {
	case ModeHiraganaToChinese:
		return Content{
			Front: Side{Primary: item.Hiragana},
			Back: Side{
				Primary: item.SimpleChinese,
				Detail:  item.FullExplanation,
			},
		}
	case ModeChineseToJapanese:
		return Content{
			Front: Side{Primary: item.SimpleChinese},
			Back: Side{
				Primary:   item.Japanese,
				Secondary: item.Hiragana,
				Detail:    item.FullExplanation,
			},
		}
	default: // ModeKanjiToChinese
		return Content{
			Front: Side{Primary: item.Japanese},
			Back: Side{
				Primary:   item.SimpleChinese,
				Secondary: item.Hiragana,
				Detail:    item.FullExplanation,
			},
		}
	}
}

func buildGrammar(item dataset.GrammarItem, mode Mode, rng *rand.Rand) Content {
	if mode == ModeRandom {
		mode = pick(rng, grammarModes)
	}

	var example *dataset.GrammarExample
	if len(item.Examples) > 0 {
		ex := pick(rng, item.Examples)
		example = &ex
	}

	switch mode {
	case ModeExampleToChinese:
		if example == nil {
			break
		}
		return Content{
			// The sentence keeps its 【】 markers so the UI can highlight
			// the grammar part.
			Front: Side{Primary: example.Sentence},
			Back: Side{
				Primary:   example.Chinese,
				Secondary: item.Japanese + "：" + item.SimpleChinese,
				Detail:    item.FullExplanation,
			},
		}
	case ModeChineseToGrammar:
		return Content{
			Front: Side{Primary: item.SimpleChinese},
			Back: Side{
				Primary: item.Japanese,
				Detail:  item.FullExplanation,
			},
		}
	case ModeFillInGrammar:
		if example == nil {
			break
		}
		return Content{
			Front: Side{
				Primary:   BlankSentence(example.Sentence),
				Secondary: example.Chinese,
			},
			Back: Side{
				Primary:   item.Japanese,
				Secondary: StripBrackets(example.Sentence),
				Detail:    item.FullExplanation,
			},
		}
	}

	// ModeGrammarToChinese, and the fallback when an example-based mode
	// has no example to draw from.
	return Content{
		Front: Side{Primary: item.Japanese},
		Back: Side{
			Primary: item.SimpleChinese,
			Detail:  item.FullExplanation,
		},
	}
}
