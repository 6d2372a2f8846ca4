// Package dataset defines the card datasets the app studies from and
// loads them from JSON files on disk.
package dataset

// Category distinguishes the two dataset kinds, which carry different
// item shapes and different test modes.
type Category string

const (
	CategoryVocabulary Category = "vocabulary"
	CategoryGrammar    Category = "grammar"
)

// Item is a single studyable entry in a dataset. Concrete types are
// VocabItem and GrammarItem.
type Item interface {
	ItemID() string
}

// VocabItem is one vocabulary entry.
type VocabItem struct {
	ID              string `json:"id"`
	Japanese        string `json:"japanese"`
	Hiragana        string `json:"hiragana"`
	SimpleChinese   string `json:"simple_chinese"`
	FullExplanation string `json:"full_explanation"`
}

func (v VocabItem) ItemID() string { return v.ID }

// GrammarExample is one example sentence for a grammar point. The
// sentence marks the grammar part with 【】 brackets.
type GrammarExample struct {
	Sentence string `json:"sentence"`
	Chinese  string `json:"chinese"`
}

// GrammarItem is one grammar point with example sentences.
type GrammarItem struct {
	ID              string           `json:"id"`
	Japanese        string           `json:"japanese"`
	SimpleChinese   string           `json:"simple_chinese"`
	FullExplanation string           `json:"full_explanation"`
	Examples        []GrammarExample `json:"examples"`
}

func (g GrammarItem) ItemID() string { return g.ID }

// Dataset is one loaded card collection. ID is derived from the file name.
type Dataset struct {
	ID       string
	Name     string
	Category Category
	Level    string
	Items    []Item
}

// ItemIDs returns the dataset's card IDs in native order.
func (d *Dataset) ItemIDs() []string {
	ids := make([]string, len(d.Items))
	for i, it := range d.Items {
		ids[i] = it.ItemID()
	}
	return ids
}

// Find returns the item with the given ID, or nil if absent.
func (d *Dataset) Find(id string) Item {
	for _, it := range d.Items {
		if it.ItemID() == id {
			return it
		}
	}
	return nil
}
