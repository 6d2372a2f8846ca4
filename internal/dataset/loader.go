package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// fileHeader is the envelope every dataset file shares. The data block
// is decoded per category after validation.
type fileHeader struct {
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Level    string          `json:"level"`
	Data     json.RawMessage `json:"data"`
}

// Load reads every *.json dataset file under dir, sorted by file name.
// Files that fail to parse or validate are skipped, reported through
// warn (which may be nil); a broken file never aborts the load.
func Load(dir string, warn func(file string, err error)) ([]*Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir: %w", err)
	}

	report := func(file string, err error) {
		if warn != nil {
			warn(file, err)
		}
	}

	var datasets []*Dataset
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		d, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			report(e.Name(), err)
			continue
		}
		datasets = append(datasets, d)
	}

	sort.Slice(datasets, func(i, j int) bool { return datasets[i].ID < datasets[j].ID })
	return datasets, nil
}

// LoadFile reads and validates a single dataset file. The dataset ID is
// the file name without its extension.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var hdr fileHeader
	if err := json.Unmarshal(raw, &hdr); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if hdr.Category != CategoryVocabulary && hdr.Category != CategoryGrammar {
		return nil, fmt.Errorf("%s: unknown category %q", path, hdr.Category)
	}
	if err := validateFile(hdr.Category, raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	items, err := decodeItems(hdr.Category, hdr.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Dataset{
		ID:       id,
		Name:     hdr.Name,
		Category: hdr.Category,
		Level:    hdr.Level,
		Items:    items,
	}, nil
}

func decodeItems(cat Category, data json.RawMessage) ([]Item, error) {
	switch cat {
	case CategoryVocabulary:
		var vocab []VocabItem
		if err := json.Unmarshal(data, &vocab); err != nil {
			return nil, fmt.Errorf("decode vocabulary items: %w", err)
		}
		items := make([]Item, len(vocab))
		for i, v := range vocab {
			items[i] = v
		}
		return items, nil
	default:
		var grammar []GrammarItem
		if err := json.Unmarshal(data, &grammar); err != nil {
			return nil, fmt.Errorf("decode grammar items: %w", err)
		}
		items := make([]Item, len(grammar))
		for i, g := range grammar {
			items[i] = g
		}
		return items, nil
	}
}
