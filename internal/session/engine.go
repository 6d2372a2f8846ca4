// Package session composes and runs one study session: it selects cards,
// serves them one at a time, applies ratings through the SM-2 scheduler,
// and requeues failed cards until every card has been answered.
package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ayato/kioku/internal/dataset"
	"github.com/ayato/kioku/internal/flashcard"
	"github.com/ayato/kioku/internal/srs"
)

// Type selects how the session's initial queue is built.
type Type string

const (
	// TypeDue studies cards whose next review date has arrived.
	TypeDue Type = "due"
	// TypeRandom studies a random sample of the whole dataset.
	TypeRandom Type = "random"
	// TypeSpecific studies an explicit card list in the given order
	// (used by study plans).
	TypeSpecific Type = "specific"
)

// ProgressStore is the engine's view of progress persistence. All reads
// during rating go through Get so a requeued card sees the updates made
// earlier in the same session.
type ProgressStore interface {
	// Get returns the progress for a card, or nil if never reviewed.
	Get(ctx context.Context, cardID string) (*srs.CardProgress, error)

	// All returns a snapshot of every progress record, keyed by card ID.
	All(ctx context.Context) (map[string]srs.CardProgress, error)

	// Put stores a progress record, replacing any prior one.
	Put(ctx context.Context, p srs.CardProgress) error
}

// StudyCard pairs an item with its rendered content. Content is built
// once at selection time; a requeued card keeps the same rendering.
type StudyCard struct {
	Item    dataset.Item
	Content flashcard.Content
}

// Config describes the session to build.
type Config struct {
	Dataset  *dataset.Dataset
	Mode     flashcard.Mode
	Type     Type
	Size     int      // cap on the initial queue; ignored for TypeSpecific
	CardIDs  []string // TypeSpecific: the cards to study, in order
	Progress ProgressStore
	Rng      *rand.Rand       // nil seeds from the clock
	Now      func() time.Time // nil uses time.Now
}

// Engine runs one session. It is not safe for concurrent use; the app
// drives it from a single event loop.
type Engine struct {
	id        string
	datasetID string
	initial   []StudyCard
	requeue   []StudyCard
	index     int
	flipped   bool
	results   []RatedCard
	progress  ProgressStore
	now       func() time.Time
}

// New selects the session's cards and returns a ready engine. Selection
// reads one progress snapshot; it does not react to later mutations.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	if cfg.Dataset == nil {
		return nil, fmt.Errorf("new session: dataset is required")
	}
	if cfg.Progress == nil {
		return nil, fmt.Errorf("new session: progress store is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(now().UnixNano()))
	}

	snapshot, err := cfg.Progress.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress snapshot: %w", err)
	}

	items := selectItems(cfg, snapshot, rng, now())

	cards := make([]StudyCard, len(items))
	for i, it := range items {
		cards[i] = StudyCard{Item: it, Content: flashcard.Build(it, cfg.Mode, rng)}
	}

	return &Engine{
		id:        uuid.NewString(),
		datasetID: cfg.Dataset.ID,
		initial:   cards,
		progress:  cfg.Progress,
		now:       now,
	}, nil
}

// selectItems builds the initial ordering for the session type.
func selectItems(cfg Config, snapshot map[string]srs.CardProgress, rng *rand.Rand, today time.Time) []dataset.Item {
	switch cfg.Type {
	case TypeSpecific:
		// Preserve the order of the requested IDs, not the dataset's.
		var items []dataset.Item
		for _, id := range cfg.CardIDs {
			if it := cfg.Dataset.Find(id); it != nil {
				items = append(items, it)
			}
		}
		return items

	case TypeRandom:
		return capSize(Shuffle(rng, cfg.Dataset.Items), cfg.Size)

	default: // TypeDue
		var due []dataset.Item
		for _, it := range cfg.Dataset.Items {
			var p *srs.CardProgress
			if rec, ok := snapshot[it.ItemID()]; ok {
				p = &rec
			}
			if srs.IsDue(p, today) {
				due = append(due, it)
			}
		}
		return capSize(Shuffle(rng, due), cfg.Size)
	}
}

func capSize(items []dataset.Item, size int) []dataset.Item {
	if size > 0 && len(items) > size {
		return items[:size]
	}
	return items
}

// ID returns the session's unique identifier.
func (e *Engine) ID() string { return e.id }

// DatasetID returns the dataset this session studies.
func (e *Engine) DatasetID() string { return e.datasetID }

// Total returns the session length as shown to the learner: the initial
// queue plus every requeued card so far. It grows by one for each
// again rating.
func (e *Engine) Total() int { return len(e.initial) + len(e.requeue) }

// Index returns the cursor into the combined queue.
func (e *Engine) Index() int { return e.index }

// Flipped reports whether the current card's back is showing.
func (e *Engine) Flipped() bool { return e.flipped }

// Empty reports the "nothing to study" condition: no cards were
// selected at session start. Distinct from a completed session.
func (e *Engine) Empty() bool { return e.Total() == 0 }

// Complete reports whether every card, initial and requeued, has been
// rated. An empty session is never complete.
func (e *Engine) Complete() bool {
	return e.Total() > 0 && e.index >= e.Total()
}

// Current returns the card under the cursor, or nil after completion
// (and for empty sessions).
func (e *Engine) Current() *StudyCard {
	if e.index < len(e.initial) {
		return &e.initial[e.index]
	}
	if i := e.index - len(e.initial); i < len(e.requeue) {
		return &e.requeue[i]
	}
	return nil
}

// Flip reveals the current card's back. No-op without a current card.
func (e *Engine) Flip() {
	if e.Current() == nil {
		return
	}
	e.flipped = true
}

// Rate applies a rating to the current card: progress is computed by the
// scheduler against the live store and persisted immediately, the result
// is recorded, and an again-rated card is appended to the requeue tail.
// A call without a current card is a no-op.
func (e *Engine) Rate(ctx context.Context, rating srs.Rating) error {
	card := e.Current()
	if card == nil {
		return nil
	}

	cardID := card.Item.ItemID()
	current, err := e.progress.Get(ctx, cardID)
	if err != nil {
		return fmt.Errorf("load progress for %s: %w", cardID, err)
	}
	next := srs.Schedule(current, cardID, e.datasetID, rating, e.now())
	if err := e.progress.Put(ctx, next); err != nil {
		return fmt.Errorf("save progress for %s: %w", cardID, err)
	}

	e.results = append(e.results, RatedCard{CardID: cardID, Rating: rating})

	if rating == srs.RatingAgain {
		// Same card value, same rendered content: requeued cards are
		// not re-rolled.
		e.requeue = append(e.requeue, *card)
	}

	e.index++
	e.flipped = false
	return nil
}

// Result tallies the session so far. Requeued cards contribute one entry
// per appearance.
func (e *Engine) Result() Result {
	r := Result{
		Total: len(e.results),
		Cards: make([]RatedCard, len(e.results)),
	}
	copy(r.Cards, e.results)
	for _, rc := range e.results {
		switch rc.Rating {
		case srs.RatingGood:
			r.Good++
		case srs.RatingHard:
			r.Hard++
		case srs.RatingAgain:
			r.Again++
		}
	}
	return r
}
