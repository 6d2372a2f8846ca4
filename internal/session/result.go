package session

import "github.com/ayato/kioku/internal/srs"

// RatedCard is one rating event within a session.
type RatedCard struct {
	CardID string     `json:"cardId"`
	Rating srs.Rating `json:"rating"`
}

// Result is the session's final tally. It is derived from the rating
// history and never persisted.
type Result struct {
	Total int         `json:"total"`
	Good  int         `json:"good"`
	Hard  int         `json:"hard"`
	Again int         `json:"again"`
	Cards []RatedCard `json:"cards"`
}
