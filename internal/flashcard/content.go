// Package flashcard renders dataset items into front/back card content
// for a chosen test mode.
package flashcard

// Side is one face of a flashcard.
type Side struct {
	Primary   string
	Secondary string
	Detail    string
}

// Content is the renderable front/back pair for one card. Sentences on
// either side may carry 【】 grammar markers; callers style or strip
// them via ParseSentence and friends.
type Content struct {
	Front Side
	Back  Side
}
