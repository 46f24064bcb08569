package editor

import "context"

// DialogRequest carries the state handed to the rich-text editor dialog
// when a bilingual text cell is opened.
type DialogRequest struct {
	Title         string
	EnglishHTML   string
	SpanishHTML   string
	EnglishStatus string
	SpanishStatus string
}

// SaveFunc receives the possibly-edited bilingual text when the dialog is
// saved. Closing the dialog without saving fires nothing.
type SaveFunc func(ctx context.Context, englishHTML, spanishHTML string) error

// Dialog is the external rich-text editor collaborator. Implementations own
// the editing UI; this module only hands over the initial state and the
// save callback.
type Dialog interface {
	Open(ctx context.Context, req DialogRequest, save SaveFunc) error
}
