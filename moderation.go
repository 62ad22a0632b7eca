package freejourney

import (
	"context"

	"github.com/samber/lo"
)

// Fill is the character profanities are replaced with by FilterText.
type Fill string

const (
	FillAsterisk   Fill = "*"
	FillUnderscore Fill = "_"
	FillTilde      Fill = "~"
	FillDash       Fill = "-"
	FillEquals     Fill = "="
	FillPipe       Fill = "|"
)

// Fills lists the characters accepted by the API.
var Fills = []Fill{FillAsterisk, FillUnderscore, FillTilde, FillDash, FillEquals, FillPipe}

// Moderation groups the text moderation endpoints.
type Moderation struct {
	client *Client
}

type FilteredText struct {
	// Text is the text as it was sent.
	Text string `json:"text"`
	// Result is the text with profanities replaced.
	Result string `json:"result"`
}

type filterPayload struct {
	Text string `json:"text" structs:"text"`
	Fill Fill   `json:"fill" structs:"fill"`
}

// FilterText replaces profanities in text with the fill character.
//
// The zero value of Fill uses "*". Characters not in Fills are rejected with
// ErrInvalidFill before anything is sent.
//
// Example usage:
//
//	resp, err := fj.Moderation.FilterText(ctx, "some text", freejourney.FillTilde)
func (n *Moderation) FilterText(ctx context.Context, text string, fill Fill) (FilteredText, error) {
	if fill == "" {
		fill = FillAsterisk
	}

	if !lo.Contains(Fills, fill) {
		return FilteredText{}, argumentError(OpTextFilter, ErrInvalidFill, "fill %q", string(fill))
	}

	return dispatch[FilteredText](ctx, n.client, OpTextFilter, filterPayload{Text: text, Fill: fill})
}
