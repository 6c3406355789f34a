package internal

import (
	"context"
	"strings"
)

// ChatTurn is the model-facing view of one message: just who said what.
type ChatTurn struct {
	Sender string
	Text   string
}

// ImageResult is the tagged outcome of an image generation call. The
// boundary returns it instead of an error so callers can distinguish "no
// image produced" from transport failure.
type ImageResult struct {
	// DataURI holds the generated image as a data URI when generation
	// succeeded.
	DataURI string
	// Err holds the provider's failure text when generation failed.
	Err string
}

// Assistant is the remote generative capability boundary. Everything
// behind it is opaque to the conversation core.
type Assistant interface {
	// GenerateReply produces the model's answer for an ordered turn
	// sequence whose first element must be a user turn.
	GenerateReply(ctx context.Context, turns []ChatTurn) (string, error)

	// GenerateImagePrompt turns a free-form description into an image
	// generation prompt. An empty prompt signals failure without error.
	GenerateImagePrompt(ctx context.Context, description string) (string, error)

	// GenerateImage renders a prompt into an image, reporting failure in
	// the tagged result.
	GenerateImage(ctx context.Context, prompt string) ImageResult

	// Translate renders text into the target language.
	Translate(ctx context.Context, text, languageCode string) (string, error)
}

// User-facing failure texts. Raw provider errors never reach the
// conversation; they are classified into this small set.
const (
	replyFailedText       = "Sorry, I encountered an error. Please try again."
	imagePromptFailedText = "Sorry, I couldn't come up with an image prompt for that. Please try a different description."
	imageNoMediaText      = "The AI couldn't generate an image for this request. Please try a different description or try again later."
	imageGenericText      = "There was an issue generating the image. Please try again."
	imageUnexpectedText   = "Sorry, something went wrong with image generation."
	structureFailedText   = "Sorry, I lost track of this conversation's structure. Please try again or start a new chat."
)

// SanitizeImageError maps a provider failure text onto one of the known
// user-facing explanations.
func SanitizeImageError(raw string) string {
	switch {
	case strings.Contains(raw, "failed to return media"):
		return imageNoMediaText
	case strings.HasPrefix(raw, "AI Image Generation Error:"):
		return imageGenericText
	default:
		return imageUnexpectedText
	}
}
