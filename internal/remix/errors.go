package remix

import (
	"errors"
	"strings"

	"brandremix/internal/imageref"
	"brandremix/internal/providers/together"
)

// FailureCategory buckets pipeline failures for user-facing messaging. Raw
// provider text never crosses the API boundary.
type FailureCategory string

const (
	FailureMissingInput       FailureCategory = "missing_input"
	FailureInvalidImage       FailureCategory = "invalid_image"
	FailureUnsupportedContext FailureCategory = "unsupported_context"
	FailureLocalReference     FailureCategory = "local_reference"
	FailureCredential         FailureCategory = "credential"
	FailureProvider           FailureCategory = "provider"
)

// Classify maps an underlying pipeline error onto a failure category.
// Sentinel errors win; the message scan covers provider-side errors that
// arrive as opaque text.
func Classify(err error) FailureCategory {
	switch {
	case err == nil:
		return FailureProvider
	case errors.Is(err, imageref.ErrLocalReference):
		return FailureLocalReference
	case errors.Is(err, imageref.ErrUnsupportedInContext):
		return FailureUnsupportedContext
	case errors.Is(err, imageref.ErrInvalidLocator):
		return FailureInvalidImage
	case errors.Is(err, together.ErrMissingAPIKey):
		return FailureCredential
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"),
		strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "authentication"),
		strings.Contains(msg, "invalid credentials"):
		return FailureCredential
	case strings.Contains(msg, "invalid image"),
		strings.Contains(msg, "image_url"),
		strings.Contains(msg, "condition_image"),
		strings.Contains(msg, "could not fetch image"):
		return FailureInvalidImage
	default:
		return FailureProvider
	}
}

// UserMessage returns the user-facing message for a failure category.
func UserMessage(category FailureCategory) string {
	switch category {
	case FailureMissingInput:
		return "Image and brand selection required"
	case FailureInvalidImage:
		return "Invalid image format. Please check that your image is accessible and try again."
	case FailureUnsupportedContext:
		return "This image reference cannot be used here. Please re-upload the image."
	case FailureLocalReference:
		return "Local image URLs are not supported. Please provide a publicly accessible image."
	case FailureCredential:
		return "Image generation is unavailable. Please check API configuration."
	default:
		return "Failed to generate brand remix. Please try again."
	}
}

func failure(category FailureCategory) Result {
	return Result{Success: false, Error: UserMessage(category)}
}
