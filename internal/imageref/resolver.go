package imageref

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Locator errors. Callers branch on these to pick user-facing messaging, so
// they are sentinels rather than ad-hoc strings.
var (
	// ErrInvalidLocator indicates the locator matched none of the supported shapes.
	ErrInvalidLocator = errors.New("imageref: invalid image locator")
	// ErrUnsupportedInContext indicates a browser-only handle (blob:) reached a
	// context that cannot dereference it.
	ErrUnsupportedInContext = errors.New("imageref: locator not resolvable in this context")
	// ErrLocalReference indicates a loopback or local-filesystem locator, which
	// is never forwarded upstream.
	ErrLocalReference = errors.New("imageref: local references are not allowed")
)

// Kind classifies the address form of an image locator.
type Kind string

const (
	KindRemoteURL  Kind = "remote_url"
	KindDataURL    Kind = "data_url"
	KindBlobHandle Kind = "blob_handle"
	KindRawBase64  Kind = "raw_base64"
)

// Raw base64 payloads carry no scheme, so anything shorter than this is
// assumed to be a malformed URL instead of image data.
const minRawBase64Length = 100

// BlobResolver dereferences an ephemeral blob: handle into image bytes. Only a
// browser-adjacent host can supply one; the API server runs without it.
type BlobResolver func(ctx context.Context, handle string) (data []byte, mimeType string, err error)

// Resolver normalizes opaque image locators into forms the upstream providers
// accept: a remote URL passed through, or a base64 data URL.
type Resolver struct {
	blob BlobResolver
}

// NewResolver builds a resolver. blob may be nil, in which case blob: handles
// fail with ErrUnsupportedInContext.
func NewResolver(blob BlobResolver) *Resolver {
	return &Resolver{blob: blob}
}

// Classify reports the address form of a locator without resolving it.
// Loopback and file references are rejected regardless of other shape cues.
func Classify(locator string) (Kind, error) {
	trimmed := strings.TrimSpace(locator)
	if trimmed == "" {
		return "", ErrInvalidLocator
	}
	if isLocalReference(trimmed) {
		return "", ErrLocalReference
	}
	switch {
	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return KindRemoteURL, nil
	case strings.HasPrefix(trimmed, "data:image/"):
		return KindDataURL, nil
	case strings.HasPrefix(trimmed, "blob:"):
		return KindBlobHandle, nil
	case len(trimmed) >= minRawBase64Length && !strings.Contains(trimmed, "://"):
		return KindRawBase64, nil
	default:
		return "", ErrInvalidLocator
	}
}

// Resolve converts a locator into a provider-usable reference. Remote URLs and
// data URLs pass through unchanged, blob handles are dereferenced into data
// URLs, and raw base64 payloads gain a default content-type prefix.
func (r *Resolver) Resolve(ctx context.Context, locator string) (string, error) {
	kind, err := Classify(locator)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(locator)
	switch kind {
	case KindRemoteURL, KindDataURL:
		return trimmed, nil
	case KindBlobHandle:
		if r == nil || r.blob == nil {
			return "", fmt.Errorf("%w: blob handle %q", ErrUnsupportedInContext, truncate(trimmed, 64))
		}
		data, mimeType, err := r.blob(ctx, trimmed)
		if err != nil {
			return "", fmt.Errorf("imageref: dereference blob handle: %w", err)
		}
		if mimeType == "" {
			mimeType = "image/jpeg"
		}
		return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)), nil
	case KindRawBase64:
		return "data:image/jpeg;base64," + trimmed, nil
	default:
		return "", ErrInvalidLocator
	}
}

// RawBase64 strips a data-URL prefix, leaving the bare payload expected by the
// condition_image parameter. Non data-URL input is returned unchanged.
func RawBase64(resolved string) string {
	if !strings.HasPrefix(resolved, "data:") {
		return resolved
	}
	if idx := strings.Index(resolved, ","); idx >= 0 {
		return resolved[idx+1:]
	}
	return resolved
}

func isLocalReference(locator string) bool {
	lower := strings.ToLower(locator)
	if strings.HasPrefix(lower, "file://") {
		return true
	}
	// A long base64 payload cannot contain a host name, so a substring check
	// is safe for every shape that still has URL structure.
	return strings.Contains(lower, "localhost") || strings.Contains(lower, "127.0.0.1")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
