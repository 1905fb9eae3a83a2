package vision

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/sync/errgroup"

	"brandremix/internal/infra"
)

const defaultVisionModel = "gpt-4o"

// The analytical instruction is fixed: it enumerates exactly the descriptor
// fields, demands brand-blindness, and requests a strictly parseable reply.
const analysisInstruction = `Analyze this image for PURE PHOTOGRAPHIC STYLE TRANSFER. Extract ONLY the visual aesthetic elements that can be applied to a different product, while completely IGNORING any brand elements, logos, or product-specific design.

FOCUS EXCLUSIVELY ON:
- Photography technique and camera work
- Lighting setup and quality
- Color grading and tone
- Composition and framing
- Background treatment
- Mood and atmosphere
- Visual aesthetic style

COMPLETELY IGNORE:
- Brand logos, names, or identifiers
- Product-specific design elements
- Textual content or typography
- Brand-specific colors (focus on overall color mood instead)
- Product shape or design details

Please provide analysis in this exact JSON format:
{
  "lighting": "describe ONLY the lighting technique (dramatic directional, soft diffused, natural window, studio setup, harsh shadows, etc.)",
  "mood": "describe the emotional atmosphere (moody, bright, elegant, energetic, calm, bold, etc.)",
  "composition": "describe framing and layout (centered, rule of thirds, close-up, wide shot, angle, etc.)",
  "colorPalette": ["extract", "dominant", "color", "tones", "as", "hex", "values"],
  "aesthetic": "describe the photography aesthetic (minimalist, luxury editorial, street photography, vintage film, modern commercial, etc.)",
  "description": "comprehensive description of the PHOTOGRAPHIC STYLE ONLY for AI generation",
  "photographyStyle": "describe the specific photo technique (commercial product photography, editorial fashion, lifestyle, documentary, studio portrait, etc.)",
  "background": "describe background treatment (clean seamless, textured wall, gradient, environmental context, etc.)",
  "tone": "describe color processing (warm golden, cool blue, desaturated matte, high contrast, film grain, etc.)"
}

Extract only the photographic DNA that makes this image visually appealing, not the brand or product identity.`

// Options configures the vision analysis client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client calls a vision-capable chat model to describe photographic style.
// Every analysis method is total: failures degrade to DefaultDescriptor
// instead of surfacing an error, because a failed analysis must never abort
// the remix pipeline.
type Client struct {
	api    *openai.Client
	model  string
	hasKey bool
	logger *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	cfg := openai.DefaultConfig(strings.TrimSpace(opts.APIKey))
	if baseURL := strings.TrimRight(opts.BaseURL, "/"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	} else {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 45 * time.Second
		}
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultVisionModel
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		model:  model,
		hasKey: strings.TrimSpace(opts.APIKey) != "",
		logger: logger,
	}, nil
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.hasKey
}

// AnalyzeImageStyle issues one vision call for the given resolved image
// reference and returns a descriptor. It never returns an error: transport
// failures, auth failures, and empty replies all degrade to the default
// descriptor.
func (c *Client) AnalyzeImageStyle(ctx context.Context, imageRef string) StyleDescriptor {
	if !c.hasKey || strings.TrimSpace(imageRef) == "" {
		return DefaultDescriptor()
	}
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   1000,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: analysisInstruction},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    imageRef,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("vision: style analysis failed, using default descriptor")
		return DefaultDescriptor()
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("vision: empty analysis response, using default descriptor")
		return DefaultDescriptor()
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return DefaultDescriptor()
	}
	descriptor, strict := ParseDescriptor(content)
	if !strict {
		c.logger.Debug().Msg("vision: analysis reply was not strict JSON, used keyword scan")
	}
	return descriptor
}

// AnalyzeBatch analyzes many references independently and concurrently. A
// failing item degrades to the default descriptor without affecting the rest
// of the batch; the result always has one descriptor per input, in order.
func (c *Client) AnalyzeBatch(ctx context.Context, imageRefs []string) []StyleDescriptor {
	results := make([]StyleDescriptor, len(imageRefs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range imageRefs {
		i, ref := i, ref
		g.Go(func() error {
			results[i] = c.AnalyzeImageStyle(gctx, ref)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ValidateKey performs a cheap read-only call to check credential liveness.
// It reports validity without raising.
func (c *Client) ValidateKey(ctx context.Context) bool {
	if !c.hasKey {
		return false
	}
	if _, err := c.api.ListModels(ctx); err != nil {
		c.logger.Debug().Err(err).Msg("vision: key validation failed")
		return false
	}
	return true
}
