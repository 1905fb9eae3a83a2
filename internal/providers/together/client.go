package together

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"brandremix/internal/imageref"
	"brandremix/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("together: api key is required")

// Fixed diffusion-family knobs carried over from the image-to-image pipeline.
const (
	defaultPromptStrength = 0.35
	guidanceScale         = 7.5
	initImageMode         = "IMAGE_STRENGTH"
)

// Options configures the Together AI client.
type Options struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Together AI image generation API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger
}

// GenerateParams captures one generation call. Model must come from
// ResolveModel so the family tag is already decided.
type GenerateParams struct {
	Model          ModelConfig
	Prompt         string
	ImageRef       string // resolved reference: remote URL or data URL, optional
	Width          int
	Height         int
	Steps          int
	N              int
	ResponseFormat string
	PromptStrength float64 // diffusion family only
}

// Image is the normalized result of one generated variation.
type Image struct {
	ID     string
	URL    string
	Model  string
	Prompt string
}

type kontextRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
	N              int    `json:"n"`
	ResponseFormat string `json:"response_format"`
	ImageURL       string `json:"image_url,omitempty"`
}

type diffusionRequest struct {
	Model          string  `json:"model"`
	Prompt         string  `json:"prompt"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Steps          int     `json:"steps"`
	N              int     `json:"n"`
	ResponseFormat string  `json:"response_format"`
	PromptStrength float64 `json:"prompt_strength"`
	GuidanceScale  float64 `json:"guidance_scale"`
	InitImageMode  string  `json:"init_image_mode"`
	ConditionImage string  `json:"condition_image,omitempty"`
}

type generationResponse struct {
	Data []struct {
		ID      string `json:"id"`
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 90 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.together.xyz/v1"
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
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// GenerateImage issues one generation call and normalizes the provider
// response into a uniform image list. Dimensions are adjusted to the model's
// accepted grid before the request leaves the process.
func (c *Client) GenerateImage(ctx context.Context, params GenerateParams) ([]Image, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingAPIKey
	}
	prompt := strings.TrimSpace(params.Prompt)
	if prompt == "" {
		return nil, errors.New("together: prompt is required")
	}

	width, height := imageref.NormalizeDimensions(params.Width, params.Height)
	steps := params.Steps
	if steps <= 0 {
		steps = params.Model.OptimalSteps
	}
	if params.Model.MaxSteps > 0 && steps > params.Model.MaxSteps {
		steps = params.Model.MaxSteps
	}
	n := params.N
	if n <= 0 {
		n = 1
	}
	responseFormat := params.ResponseFormat
	if responseFormat == "" {
		responseFormat = "url"
	}

	var payload any
	switch params.Model.Family {
	case FamilyKontext:
		req := kontextRequest{
			Model:          params.Model.ID,
			Prompt:         prompt,
			Width:          width,
			Height:         height,
			Steps:          steps,
			N:              n,
			ResponseFormat: responseFormat,
		}
		// Kontext models fetch the reference themselves, so the resolved
		// locator is attached verbatim.
		if params.ImageRef != "" {
			req.ImageURL = params.ImageRef
		}
		payload = req
	default:
		strength := params.PromptStrength
		if strength <= 0 {
			strength = defaultPromptStrength
		}
		req := diffusionRequest{
			Model:          params.Model.ID,
			Prompt:         prompt,
			Width:          width,
			Height:         height,
			Steps:          steps,
			N:              n,
			ResponseFormat: responseFormat,
			PromptStrength: strength,
			GuidanceScale:  guidanceScale,
			InitImageMode:  initImageMode,
		}
		if params.ImageRef != "" {
			req.ConditionImage = imageref.RawBase64(params.ImageRef)
		}
		payload = req
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("together: encode request: %w", err)
	}
	endpoint := c.baseURL + "/images/generations"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("together: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("together: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("together: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil && detail.Error.Message != "" {
			return nil, fmt.Errorf("together: %s", detail.Error.Message)
		}
		return nil, fmt.Errorf("together: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded generationResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("together: decode response: %w", err)
	}
	if len(decoded.Data) == 0 {
		return nil, errors.New("together: empty generation result")
	}

	images := make([]Image, 0, len(decoded.Data))
	for _, item := range decoded.Data {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		url := item.URL
		if url == "" && item.B64JSON != "" {
			// Keep the output type uniform regardless of requested format.
			url = "data:image/png;base64," + item.B64JSON
		}
		if url == "" {
			continue
		}
		images = append(images, Image{ID: id, URL: url, Model: params.Model.ID, Prompt: prompt})
	}
	if len(images) == 0 {
		return nil, errors.New("together: no usable image in response")
	}
	c.logger.Debug().
		Str("model", params.Model.ID).
		Str("family", string(params.Model.Family)).
		Int("count", len(images)).
		Int("width", width).
		Int("height", height).
		Msg("together: generated images")
	return images, nil
}

// ValidateKey performs a cheap read-only call to check credential liveness.
// It reports validity without raising.
func (c *Client) ValidateKey(ctx context.Context) bool {
	if !c.HasCredentials() {
		return false
	}
	endpoint := c.baseURL + "/models"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("together: key validation failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode < 300
}
