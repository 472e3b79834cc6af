// Package llm retrieves word completions from a language model.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	anthropicAPIURL  = "https://api.anthropic.com/v1/messages"
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 300
)

// Client requests completions either directly from the Anthropic API or
// through a relay that injects the API key server-side.
type Client struct {
	apiKey     string
	relayURL   string
	apiURL     string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     *log.Logger
}

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	RelayURL  string // When set, requests go through the relay instead of the API
	Model     string
	MaxTokens int
	Logger    *log.Logger
}

// message represents an Anthropic API message.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request represents an Anthropic API request.
type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

// response represents an Anthropic API response. The relay returns the
// same shape, so one decoder serves both modes.
type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// relayRequest is the body posted to a relay. The relay owns the key;
// the client never sees it.
type relayRequest struct {
	Query string `json:"query"`
}

// NewClient creates a client. In direct mode it reads the API key from
// the ANTHROPIC_API_KEY environment variable; in relay mode no key is
// needed locally.
func NewClient(opts Options) (*Client, error) {
	c := &Client{
		relayURL:   opts.RelayURL,
		apiURL:     anthropicAPIURL,
		model:      opts.Model,
		maxTokens:  opts.MaxTokens,
		logger:     opts.Logger,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.maxTokens <= 0 {
		c.maxTokens = defaultMaxTokens
	}

	if c.relayURL == "" {
		apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set (or configure a relay URL)")
		}
		c.apiKey = apiKey
	}

	return c, nil
}

// FindWord asks the model to name the emotion described by the query and
// returns the raw completion text. Extracting the structured payload from
// it is the caller's job.
func (c *Client) FindWord(query string) (string, error) {
	if c.relayURL != "" {
		return c.viaRelay(query)
	}
	return c.viaAPI(query)
}

func (c *Client) viaAPI(query string) (string, error) {
	req := request{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []message{
			{Role: "user", Content: buildPrompt(query)},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	c.debugf("requesting word from %s", c.model)
	return c.do(httpReq)
}

func (c *Client) viaRelay(query string) (string, error) {
	body, err := json.Marshal(relayRequest{Query: buildPrompt(query)})
	if err != nil {
		return "", fmt.Errorf("marshaling relay request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.relayURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.debugf("requesting word via relay %s", c.relayURL)
	return c.do(httpReq)
}

func (c *Client) do(httpReq *http.Request) (string, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(apiResp.Content[0].Text), nil
}

// buildPrompt creates the prompt for the model.
func buildPrompt(query string) string {
	var sb strings.Builder

	sb.WriteString("You are a lexicographer of feelings. Someone describes an emotional state ")
	sb.WriteString("and you name the single real word, from any language, that captures it most precisely.\n\n")

	sb.WriteString("=== THE FEELING ===\n")
	sb.WriteString(query)
	sb.WriteString("\n\n")

	sb.WriteString("=== YOUR TASK ===\n")
	sb.WriteString("Answer with ONLY a JSON object, nothing else, in exactly this shape:\n")
	sb.WriteString(`{"word": "...", "pronunciation": "...", "origin": "...", "definition": "..."}` + "\n\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("1. The word must be real and attested, never invented\n")
	sb.WriteString("2. Pronunciation is an approximate phonetic respelling\n")
	sb.WriteString("3. Origin names the language or culture the word comes from\n")
	sb.WriteString("4. The definition is one or two plain sentences\n")

	return sb.String()
}

func (c *Client) debugf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
