package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(text string) string {
	return `{"content":[{"type":"text","text":` + mustJSON(text) + `}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestClient_FindWord_Direct(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotReq request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(completionBody(`  {"word":"saudade"}  `)))
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "test-key\n")

	c, err := NewClient(Options{Model: "test-model", MaxTokens: 128})
	require.NoError(t, err)
	c.apiURL = srv.URL + "/v1/messages"

	raw, err := c.FindWord("missing a home that no longer exists")
	require.NoError(t, err)

	assert.Equal(t, `{"word":"saudade"}`, raw, "completion text is trimmed, not parsed")
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey, "key is trimmed")
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 128, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Contains(t, gotReq.Messages[0].Content, "missing a home that no longer exists")
	assert.Contains(t, gotReq.Messages[0].Content, `"word"`)
}

func TestClient_FindWord_Relay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var relay relayRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&relay))
		assert.Empty(t, r.Header.Get("x-api-key"), "relay mode must not send a key")
		assert.Contains(t, relay.Query, "a quiet ache")
		w.Write([]byte(completionBody(`{"word":"toska"}`)))
	}))
	defer srv.Close()

	t.Setenv("ANTHROPIC_API_KEY", "")

	c, err := NewClient(Options{RelayURL: srv.URL})
	require.NoError(t, err)

	raw, err := c.FindWord("a quiet ache")
	require.NoError(t, err)
	assert.Equal(t, `{"word":"toska"}`, raw)
}

func TestClient_FindWord_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"type":"overloaded_error","message":"Overloaded"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(Options{RelayURL: srv.URL})
	require.NoError(t, err)

	_, err = c.FindWord("anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Overloaded")
}

func TestClient_FindWord_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[]}`))
	}))
	defer srv.Close()

	c, err := NewClient(Options{RelayURL: srv.URL})
	require.NoError(t, err)

	_, err = c.FindWord("anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestNewClient_RequiresKeyOrRelay(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewClient(Options{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "ANTHROPIC_API_KEY"))
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("the relief after crying")
	assert.Contains(t, p, "the relief after crying")
	assert.Contains(t, p, `{"word": "...", "pronunciation": "...", "origin": "...", "definition": "..."}`)
}
