package freejourney

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

var testEndpoint = Endpoint{
	Operation: OpChatGPT4,
	Method:    http.MethodPost,
	Path:      "/chat/gpt-4",
	Label:     "Test request",
}

func TestDecodeResponse(t *testing.T) {
	output, err := decodeResponse[Completion](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": {"prompt": "p", "completion": "c", "tokens": 12}}`), true)

	assert.Nil(t, err)
	assert.Equal(t, Completion{Prompt: "p", Completion: "c"}, output)
}

func TestDecodeResponseFailures(t *testing.T) {
	tts := []struct {
		name      string
		status    int
		raw       string
		transport bool
		message   string
	}{
		{"non-json error status", 502, `Bad Gateway`, false, "Test request failed: http 502 Bad Gateway"},
		{"non-json success status", 200, `Bad Gateway`, true, "response is not a JSON envelope"},
		{"json array body", 200, `[1, 2]`, true, "response is not a JSON envelope"},
		{"error status with message", 404, `{"success": false, "message": "not found"}`, false, "Test request failed: not found"},
		{"error status without message", 500, `{}`, false, "Test request failed: http 500 Internal Server Error"},
		{"success false", 200, `{"success": false, "message": "no credits left"}`, false, "Test request failed: no credits left"},
		{"success missing", 200, `{"data": {"prompt": "p", "completion": "c"}}`, false, "server did not report success"},
		{"data missing", 200, `{"success": true}`, true, "response envelope has no data"},
		{"data null", 200, `{"success": true, "data": null}`, true, "response envelope has no data"},
		{"wrong kind", 200, `{"success": true, "data": {"prompt": 1, "completion": "c"}}`, true, "unexpected response payload"},
		{"missing field", 200, `{"success": true, "data": {"prompt": "p"}}`, true, "data.completion: missing required field"},
		{"data is not an object", 200, `{"success": true, "data": "text"}`, true, "unexpected response payload"},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeResponse[Completion](testEndpoint, "url", tt.status, []byte(tt.raw), true)

			assert.ErrorContains(t, err, tt.message)
			assert.Equal(t, tt.transport, IsTransportError(err))
			assert.Equal(t, !tt.transport, IsApiError(err))
		})
	}
}

func TestDecodeResponseKeepsRawBody(t *testing.T) {
	_, err := decodeResponse[Completion](testEndpoint, "url", 429, []byte(`{"message": "slow down"}`), true)

	var apiErr *ApiError

	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 429, apiErr.StatusCode)
	assert.Equal(t, "slow down", apiErr.Message)
	assert.Equal(t, `{"message": "slow down"}`, string(apiErr.Raw))
}

func TestDecodeResponseWithoutValidation(t *testing.T) {
	output, err := decodeResponse[Completion](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": {"prompt": "p"}}`), false)

	assert.Nil(t, err)
	assert.Equal(t, Completion{Prompt: "p"}, output)

	_, err = decodeResponse[Completion](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": {"prompt": 1}}`), false)

	assert.ErrorContains(t, err, "failed to decode response payload")
	assert.True(t, IsTransportError(err))
}

func TestDecodeOptionalFields(t *testing.T) {
	output, err := decodeResponse[CharacterCompletion](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": {"prompt": "p", "completion": "c"}}`), true)

	assert.Nil(t, err)
	assert.Nil(t, output.Model)

	image, err := decodeResponse[GeneratedImage](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": {}}`), true)

	assert.Nil(t, err)
	assert.False(t, image.Found())
}

func TestDecodeList(t *testing.T) {
	output, err := decodeResponse[[]MidjourneyImage](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": [{"url": "u", "prompt": "p"}]}`), true)

	assert.Nil(t, err)
	assert.Equal(t, []MidjourneyImage{{Url: "u", Prompt: "p"}}, output)

	_, err = decodeResponse[[]MidjourneyImage](testEndpoint, "url", 200,
		[]byte(`{"success": true, "data": [{"url": "u"}]}`), true)

	assert.ErrorContains(t, err, "data[0].prompt: missing required field")
}

func TestDecodeNullRequiredField(t *testing.T) {
	raw := []byte(`{"success": true, "data": {"question": "q", "answers": {"correct": "a", "incorrect": null}, "difficulty": "easy"}}`)

	_, err := decodeResponse[Trivia](testEndpoint, "url", 200, raw, true)

	assert.ErrorContains(t, err, "data.answers.incorrect: missing required field")
	assert.True(t, IsTransportError(err))

	output, err := decodeResponse[Trivia](testEndpoint, "url", 200, raw, false)

	assert.Nil(t, err)
	assert.Nil(t, output.Answers.Incorrect)
}
