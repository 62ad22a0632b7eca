package freejourney

import "context"

// ChatCompletion groups the chat completion endpoints.
type ChatCompletion struct {
	client *Client
}

type Completion struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

type CharacterCompletion struct {
	Prompt     string          `json:"prompt"`
	Completion string          `json:"completion"`
	Model      *CharacterModel `json:"model,omitempty"`
}

// CharacterModel describes the character who answered a prompt.
type CharacterModel struct {
	Id          string `json:"model_id"`
	Name        string `json:"model_name"`
	Description string `json:"model_description"`
}

type promptPayload struct {
	Prompt string `json:"prompt" structs:"prompt"`
}

type characterPayload struct {
	Prompt string `json:"prompt" structs:"prompt"`
	Model  string `json:"model" structs:"model"`
}

// ChatGPT4 creates a chat completion using the ChatGPT-4 model.
func (n *ChatCompletion) ChatGPT4(ctx context.Context, prompt string) (Completion, error) {
	return dispatch[Completion](ctx, n.client, OpChatGPT4, promptPayload{prompt})
}

// ChatGPT4_34k creates a chat completion using the ChatGPT-4 34k model.
func (n *ChatCompletion) ChatGPT4_34k(ctx context.Context, prompt string) (Completion, error) {
	return dispatch[Completion](ctx, n.client, OpChatGPT4_34k, promptPayload{prompt})
}

// ChatGPT35Turbo creates a chat completion using the ChatGPT-3.5 Turbo model.
func (n *ChatCompletion) ChatGPT35Turbo(ctx context.Context, prompt string) (Completion, error) {
	return dispatch[Completion](ctx, n.client, OpChatGPT35Turbo, promptPayload{prompt})
}

// ChatGPT35Turbo16k creates a chat completion using the ChatGPT-3.5 Turbo 16k
// model.
func (n *ChatCompletion) ChatGPT35Turbo16k(ctx context.Context, prompt string) (Completion, error) {
	return dispatch[Completion](ctx, n.client, OpChatGPT35Turbo16k, promptPayload{prompt})
}

// Gemini creates a chat completion using Google's Gemini model.
func (n *ChatCompletion) Gemini(ctx context.Context, prompt string) (Completion, error) {
	return dispatch[Completion](ctx, n.client, OpGemini, promptPayload{prompt})
}

// Character creates a chat completion answered in the voice of a character,
// identified by its model ID (e.g. "steve_harrington").
//
// Example usage:
//
//	resp, err := fj.ChatCompletion.Character(ctx, "steve_harrington", "Hey Steve! Who is Nancy?")
//
//	fmt.Println(resp.Completion, resp.Model.Name)
func (n *ChatCompletion) Character(ctx context.Context, model, prompt string) (CharacterCompletion, error) {
	return dispatch[CharacterCompletion](ctx, n.client, OpCharacter, characterPayload{Prompt: prompt, Model: model})
}
