package freejourney

import "context"

// Fun groups the endpoints returning jokes, trivia and facts.
type Fun struct {
	client *Client
}

// Animals groups the endpoints returning animal facts.
type Animals struct {
	client *Client
}

type DadJoke struct {
	Joke string `json:"joke"`
}

type Trivia struct {
	Question   string        `json:"question"`
	Answers    TriviaAnswers `json:"answers"`
	Difficulty string        `json:"difficulty"`
}

type TriviaAnswers struct {
	Correct   string   `json:"correct"`
	Incorrect []string `json:"incorrect"`
}

// Choices returns all possible answers, the correct one first.
func (a TriviaAnswers) Choices() []string {
	return append([]string{a.Correct}, a.Incorrect...)
}

type Fact struct {
	Fact string `json:"fact"`
}

// DadJoke returns a random "Dad joke".
func (n *Fun) DadJoke(ctx context.Context) (DadJoke, error) {
	return dispatch[DadJoke](ctx, n.client, OpDadJoke, nil)
}

// Trivia returns a random trivia question, with its answers and difficulty.
func (n *Fun) Trivia(ctx context.Context) (Trivia, error) {
	return dispatch[Trivia](ctx, n.client, OpTrivia, nil)
}

func (n *Fun) RandomFact(ctx context.Context) (Fact, error) {
	return dispatch[Fact](ctx, n.client, OpRandomFact, nil)
}

func (n *Animals) CatFact(ctx context.Context) (Fact, error) {
	return dispatch[Fact](ctx, n.client, OpCatFact, nil)
}

func (n *Animals) DogFact(ctx context.Context) (Fact, error) {
	return dispatch[Fact](ctx, n.client, OpDogFact, nil)
}
