package freejourney

import (
	_ "embed"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Operation is the logical name of an API endpoint, as `GROUP.Name` in the
// endpoint table.
type Operation string

const (
	OpChatGPT4          Operation = "CHAT_COMPLETION.ChatGPT-4"
	OpChatGPT4_34k      Operation = "CHAT_COMPLETION.ChatGPT-4-34k"
	OpChatGPT35Turbo    Operation = "CHAT_COMPLETION.ChatGPT-3-5-Turbo"
	OpChatGPT35Turbo16k Operation = "CHAT_COMPLETION.ChatGPT-3-5-Turbo-16k"
	OpGemini            Operation = "CHAT_COMPLETION.Gemini"
	OpCharacter         Operation = "CHAT_COMPLETION.Characters"

	OpDadJoke    Operation = "FUN.DadJoke"
	OpTrivia     Operation = "FUN.Trivia"
	OpRandomFact Operation = "FUN.RandomFact"

	OpCatFact Operation = "ANIMALS.CatFact"
	OpDogFact Operation = "ANIMALS.DogFact"

	OpTextFilter Operation = "MODERATION.TextFilter"

	OpQRCode               Operation = "IMAGES.QRCode"
	OpRemoveBackground     Operation = "IMAGES.RemoveBackground"
	OpScrollOfTruth        Operation = "IMAGES.ScrollOfTruth"
	OpMinecraftAchievement Operation = "IMAGES.MinecraftAchievement"
	OpMinecraftChallenge   Operation = "IMAGES.MinecraftChallenge"
	OpCalling              Operation = "IMAGES.Calling"
	OpCaptcha              Operation = "IMAGES.Captcha"
	OpDidYouMean           Operation = "IMAGES.DidYouMean"
	OpFacts                Operation = "IMAGES.Facts"
	OpPornHubBrand         Operation = "IMAGES.PornHubBrand"
	OpMidjourney           Operation = "IMAGES.Midjourney"
	OpDALLE                Operation = "IMAGES.DALLE"
	OpStableDiffusion      Operation = "IMAGES.STABLE_DIFFUSION"
)

//go:embed endpoints.json
var defaultEndpoints []byte

// Endpoint describes how an operation is reached on the remote API.
type Endpoint struct {
	Operation Operation
	Method    string
	Path      string
	// Label names the operation in error messages, as in "<Label> failed: ...".
	Label string
	// RequiresAuth tells whether the API token is sent with the request.
	RequiresAuth bool
}

type descriptor struct {
	method string
	label  string
	// public operations are called without the API token.
	public bool
}

var descriptors = map[Operation]descriptor{
	OpChatGPT4:          {http.MethodPost, "ChatGPT-4 request", false},
	OpChatGPT4_34k:      {http.MethodPost, "ChatGPT-4 34k request", false},
	OpChatGPT35Turbo:    {http.MethodPost, "ChatGPT-3.5 Turbo request", false},
	OpChatGPT35Turbo16k: {http.MethodPost, "ChatGPT-3.5 Turbo 16k request", false},
	OpGemini:            {http.MethodPost, "Gemini request", false},
	OpCharacter:         {http.MethodPost, "Character model request", false},

	OpDadJoke:    {http.MethodGet, "Dad joke request", false},
	OpTrivia:     {http.MethodGet, "Trivia request", false},
	OpRandomFact: {http.MethodGet, "Random fact request", false},

	OpCatFact: {http.MethodGet, "Cat fact request", false},
	OpDogFact: {http.MethodGet, "Dog fact request", false},

	OpTextFilter: {http.MethodPost, "Text filtering request", false},

	OpQRCode:               {http.MethodPost, "QR code creation request", false},
	OpRemoveBackground:     {http.MethodPost, "Background removal request", false},
	OpScrollOfTruth:        {http.MethodPost, "Scroll of Truth creation request", false},
	OpMinecraftAchievement: {http.MethodPost, "Minecraft Achievement creation request", false},
	OpMinecraftChallenge:   {http.MethodPost, "Minecraft Challenge creation request", false},
	OpCalling:              {http.MethodPost, "Calling meme creation request", false},
	OpCaptcha:              {http.MethodPost, "Captcha meme creation request", false},
	OpDidYouMean:           {http.MethodPost, "Did you mean meme creation request", false},
	OpFacts:                {http.MethodPost, "Facts meme creation request", false},
	OpPornHubBrand:         {http.MethodPost, "PornHub Brand meme creation request", false},
	OpMidjourney:           {http.MethodPost, "Midjourney image search request", false},
	OpDALLE:                {http.MethodPost, "DALL-E image search request", false},
	OpStableDiffusion:      {http.MethodPost, "Stable Diffusion image search request", false},
}

// Operations lists every operation the client knows how to call.
func Operations() []Operation {
	return lo.Keys(descriptors)
}

// endpointTable is the parsed form of endpoints.json: the base URL and the
// path of each operation.
type endpointTable struct {
	base  string
	paths map[Operation]string
}

func parseEndpoints(data []byte) (endpointTable, error) {
	if !gjson.ValidBytes(data) {
		return endpointTable{}, errors.New("endpoint table is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	table := endpointTable{
		base:  root.Get("BASE").String(),
		paths: make(map[Operation]string),
	}

	root.ForEach(func(group, paths gjson.Result) bool {
		if !paths.IsObject() {
			return true
		}

		paths.ForEach(func(name, path gjson.Result) bool {
			table.paths[Operation(group.String()+"."+name.String())] = path.String()

			return true
		})

		return true
	})

	missing := lo.Filter(Operations(), func(op Operation, _ int) bool {
		_, ok := table.paths[op]
		return !ok
	})

	if len(missing) > 0 {
		return endpointTable{}, errors.Newf("endpoint table has no path for %v", missing)
	}

	return table, nil
}

func (t endpointTable) endpoint(op Operation) (Endpoint, error) {
	desc, ok := descriptors[op]
	if !ok {
		return Endpoint{}, errors.Newf("unknown operation '%s'", op)
	}

	path, ok := t.paths[op]
	if !ok {
		return Endpoint{}, errors.Newf("no path configured for operation '%s'", op)
	}

	return Endpoint{
		Operation:    op,
		Method:       desc.method,
		Path:         path,
		Label:        desc.label,
		RequiresAuth: !desc.public,
	}, nil
}

func joinUrl(base, path string) string {
	if base == "" {
		return path
	}
	if path == "" {
		return base
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
