package freejourney

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/checkmarble/freejourney-go/sink"
	"github.com/cockroachdb/errors"
)

// Images groups the image creation, editing and search endpoints.
type Images struct {
	client *Client
}

// Image is a base64-encoded image, as returned by the image creation
// endpoints.
type Image struct {
	Base64 string `json:"base64"`
}

// Decode returns the raw image bytes.
func (i Image) Decode() ([]byte, error) {
	return decodeImage(i.Base64)
}

// SaveTo decodes the image and stores it in s under the given name. It returns
// the location reported by the sink.
func (i Image) SaveTo(ctx context.Context, s sink.Sink, name string) (string, error) {
	return saveImage(ctx, s, name, i.Base64)
}

// GeneratedImage is the result of an image generation search. Base64 is empty
// when the server found no matching image.
type GeneratedImage struct {
	Base64 string `json:"base64,omitempty"`
}

func (i GeneratedImage) Found() bool {
	return i.Base64 != ""
}

func (i GeneratedImage) Decode() ([]byte, error) {
	if !i.Found() {
		return nil, errors.New("no image was found")
	}

	return decodeImage(i.Base64)
}

func (i GeneratedImage) SaveTo(ctx context.Context, s sink.Sink, name string) (string, error) {
	if !i.Found() {
		return "", errors.New("no image was found")
	}

	return saveImage(ctx, s, name, i.Base64)
}

type MidjourneyImage struct {
	Url    string `json:"url"`
	Prompt string `json:"prompt"`
}

// ImageCount is the number of images requested from an image generation
// search. The server only supports one or four.
type ImageCount int

const (
	OneImage   ImageCount = 1
	FourImages ImageCount = 4
)

func (n ImageCount) resolve(op Operation) (ImageCount, error) {
	switch n {
	case 0:
		return OneImage, nil
	case OneImage, FourImages:
		return n, nil
	default:
		return 0, argumentError(op, ErrInvalidImageCount, "number %d", int(n))
	}
}

type textPayload struct {
	Text string `json:"text" structs:"text"`
}

type didYouMeanPayload struct {
	Text       string `json:"text" structs:"text"`
	TextBottom string `json:"text_bottom" structs:"text_bottom"`
}

type pornHubPayload struct {
	Text      string `json:"text" structs:"text"`
	TextRight string `json:"text_right" structs:"text_right"`
}

type queryPayload struct {
	Query string `json:"query" structs:"query"`
}

type searchPayload struct {
	Query  string     `json:"query" structs:"query"`
	Number ImageCount `json:"number" structs:"number"`
}

// CreateQRCode creates a QR code encoding the given text.
func (n *Images) CreateQRCode(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpQRCode, textPayload{text})
}

// RemoveBackground removes the background of the image found at imageUrl.
func (n *Images) RemoveBackground(ctx context.Context, imageUrl string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpRemoveBackground, textPayload{imageUrl})
}

func (n *Images) CreateScrollOfTruth(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpScrollOfTruth, textPayload{text})
}

func (n *Images) CreateMinecraftAchievement(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpMinecraftAchievement, textPayload{text})
}

func (n *Images) CreateMinecraftChallenge(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpMinecraftChallenge, textPayload{text})
}

func (n *Images) CreateCallingMeme(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpCalling, textPayload{text})
}

func (n *Images) CreateCaptchaMeme(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpCaptcha, textPayload{text})
}

// CreateDidYouMeanMeme creates a "did you mean" search meme, text being the
// query and textBottom the suggestion.
func (n *Images) CreateDidYouMeanMeme(ctx context.Context, text, textBottom string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpDidYouMean, didYouMeanPayload{Text: text, TextBottom: textBottom})
}

func (n *Images) CreateFactsMeme(ctx context.Context, text string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpFacts, textPayload{text})
}

func (n *Images) CreatePornHubBrandMeme(ctx context.Context, text, textRight string) (Image, error) {
	return dispatch[Image](ctx, n.client, OpPornHubBrand, pornHubPayload{Text: text, TextRight: textRight})
}

// SearchMidjourneyImages looks up images previously generated by Midjourney
// matching the query.
func (n *Images) SearchMidjourneyImages(ctx context.Context, query string) ([]MidjourneyImage, error) {
	return dispatch[[]MidjourneyImage](ctx, n.client, OpMidjourney, queryPayload{query})
}

// SearchDALLEImages looks up images generated by DALL-E matching the query.
// number must be OneImage or FourImages, zero meaning OneImage.
func (n *Images) SearchDALLEImages(ctx context.Context, query string, number ImageCount) (GeneratedImage, error) {
	return n.searchGenerated(ctx, OpDALLE, query, number)
}

// SearchStableDiffusionImages looks up images generated by Stable Diffusion
// matching the query. number must be OneImage or FourImages, zero meaning
// OneImage.
func (n *Images) SearchStableDiffusionImages(ctx context.Context, query string, number ImageCount) (GeneratedImage, error) {
	return n.searchGenerated(ctx, OpStableDiffusion, query, number)
}

func (n *Images) searchGenerated(ctx context.Context, op Operation, query string, number ImageCount) (GeneratedImage, error) {
	number, err := number.resolve(op)
	if err != nil {
		return GeneratedImage{}, err
	}

	return dispatch[GeneratedImage](ctx, n.client, op, searchPayload{Query: query, Number: number})
}

func decodeImage(encoded string) ([]byte, error) {
	if strings.HasPrefix(encoded, "data:") {
		_, after, ok := strings.Cut(encoded, ",")
		if !ok {
			return nil, errors.New("malformed data URL")
		}

		encoded = after
	}

	encoded = strings.TrimSpace(encoded)

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		if raw, rawErr := base64.RawStdEncoding.DecodeString(encoded); rawErr == nil {
			return raw, nil
		}

		return nil, errors.Wrap(err, "image is not valid base64")
	}

	return data, nil
}

func saveImage(ctx context.Context, s sink.Sink, name, encoded string) (string, error) {
	data, err := decodeImage(encoded)
	if err != nil {
		return "", err
	}

	location, err := s.Put(ctx, name, data)
	if err != nil {
		return "", errors.Wrapf(err, "could not save image '%s'", name)
	}

	return location, nil
}
