package freejourney

import (
	"encoding/json"

	"github.com/checkmarble/freejourney-go/internal/schema"
	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// decodeResponse unwraps the `{success, data, message}` envelope.
//
// The payload is only trusted when the status is 2xx and `success` is true.
// Anything else from the server is an *ApiError, and a body that is not an
// envelope, or whose payload does not have the shape of T, is a
// *TransportError.
func decodeResponse[T any](ep Endpoint, url string, status int, raw []byte, validate bool) (T, error) {
	statusOk := status >= 200 && status < 300

	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		if !statusOk {
			return *new(T), newApiError(ep, status, "", raw)
		}

		return *new(T), newTransportError(ep, url, errors.New("response is not a JSON envelope"))
	}

	envelope := gjson.ParseBytes(raw)
	message := envelope.Get("message").String()

	if !statusOk {
		return *new(T), newApiError(ep, status, message, raw)
	}
	if !envelope.Get("success").Bool() {
		if message == "" {
			message = "server did not report success"
		}

		return *new(T), newApiError(ep, status, message, raw)
	}

	data := envelope.Get("data")

	if !data.Exists() || data.Type == gjson.Null {
		return *new(T), newTransportError(ep, url, errors.New("response envelope has no data"))
	}

	if validate {
		if err := schema.Validate(schema.For[T](), []byte(data.Raw)); err != nil {
			return *new(T), newTransportError(ep, url, errors.Wrap(err, "unexpected response payload"))
		}
	}

	output := new(T)

	if err := json.Unmarshal([]byte(data.Raw), output); err != nil {
		return *new(T), newTransportError(ep, url, errors.Wrap(err, "failed to decode response payload"))
	}

	return *output, nil
}
