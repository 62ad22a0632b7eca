package freejourney

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// dispatch sends exactly one request for op and returns the payload of the
// response envelope, decoded into T.
//
// body is encoded as JSON when it is not nil. Nothing is retried.
func dispatch[T any](ctx context.Context, c *Client, op Operation, body any) (T, error) {
	ep, err := c.endpoints.endpoint(op)
	if err != nil {
		return *new(T), err
	}

	url := joinUrl(c.baseUrl, ep.Path)
	started := time.Now()

	status, raw, err := c.send(ctx, ep, url, body)
	if err != nil {
		c.record(ctx, ep, url, body, status, started, err)

		return *new(T), err
	}

	output, err := decodeResponse[T](ep, url, status, raw, c.validate)

	c.record(ctx, ep, url, body, status, started, err)

	return output, err
}

func (c *Client) send(ctx context.Context, ep Endpoint, url string, body any) (int, []byte, error) {
	var payload io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, newTransportError(ep, url, errors.Wrap(err, "could not encode request body"))
		}

		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, url, payload)
	if err != nil {
		return 0, nil, newTransportError(ep, url, err)
	}

	if ep.RequiresAuth {
		req.Header.Set(HeaderKey, c.token)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer().Do(req)
	if err != nil {
		return 0, nil, newTransportError(ep, url, err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, newTransportError(ep, url, errors.Wrap(err, "could not read response body"))
	}

	return resp.StatusCode, raw, nil
}

// record logs a finished call and writes it to the journal, if any. The token
// is never part of what is recorded.
func (c *Client) record(ctx context.Context, ep Endpoint, url string, body any, status int, started time.Time, err error) {
	elapsed := time.Since(started)

	attrs := []any{
		"operation", ep.Operation,
		"method", ep.Method,
		"url", url,
		"status", status,
		"duration", elapsed,
	}

	if err != nil {
		c.logger.DebugContext(ctx, "freejourney request failed", append(attrs, "error", err.Error())...)
	} else {
		c.logger.DebugContext(ctx, "freejourney request", attrs...)
	}

	if c.journal == nil {
		return
	}

	entry := JournalEntry{
		Time:       started.UTC(),
		Operation:  ep.Operation,
		Method:     ep.Method,
		Url:        url,
		StatusCode: status,
		DurationMs: elapsed.Milliseconds(),
		Success:    err == nil,
		Payload:    journalPayload(body),
	}

	if err != nil {
		entry.Error = err.Error()
	}

	if err := c.journal.Record(entry); err != nil {
		c.logger.WarnContext(ctx, "could not write journal entry", "operation", ep.Operation, "error", err.Error())
	}
}
