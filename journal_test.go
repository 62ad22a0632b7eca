package freejourney

import (
	"bufio"
	"bytes"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func journalLines(t *testing.T, buf *bytes.Buffer) []gjson.Result {
	t.Helper()

	lines := make([]gjson.Result, 0)
	scanner := bufio.NewScanner(strings.NewReader(buf.String()))

	for scanner.Scan() {
		assert.True(t, gjson.Valid(scanner.Text()))

		lines = append(lines, gjson.Parse(scanner.Text()))
	}

	return lines
}

func TestJournal(t *testing.T) {
	defer gock.Off()

	var buf bytes.Buffer

	fj := newTestClient(t, WithJournal(&buf))

	mockEndpoint(t, fj, OpTextFilter).
		Reply(http.StatusOK).
		BodyString(envelope(`{"text": "what the heck", "result": "what the ****"}`))

	mockEndpoint(t, fj, OpDadJoke).
		ReplyError(errors.New("connection refused"))

	_, err := fj.Moderation.FilterText(testContext(t), "what the heck", "")
	assert.Nil(t, err)

	_, err = fj.Fun.DadJoke(testContext(t))
	assert.NotNil(t, err)

	lines := journalLines(t, &buf)

	assert.Len(t, lines, 2)

	assert.Equal(t, string(OpTextFilter), lines[0].Get("operation").String())
	assert.Equal(t, http.MethodPost, lines[0].Get("method").String())
	assert.Equal(t, "https://api.freejourney.xyz/v1/moderation/text-filter", lines[0].Get("url").String())
	assert.EqualValues(t, 200, lines[0].Get("status_code").Int())
	assert.True(t, lines[0].Get("success").Bool())
	assert.False(t, lines[0].Get("error").Exists())
	assert.Equal(t, "what the heck", lines[0].Get("payload.text").String())
	assert.Equal(t, "*", lines[0].Get("payload.fill").String())
	assert.True(t, lines[0].Get("time").Exists())

	assert.Equal(t, string(OpDadJoke), lines[1].Get("operation").String())
	assert.Equal(t, http.MethodGet, lines[1].Get("method").String())
	assert.False(t, lines[1].Get("success").Bool())
	assert.False(t, lines[1].Get("status_code").Exists())
	assert.False(t, lines[1].Get("payload").Exists())
	assert.Contains(t, lines[1].Get("error").String(), "connection refused")

	assert.NotContains(t, buf.String(), "thetoken")
}

func TestJournalConcurrentWrites(t *testing.T) {
	var (
		buf bytes.Buffer
		wg  sync.WaitGroup
	)

	journal := NewJournal(&buf)

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := journal.Record(JournalEntry{
				Operation: OpCatFact,
				Method:    http.MethodGet,
				Payload:   map[string]any{"text": strings.Repeat("a", 512)},
			})

			assert.Nil(t, err)
		}()
	}

	wg.Wait()

	assert.Len(t, journalLines(t, &buf), 50)
}

func TestNilJournal(t *testing.T) {
	var journal *Journal

	assert.Nil(t, journal.Record(JournalEntry{}))
}
