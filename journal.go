package freejourney

import (
	"io"
	"sync"
	"time"

	"github.com/fatih/structs"
	"github.com/simonfrey/jsonl"
)

// JournalEntry is the record of one dispatched call.
type JournalEntry struct {
	Time       time.Time      `json:"time"`
	Operation  Operation      `json:"operation"`
	Method     string         `json:"method"`
	Url        string         `json:"url"`
	StatusCode int            `json:"status_code,omitempty"`
	DurationMs int64          `json:"duration_ms"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Journal appends one JSON line per call made by a client.
//
// It is safe for concurrent use, lines from concurrent calls are never
// interleaved.
type Journal struct {
	mu    sync.Mutex
	write func(any) error
}

// NewJournal creates a journal writing to w.
func NewJournal(w io.Writer) *Journal {
	lines := jsonl.NewWriter(w)

	return &Journal{
		write: lines.Write,
	}
}

// Record writes an entry to the journal.
func (j *Journal) Record(entry JournalEntry) error {
	if j == nil {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	return j.write(entry)
}

func journalPayload(body any) map[string]any {
	if body == nil || !structs.IsStruct(body) {
		return nil
	}

	return structs.Map(body)
}
