package chatline

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger receives every parsed record for debug inspection.
type Logger interface {
	// LogRecord logs one raw line together with its classification.
	LogRecord(raw string, rec *Record)
}

// NopLogger discards all log output. This is the default when debug
// mode is not enabled, and has zero allocation overhead.
type NopLogger struct{}

// LogRecord is a no-op.
func (NopLogger) LogRecord(string, *Record) {}

// logEntry is the JSON structure written by WriterLogger.
type logEntry struct {
	Timestamp string   `json:"ts,omitempty"`
	Type      string   `json:"type"`
	Sender    string   `json:"sender,omitempty"`
	Raw       string   `json:"raw"`
	Deleted   bool     `json:"deleted,omitempty"`
	Attached  bool     `json:"attachment,omitempty"`
	Words     []string `json:"words,omitempty"`
	Emojis    []string `json:"emojis,omitempty"`
	Domains   []string `json:"domains,omitempty"`
}

// WriterLogger writes one JSON object per parsed record to an
// io.Writer (JSONL format). Safe for concurrent use.
type WriterLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriterLogger creates a WriterLogger that writes to w.
func NewWriterLogger(w io.Writer) *WriterLogger {
	return &WriterLogger{w: w}
}

// LogRecord writes a JSON line describing the parsed record.
// Serialisation errors are silently dropped to avoid disrupting the parse.
func (l *WriterLogger) LogRecord(raw string, rec *Record) {
	entry := logEntry{
		Type:     rec.Type.String(),
		Sender:   rec.Sender,
		Raw:      raw,
		Deleted:  rec.IsDeletedChat,
		Attached: rec.IsAttachment,
		Words:    rec.Words,
		Emojis:   rec.Emojis,
		Domains:  rec.Domains,
	}
	if rec.Timestamp != nil {
		entry.Timestamp = rec.Timestamp.Format(time.RFC3339)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s\n", data)
}
