package chatline

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/forPelevin/gomoji"
)

func parse(t *testing.T, line string, prev *Record) *Record {
	t.Helper()
	return Parse(line, prev, NopLogger{})
}

func TestParse_AndroidChatLine(t *testing.T) {
	rec := parse(t, "2/3/20, 19:15 - Alice: hello world", nil)

	if rec.Type != LineChat {
		t.Fatalf("Type = %v, want Chat", rec.Type)
	}
	if rec.Sender != "Alice" {
		t.Errorf("Sender = %q, want Alice", rec.Sender)
	}
	want := time.Date(2020, time.March, 2, 19, 15, 0, 0, time.UTC)
	if rec.Timestamp == nil || !rec.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, want)
	}
	if len(rec.Words) != 2 || rec.Words[0] != "hello" || rec.Words[1] != "world" {
		t.Errorf("Words = %v, want [hello world]", rec.Words)
	}
}

func TestParse_IOSChatLine(t *testing.T) {
	rec := parse(t, "[2/3/20, 19:15:30] Bob: hi", nil)

	if rec.Type != LineChat {
		t.Fatalf("Type = %v, want Chat", rec.Type)
	}
	if rec.Sender != "Bob" {
		t.Errorf("Sender = %q, want Bob", rec.Sender)
	}
	if rec.Timestamp == nil || rec.Timestamp.Second() != 30 {
		t.Errorf("Timestamp = %v, want seconds=30", rec.Timestamp)
	}
}

func TestParse_TwelveHourClock(t *testing.T) {
	tests := []struct {
		line     string
		wantHour int
	}{
		{"2/3/20, 7:15 PM - Alice: evening", 19},
		{"2/3/20, 7:15 AM - Alice: morning", 7},
		{"2/3/20, 12:15 AM - Alice: midnight", 0},
		{"2/3/20, 12:15 PM - Alice: noon", 12},
	}
	for _, tt := range tests {
		rec := parse(t, tt.line, nil)
		if rec.Type != LineChat || rec.Timestamp == nil {
			t.Fatalf("%q: not parsed as chat", tt.line)
		}
		if rec.Timestamp.Hour() != tt.wantHour {
			t.Errorf("%q: hour = %d, want %d", tt.line, rec.Timestamp.Hour(), tt.wantHour)
		}
	}
}

func TestParse_NarrowNoBreakSpaceBeforeAMPM(t *testing.T) {
	rec := parse(t, "2/3/20, 7:15\u202fPM - Alice: hi", nil)
	if rec.Type != LineChat {
		t.Fatalf("Type = %v, want Chat", rec.Type)
	}
	if rec.Timestamp.Hour() != 19 {
		t.Errorf("hour = %d, want 19", rec.Timestamp.Hour())
	}
}

func TestParse_EventLine(t *testing.T) {
	rec := parse(t, "2/3/20, 19:15 - Alice added Bob", nil)

	if rec.Type != LineEvent {
		t.Errorf("Type = %v, want Event", rec.Type)
	}
	if rec.Sender != "" {
		t.Errorf("Sender = %q, want empty", rec.Sender)
	}
	if rec.Timestamp == nil {
		t.Error("Timestamp = nil, want set")
	}
}

func TestParse_DeletedMessage(t *testing.T) {
	rec := parse(t, "2/3/20, 19:15 - Alice: This message was deleted", nil)

	if !rec.IsDeletedChat {
		t.Error("IsDeletedChat = false, want true")
	}
	if len(rec.Words) != 0 {
		t.Errorf("Words = %v, want none for a deleted message", rec.Words)
	}
}

func TestParse_Attachment(t *testing.T) {
	tests := []string{
		"2/3/20, 19:15 - Alice: <Media omitted>",
		"2/3/20, 19:15 - Alice: IMG-0001.jpg (file attached)",
		"[2/3/20, 19:15:30] Alice: image omitted",
	}
	for _, line := range tests {
		rec := parse(t, line, nil)
		if !rec.IsAttachment {
			t.Errorf("%q: IsAttachment = false, want true", line)
		}
		if len(rec.Words) != 0 {
			t.Errorf("%q: Words = %v, want none for an attachment", line, rec.Words)
		}
	}
}

func TestParse_Continuation(t *testing.T) {
	prev := parse(t, "2/3/20, 19:15 - Alice: first line", nil)
	rec := parse(t, "second line", prev)

	if rec.Type != LineChat {
		t.Fatalf("Type = %v, want Chat", rec.Type)
	}
	if rec.Sender != "Alice" {
		t.Errorf("Sender = %q, want Alice (inherited)", rec.Sender)
	}
	if rec.Timestamp == nil || !rec.Timestamp.Equal(*prev.Timestamp) {
		t.Errorf("Timestamp = %v, want %v (inherited)", rec.Timestamp, prev.Timestamp)
	}
	if len(rec.Words) != 2 {
		t.Errorf("Words = %v, want [second line]", rec.Words)
	}
}

func TestParse_ContinuationWithoutPreviousChat(t *testing.T) {
	rec := parse(t, "stray text", nil)
	if rec.Type != LineOther {
		t.Errorf("Type = %v, want Other", rec.Type)
	}

	prevEvent := parse(t, "2/3/20, 19:15 - Alice added Bob", nil)
	rec = parse(t, "stray text", prevEvent)
	if rec.Type != LineOther {
		t.Errorf("after event: Type = %v, want Other", rec.Type)
	}
}

func TestParse_DomainExtraction(t *testing.T) {
	rec := parse(t, "2/3/20, 19:15 - Alice: see https://www.example.com/page and golang.org/doc", nil)

	if len(rec.Domains) != 2 {
		t.Fatalf("Domains = %v, want 2 entries", rec.Domains)
	}
	if rec.Domains[0] != "example.com" {
		t.Errorf("Domains[0] = %q, want example.com (www stripped)", rec.Domains[0])
	}
	if rec.Domains[1] != "golang.org" {
		t.Errorf("Domains[1] = %q, want golang.org", rec.Domains[1])
	}
	for _, w := range rec.Words {
		if strings.Contains(w, "example.com") {
			t.Errorf("URL leaked into words: %v", rec.Words)
		}
	}
}

func TestParse_EmojiExtraction(t *testing.T) {
	rec := parse(t, "2/3/20, 19:15 - Alice: nice 😀😀 great 🎉", nil)

	counts := map[string]int{}
	for _, e := range rec.Emojis {
		counts[e]++
	}
	if counts["😀"] != 2 {
		t.Errorf("😀 count = %d, want 2 (occurrences, not unique)", counts["😀"])
	}
	if counts["🎉"] != 1 {
		t.Errorf("🎉 count = %d, want 1", counts["🎉"])
	}
}

func TestEmojiOccurrences_VariantNotDoubleCounted(t *testing.T) {
	// 👍🏻 contains 👍 as a prefix; the base emoji must only count its
	// own standalone occurrence.
	body := "ok 👍🏻 and 👍"
	found := []gomoji.Emoji{
		{Character: "👍"},
		{Character: "👍🏻"},
	}

	counts := map[string]int{}
	for _, e := range emojiOccurrences(body, found) {
		counts[e]++
	}
	if counts["👍🏻"] != 1 {
		t.Errorf("👍🏻 count = %d, want 1", counts["👍🏻"])
	}
	if counts["👍"] != 1 {
		t.Errorf("👍 count = %d, want 1 (not re-counted inside 👍🏻)", counts["👍"])
	}
}

func TestParse_BOMStripped(t *testing.T) {
	rec := parse(t, "\ufeff2/3/20, 19:15 - Alice: hi", nil)
	if rec.Type != LineChat {
		t.Errorf("Type = %v, want Chat after BOM strip", rec.Type)
	}
}

func TestWriterLogger_JSONL(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)

	Parse("2/3/20, 19:15 - Alice: hello", nil, logger)

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Error("log entry missing trailing newline")
	}
	if !strings.Contains(out, `"type":"Chat"`) {
		t.Errorf("log entry missing type: %s", out)
	}
	if !strings.Contains(out, `"sender":"Alice"`) {
		t.Errorf("log entry missing sender: %s", out)
	}
}
