package chatline

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/forPelevin/gomoji"
	"mvdan.cc/xurls/v2"
)

// Timestamp prefixes produced by the two export dialects:
//
//	android: "2/3/20, 19:15 - Alice: hello"
//	ios:     "[2/3/20, 19:15:30] Alice: hello"
//
// Minutes are always two digits; seconds and an AM/PM marker are optional.
var (
	androidPrefix = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4}), (\d{1,2}):(\d{2})(?::(\d{2}))? ?([AaPp][Mm])? - (.*)$`)
	iosPrefix     = regexp.MustCompile(`^\[(\d{1,2})/(\d{1,2})/(\d{2,4}), (\d{1,2}):(\d{2})(?::(\d{2}))? ?([AaPp][Mm])?\] (.*)$`)

	urlPattern = xurls.Relaxed()
)

var deletedMarkers = []string{
	"This message was deleted",
	"You deleted this message",
}

var attachmentMarkers = []string{
	"<Media omitted>",
	"(file attached)",
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"GIF omitted",
	"document omitted",
	"Contact card omitted",
}

// Parse classifies a single raw line. prev is the previously parsed
// record (nil for the first line); a line without a timestamp prefix is
// treated as a continuation of prev when prev is a chat message.
// The parsed record is reported to logger before being returned.
func Parse(raw string, prev *Record, logger Logger) *Record {
	line := normalize(raw)

	rec := classify(line, prev)
	logger.LogRecord(raw, rec)
	return rec
}

func classify(line string, prev *Record) *Record {
	ts, rest, ok := splitTimestamp(line)
	if !ok {
		// Continuation of a multi-line message keeps the sender and
		// timestamp of the message it belongs to.
		if prev != nil && prev.Type == LineChat {
			rec := &Record{
				Type:      LineChat,
				Timestamp: prev.Timestamp,
				Sender:    prev.Sender,
				Body:      line,
			}
			extractTokens(rec)
			return rec
		}
		return &Record{Type: LineOther, Body: line}
	}

	sender, body, isChat := splitSender(rest)
	if !isChat {
		return &Record{Type: LineEvent, Timestamp: &ts, Body: rest}
	}

	rec := &Record{
		Type:      LineChat,
		Timestamp: &ts,
		Sender:    sender,
		Body:      body,
	}

	for _, m := range deletedMarkers {
		if body == m {
			rec.IsDeletedChat = true
			return rec
		}
	}
	for _, m := range attachmentMarkers {
		if strings.Contains(body, m) {
			rec.IsAttachment = true
			return rec
		}
	}

	extractTokens(rec)
	return rec
}

// normalize strips the UTF-8 BOM, trailing newline characters and the
// narrow no-break spaces some exports place before AM/PM markers.
func normalize(raw string) string {
	s := strings.TrimPrefix(raw, "\ufeff")
	s = strings.TrimRight(s, "\r\n")
	s = strings.ReplaceAll(s, "\u202f", " ")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return s
}

func splitTimestamp(line string) (time.Time, string, bool) {
	for _, re := range []*regexp.Regexp{androidPrefix, iosPrefix} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, ok := buildTime(m[1], m[2], m[3], m[4], m[5], m[6], m[7])
		if !ok {
			continue
		}
		return ts, m[8], true
	}
	return time.Time{}, "", false
}

// buildTime assembles a naive timestamp from matched components.
// Dates are day-first, the dominant ordering in chat exports; two-digit
// years are taken as 2000-based.
func buildTime(dayStr, monthStr, yearStr, hourStr, minStr, secStr, ampm string) (time.Time, bool) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	year, _ := strconv.Atoi(yearStr)
	hour, _ := strconv.Atoi(hourStr)
	min, _ := strconv.Atoi(minStr)
	sec := 0
	if secStr != "" {
		sec, _ = strconv.Atoi(secStr)
	}

	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	switch strings.ToUpper(ampm) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || min > 59 || sec > 59 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), true
}

// splitSender separates "Sender: message". A timestamped line without
// the sender prefix is a group event.
func splitSender(rest string) (sender, body string, ok bool) {
	idx := strings.Index(rest, ": ")
	if idx <= 0 {
		return "", "", false
	}
	return rest[:idx], rest[idx+2:], true
}

func extractTokens(rec *Record) {
	body := rec.Body

	urls := urlPattern.FindAllString(body, -1)
	for _, u := range urls {
		if d := domainOf(u); d != "" {
			rec.Domains = append(rec.Domains, d)
		}
		body = strings.Replace(body, u, " ", 1)
	}

	rec.Words = strings.Fields(body)

	rec.Emojis = emojiOccurrences(rec.Body, gomoji.FindAll(rec.Body))
}

// emojiOccurrences expands the distinct emojis detected in body into
// one element per occurrence. Longer sequences are counted first and
// blanked out of the body, so a base emoji next to its skin-tone or
// ZWJ-joined variant is not counted inside the longer sequence too.
func emojiOccurrences(body string, found []gomoji.Emoji) []string {
	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i].Character) > len(found[j].Character)
	})

	var out []string
	for _, e := range found {
		n := strings.Count(body, e.Character)
		for i := 0; i < n; i++ {
			out = append(out, e.Character)
		}
		if n > 0 {
			body = strings.ReplaceAll(body, e.Character, "\x00")
		}
	}
	return out
}

// domainOf reduces a detected URL to its lower-cased host without a
// leading "www.".
func domainOf(raw string) string {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
