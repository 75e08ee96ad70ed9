// Package chatline classifies raw lines of an exported chat transcript
// into structured records: chat messages, group events, continuations
// and unparseable text.
package chatline

import "time"

// LineType is the classification of a single transcript line.
type LineType int

const (
	// LineOther is text that is neither a message nor a group event,
	// typically noise at the top of an export.
	LineOther LineType = iota
	// LineChat is a message sent by a named member.
	LineChat
	// LineEvent is a group notification (member added, subject changed,
	// encryption notice and so on).
	LineEvent
)

func (t LineType) String() string {
	switch t {
	case LineChat:
		return "Chat"
	case LineEvent:
		return "Event"
	default:
		return "Other"
	}
}

// Record is one classified transcript line. Continuation lines inherit
// the sender and timestamp of the previous chat record.
type Record struct {
	Type          LineType
	Timestamp     *time.Time
	Sender        string
	Body          string
	IsDeletedChat bool
	IsAttachment  bool

	// Token sequences extracted from the message body, in order of
	// appearance. Empty for events, deleted chats and attachments.
	Words   []string
	Emojis  []string
	Domains []string
}
