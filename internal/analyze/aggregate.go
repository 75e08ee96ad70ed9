package analyze

import "github.com/bfranks/chatstat/internal/chatline"

// NewCounter creates an empty aggregation state.
func NewCounter() *Counter {
	return &Counter{}
}

// Add folds one classified record into the counter. Appends preserve
// record-arrival order.
func (c *Counter) Add(rec *chatline.Record) {
	switch rec.Type {
	case chatline.LineChat:
		c.ChatCount++
	case chatline.LineEvent:
		c.EventCount++
	}
	if rec.IsDeletedChat {
		c.DeletedChatCount++
	}
	if rec.IsAttachment {
		c.AttachmentCount++
	}

	if rec.Sender != "" {
		c.Senders = append(c.Senders, rec.Sender)
		if rec.IsAttachment {
			c.AttachmentSenders = append(c.AttachmentSenders, rec.Sender)
		}
		for _, e := range rec.Emojis {
			c.SenderEmojis = append(c.SenderEmojis, Pair{First: rec.Sender, Second: e})
		}
		for _, w := range rec.Words {
			c.SenderWords = append(c.SenderWords, Pair{First: rec.Sender, Second: w})
		}
	}

	if rec.Timestamp != nil {
		c.Timestamps = append(c.Timestamps, *rec.Timestamp)
	}

	c.Words = append(c.Words, rec.Words...)
	c.Emojis = append(c.Emojis, rec.Emojis...)
	c.Domains = append(c.Domains, rec.Domains...)
}
