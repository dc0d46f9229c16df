package portfolio

import (
	"context"
)

// timestampLayout matches the ISO 8601 form with milliseconds in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Messages returns all contact messages, newest first.
func (s *Store) Messages(ctx context.Context) []ContactMessage {
	return getItem(ctx, s, KeyMessages, defaultMessages)
}

// SaveMessage stores a new unread message in front of the existing ones.
func (s *Store) SaveMessage(ctx context.Context, draft MessageDraft) (ContactMessage, error) {
	msg := ContactMessage{
		ID:      s.newID(),
		Name:    draft.Name,
		Email:   draft.Email,
		Subject: draft.Subject,
		Message: draft.Message,
		Date:    s.now().UTC().Format(timestampLayout),
		Read:    false,
	}

	messages := append([]ContactMessage{msg}, s.Messages(ctx)...)

	return msg, s.setItem(ctx, KeyMessages, messages)
}

// UpdateMessage merges patch into the message with the given id. An unknown
// id leaves the collection unchanged.
func (s *Store) UpdateMessage(ctx context.Context, id string, patch MessagePatch) error {
	messages := s.Messages(ctx)

	for i := range messages {
		if messages[i].ID == id {
			patch.apply(&messages[i])
		}
	}

	return s.setItem(ctx, KeyMessages, messages)
}

// DeleteMessage removes the message with the given id.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	messages := s.Messages(ctx)
	kept := messages[:0]

	for _, m := range messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}

	return s.setItem(ctx, KeyMessages, kept)
}
