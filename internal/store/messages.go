package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/redsea-eng/englib/internal/model"
)

// AddMessage appends a discussion post for a course. The sender's role is
// snapshotted into the message at send time. A message needs text or an
// image; the image may not exceed the attachment limit.
func (s *Store) AddMessage(courseID string, sender model.User, content string, image []byte) (model.Message, error) {
	if strings.TrimSpace(content) == "" && len(image) == 0 {
		return model.Message{}, ErrEmptyMessage
	}
	if int64(len(image)) > model.MaxImageSize {
		return model.Message{}, fmt.Errorf("attachment (%d bytes): %w", len(image), ErrOversizeImage)
	}

	message := model.Message{
		ID:         uuid.NewString(),
		CourseID:   courseID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Content:    content,
		Image:      image,
		SentAt:     time.Now(),
	}

	s.mu.Lock()
	messages := make([]model.Message, len(s.messages), len(s.messages)+1)
	copy(messages, s.messages)
	s.messages = append(messages, message)
	s.mu.Unlock()

	s.notify()
	return message, nil
}

// DeleteMessage removes a discussion post
func (s *Store) DeleteMessage(id string) error {
	s.mu.Lock()

	index := -1
	for i, m := range s.messages {
		if m.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete message %q: %w", id, ErrNotFound)
	}

	messages := make([]model.Message, 0, len(s.messages)-1)
	messages = append(messages, s.messages[:index]...)
	messages = append(messages, s.messages[index+1:]...)
	s.messages = messages
	s.mu.Unlock()

	s.notify()
	return nil
}

// MessagesFor returns the posts of one course discussion in send order.
// Pure query, no side effects.
func (s *Store) MessagesFor(courseID string) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var messages []model.Message
	for _, m := range s.messages {
		if m.CourseID == courseID {
			messages = append(messages, m)
		}
	}
	return messages
}
