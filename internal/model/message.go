package model

import "time"

// Message represents a forum post in a course discussion. CourseID is a weak
// reference used for lookup only; deleting a course does not delete its
// messages. SenderRole is a snapshot captured at send time.
type Message struct {
	ID         string
	CourseID   string
	SenderName string
	SenderRole Role
	Content    string // optional when an image is attached
	Image      []byte // optional attachment, at most MaxImageSize bytes
	SentAt     time.Time
}

// HasImage reports whether the message carries an image attachment
func (m Message) HasImage() bool {
	return len(m.Image) > 0
}
