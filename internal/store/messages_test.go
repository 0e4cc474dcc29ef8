package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsea-eng/englib/internal/model"
)

func TestAddMessage(t *testing.T) {
	s := New()
	sender := model.User{ID: "2", Username: "s1", Name: "Student One", Role: model.RoleStudent}

	m, err := s.AddMessage("course-1", sender, "hello", nil)
	require.NoError(t, err)

	assert.Equal(t, "course-1", m.CourseID)
	assert.Equal(t, "Student One", m.SenderName)
	assert.Equal(t, model.RoleStudent, m.SenderRole, "sender role is snapshotted at send time")
	assert.False(t, m.SentAt.IsZero())

	posts := s.MessagesFor("course-1")
	require.Len(t, posts, 1)
	assert.Empty(t, s.MessagesFor("course-2"))
}

func TestAddMessage_RoleSnapshotIsNotLive(t *testing.T) {
	s := New()
	sender := model.User{ID: "2", Username: "s1", Name: "Student One", Role: model.RoleStudent}

	m, err := s.AddMessage("course-1", sender, "hello", nil)
	require.NoError(t, err)

	// Promoting the sender afterwards must not rewrite history.
	sender.Role = model.RoleAdmin
	posts := s.MessagesFor("course-1")
	require.Len(t, posts, 1)
	assert.Equal(t, model.RoleStudent, posts[0].SenderRole)
	assert.Equal(t, m.ID, posts[0].ID)
}

func TestAddMessage_Validation(t *testing.T) {
	s := New()
	sender := model.User{ID: "2", Name: "Student One", Role: model.RoleStudent}

	_, err := s.AddMessage("course-1", sender, "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)

	oversize := make([]byte, model.MaxImageSize+1)
	_, err = s.AddMessage("course-1", sender, "", oversize)
	assert.ErrorIs(t, err, ErrOversizeImage)

	// Image-only posts are fine within the limit.
	_, err = s.AddMessage("course-1", sender, "", []byte{0xFF, 0xD8})
	assert.NoError(t, err)
}

func TestDeleteMessage(t *testing.T) {
	s := New()
	sender := model.User{ID: "2", Name: "Student One", Role: model.RoleStudent}

	m1, err := s.AddMessage("course-1", sender, "first", nil)
	require.NoError(t, err)
	m2, err := s.AddMessage("course-1", sender, "second", nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteMessage(m1.ID))

	posts := s.MessagesFor("course-1")
	require.Len(t, posts, 1)
	assert.Equal(t, m2.ID, posts[0].ID)

	err = s.DeleteMessage(m1.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessages_SurviveCourseDeletion(t *testing.T) {
	// CourseID is a weak reference: dropping the course does not cascade
	// into the forum history.
	s := New()
	c, err := s.AddCourse("X", model.DepartmentCivil, 1, "zero")
	require.NoError(t, err)

	sender := model.User{ID: "2", Name: "Student One", Role: model.RoleStudent}
	_, err = s.AddMessage(c.ID, sender, "hello", nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCourse(c.ID))
	assert.Len(t, s.MessagesFor(c.ID), 1)
}
