package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/NovaQuest/internal/models"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSessionState()
	assert.Equal(t, models.PhaseIdle, s.Snapshot().Phase())

	seq := s.Begin(models.Query{Text: "Mars", Mode: models.ModeImageSearch})
	assert.True(t, s.IsLoading())
	assert.Equal(t, models.PhaseLoading, s.Snapshot().Phase())

	res := models.NewImageCollection(nil)
	assert.True(t, s.Complete(seq, res, nil))
	assert.False(t, s.IsLoading())
	assert.Same(t, res, s.Result())
	assert.Nil(t, s.LastError())
	assert.Equal(t, models.PhaseSuccess, s.Snapshot().Phase())
}

func TestFailureKeepsPreviousResult(t *testing.T) {
	s := NewSessionState()
	first := models.NewTextAnswer("ok", models.ModePlanetaryData)
	s.Complete(s.Begin(models.Query{Text: "a"}), first, nil)

	seq := s.Begin(models.Query{Text: "b"})
	assert.Nil(t, s.LastError())
	failure := &FetchFailure{Message: MsgAIQueryFailed, Err: errors.New("boom")}
	assert.True(t, s.Complete(seq, nil, failure))

	assert.Same(t, first, s.Result())
	assert.Equal(t, failure, s.LastError())
	assert.Equal(t, models.PhaseError, s.Snapshot().Phase())

	// the next submission clears the error
	s.Begin(models.Query{Text: "c"})
	assert.Nil(t, s.LastError())
}

func TestStaleCompletionDiscarded(t *testing.T) {
	s := NewSessionState()
	older := s.Begin(models.Query{Text: "slow"})
	newer := s.Begin(models.Query{Text: "fast"})

	fast := models.NewTextAnswer("fast", models.ModePlanetaryData)
	assert.True(t, s.Complete(newer, fast, nil))

	slow := models.NewTextAnswer("slow", models.ModePlanetaryData)
	assert.False(t, s.Complete(older, slow, nil))
	assert.Same(t, fast, s.Result())
	assert.False(t, s.IsLoading())
}

func TestOlderCompletionDoesNotClearLoading(t *testing.T) {
	s := NewSessionState()
	older := s.Begin(models.Query{Text: "a"})
	s.Begin(models.Query{Text: "b"})

	assert.False(t, s.Complete(older, nil, errors.New("late")))
	assert.True(t, s.IsLoading())
	assert.Nil(t, s.LastError())
}

func TestNoticesAreCopied(t *testing.T) {
	s := NewSessionState()
	s.AddNotice("hello", models.NoticeInfo)
	n := s.Notices()
	n[0].Content = "changed"
	assert.Equal(t, "hello", s.Notices()[0].Content)
}
