package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, cfg Config, secret string, opts ...Option) *Session {
	t.Helper()
	s, err := New(cfg, secret, opts...)
	require.NoError(t, err)
	return s
}

func TestNewRejectsMalformedConfig(t *testing.T) {
	cases := []struct {
		name   string
		cfg    Config
		secret string
	}{
		{"zero length", Config{Length: 0, Limit: 6}, ""},
		{"negative limit", Config{Length: 5, Limit: -1}, "CRANE"},
		{"zero limit", Config{Length: 5, Limit: 0}, "CRANE"},
		{"short secret", DefaultConfig(), "CRAN"},
		{"long secret", DefaultConfig(), "CRANES"},
		{"non-letters", DefaultConfig(), "CR4NE"},
		{"no dictionary", Config{Length: 5, Limit: 6, CheckValid: true}, "CRANE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg, tc.secret)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNewRejectsSecretOutsideDictionary(t *testing.T) {
	cfg := Config{Length: 5, Limit: 6, CheckValid: true}
	_, err := New(cfg, "CRANE", WithDictionary(wordSet{"SLATE": true}))
	assert.ErrorIs(t, err, ErrSecretNotInDictionary)
}

func TestNewUppercasesSecret(t *testing.T) {
	s := newSession(t, DefaultConfig(), " crane ")
	assert.Equal(t, "CRANE", s.Secret())
	assert.Equal(t, InProgress, s.State())
	assert.False(t, s.Finished())
	assert.Equal(t, 0, s.Attempt())
}

func TestSubmitWins(t *testing.T) {
	s := newSession(t, DefaultConfig(), "CRANE")

	ok, reason := s.Submit("slate")
	require.True(t, ok)
	assert.Equal(t, ReasonNone, reason)
	assert.False(t, s.Finished())

	ok, _ = s.Submit("Crane")
	require.True(t, ok)
	assert.True(t, s.Finished())
	assert.True(t, s.Won())
	assert.Equal(t, Won, s.State())
	assert.Equal(t, 2, s.Attempt())

	rec, found := s.Row(1)
	require.True(t, found)
	assert.Equal(t, "CRANE", rec.Word)
	assert.True(t, rec.Solved())
}

func TestSubmitLosesAtLimit(t *testing.T) {
	s := newSession(t, Config{Length: 5, Limit: 3}, "CRANE")

	for i, g := range []string{"SLATE", "MOIST", "BRAKE"} {
		assert.False(t, s.Finished(), "finished before guess %d", i)
		ok, _ := s.Submit(g)
		require.True(t, ok)
	}
	assert.True(t, s.Finished())
	assert.False(t, s.Won())
	assert.Equal(t, Lost, s.State())
	assert.Equal(t, 3, s.Attempt())
}

func TestSubmitWinOnLastAttemptIsWin(t *testing.T) {
	s := newSession(t, Config{Length: 5, Limit: 2}, "CRANE")
	s.Submit("SLATE")
	s.Submit("CRANE")
	assert.Equal(t, Won, s.State())
}

func TestSubmitAfterFinishIsRejected(t *testing.T) {
	s := newSession(t, DefaultConfig(), "CRANE")
	s.Submit("CRANE")
	require.True(t, s.Finished())
	before := s.History()

	for _, g := range []string{"SLATE", "CRANE", ""} {
		ok, reason := s.Submit(g)
		assert.False(t, ok)
		assert.Equal(t, ReasonFinished, reason)
	}
	assert.Equal(t, before, s.History())
	assert.Equal(t, ReasonFinished, s.Check("SLATE"))
}

func TestSubmitInvalidLeavesSessionUnchanged(t *testing.T) {
	cfg := Config{Length: 5, Limit: 6, CheckValid: true, Hard: true}
	dict := wordSet{"CRANE": true, "TRACE": true, "BLAME": true, "BRACE": true}
	s := newSession(t, cfg, "CRANE", WithDictionary(dict))

	ok, reason := s.Submit("TRAC")
	assert.False(t, ok)
	assert.Equal(t, ReasonWrongLength, reason)

	ok, reason = s.Submit("QWERT")
	assert.False(t, ok)
	assert.Equal(t, ReasonNotInDictionary, reason)
	assert.Equal(t, 0, s.Attempt())

	ok, _ = s.Submit("trace")
	require.True(t, ok)

	ok, reason = s.Submit("blame")
	assert.False(t, ok)
	assert.Equal(t, ReasonHardMode, reason)
	assert.Equal(t, 1, s.Attempt())

	ok, _ = s.Submit("brace")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Attempt())
}

func TestDictionaryIgnoredWhenNotEnforced(t *testing.T) {
	s := newSession(t, DefaultConfig(), "CRANE", WithDictionary(wordSet{"CRANE": true}))
	ok, reason := s.Submit("QWERT")
	assert.True(t, ok)
	assert.Equal(t, ReasonNone, reason)
}

func TestHistoryIsACopy(t *testing.T) {
	s := newSession(t, DefaultConfig(), "CRANE")
	s.Submit("SLATE")

	h := s.History()
	h[0].Clues[0] = Exact
	h[0].Word = "XXXXX"

	rec, _ := s.Row(0)
	assert.Equal(t, "SLATE", rec.Word)
	assert.Equal(t, Absent, rec.Clues[0])

	_, found := s.Row(1)
	assert.False(t, found)
	_, found = s.Row(-1)
	assert.False(t, found)
}

func TestSessionLogsGuesses(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := newSession(t, DefaultConfig(), "CRANE", WithLogger(logger))

	s.Submit("CRAN")
	s.Submit("CRANE")

	out := buf.String()
	assert.Contains(t, out, `"reason":"wrong_length"`)
	assert.Contains(t, out, `"message":"guess accepted"`)
	assert.Contains(t, out, `"state":"won"`)
}
