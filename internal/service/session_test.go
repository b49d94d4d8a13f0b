package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/logger"
	"github.com/jonathan/resume-builder/internal/types"
)

func loggedIn(t *testing.T) (*fixture, *Session) {
	t.Helper()
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.auth.Register(ctx, "Jane Doe", "jane@x.com", "Aa1!aaaa"))
	require.NoError(t, f.auth.Login(ctx, "jane@x.com", "Aa1!aaaa"))
	return f, NewSession(f.store, logger.Nop())
}

func TestSession_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("logged in", func(t *testing.T) {
		_, s := loggedIn(t)
		acct, ok, err := s.Restore(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "jane@x.com", acct.ID)
		assert.Equal(t, "Jane Doe", acct.Greeting())
		assert.Equal(t, "Jane Doe", acct.DisplayName())
	})

	t.Run("no pointer", func(t *testing.T) {
		f := newFixture(t)
		_, ok, err := NewSession(f.store, nil).Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("pointer to missing record", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.SetCurrentUser(ctx, "ghost@x.com"))
		_, ok, err := NewSession(f.store, nil).Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("pointer to logged out record", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.auth.Register(ctx, "Jane Doe", "jane@x.com", "Aa1!aaaa"))
		require.NoError(t, f.store.SetCurrentUser(ctx, "jane@x.com"))

		s := NewSession(f.store, nil)
		_, ok, err := s.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = s.Current(ctx)
		require.NoError(t, err)
		assert.True(t, ok, "Current ignores the session flag")
	})
}

func TestSession_ResumeRoundTrip(t *testing.T) {
	f, s := loggedIn(t)
	ctx := context.Background()

	doc := types.ResumeDocument{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Phone:    "+1 (555) 123-4567",
		Skills:   []string{"Go", "SQL"},
		ExpTitle: "Engineer",
		CGPA:     "3.9",
	}

	saved, err := s.SaveResume(ctx, doc)
	require.NoError(t, err)
	assert.True(t, saved)

	doc.Skills[0] = "mutated after save"

	got, ok, err := s.LoadResume(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Go", "SQL"}, got.Skills)
	assert.Equal(t, "Engineer", got.ExpTitle)
	assert.Equal(t, "3.9", got.CGPA)

	rec, _, err := f.store.Get(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.True(t, rec.Session, "saving keeps the rest of the record")
	assert.Equal(t, "Aa1!aaaa", rec.Password)

	// The resume is replaced wholesale.
	_, err = s.SaveResume(ctx, types.ResumeDocument{Name: "Only Name"})
	require.NoError(t, err)
	got, _, err = s.LoadResume(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.ResumeDocument{Name: "Only Name"}, got)
}

func TestSession_SaveWithoutUserIsNoop(t *testing.T) {
	f := newFixture(t)
	s := NewSession(f.store, nil)
	before := f.snapshot(t)

	saved, err := s.SaveResume(context.Background(), types.ResumeDocument{Name: "X"})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, before, f.snapshot(t))

	_, ok, err := s.LoadResume(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_SetTheme(t *testing.T) {
	f, s := loggedIn(t)
	ctx := context.Background()

	ok, err := s.SetTheme(ctx, "dark")
	require.NoError(t, err)
	assert.True(t, ok)

	rec, _, err := f.store.Get(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "dark", rec.Theme)
	assert.True(t, rec.Session)

	_, err = s.SetTheme(ctx, "neon")
	assert.Error(t, err)

	require.NoError(t, f.auth.Logout(ctx))
	ok, err = s.SetTheme(ctx, "light")
	require.NoError(t, err)
	assert.False(t, ok)
}
