package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/notes"
	"github.com/dmitrijs2005/notekeeper/internal/session"
	"github.com/dmitrijs2005/notekeeper/internal/storage/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an App with a memory-backed session store and scripted
// interactive input. Each call to a prompt helper consumes the next line.
func newTestApp(t *testing.T, inputs ...string) *App {
	t.Helper()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app := &App{
		sessions:  session.NewStore(kv.NewMemoryRepository(), log),
		notes:     notes.NewManager(),
		log:       log,
		reader:    bufio.NewReader(strings.NewReader("")),
		sortOrder: notes.SortDesc,
	}

	queue := inputs
	next := func() string {
		if len(queue) == 0 {
			return ""
		}
		head := queue[0]
		queue = queue[1:]
		return head
	}

	origSimple, origPassword, origMultiline, origPrintln := getSimpleText, getPassword, getMultiline, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline, printlnFn = origSimple, origPassword, origMultiline, origPrintln
	})

	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) { return next(), nil }
	getMultiline = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) { return next(), nil }
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("pw"), nil }
	printlnFn = func(...any) (int, error) { return 0, nil }

	return app
}

func TestRegister_SetsCurrentUser(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.True(t, app.isLoggedIn())
	assert.Equal(t, "alice", app.user.Username)
	assert.Equal(t, "(alice)", app.getStatus())
}

func TestLogin_WrongEmailLeavesLoggedOut(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice", "wrong@x.com")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))

	err := app.Login(ctx)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_AfterLogout(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice", "a@x.com")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.Logout(ctx))
	require.False(t, app.isLoggedIn())

	require.NoError(t, app.Login(ctx))
	assert.Equal(t, "alice", app.user.Username)
}

func TestEditProfile_EmptyInputKeepsValues(t *testing.T) {
	// register consumes two inputs; editprofile consumes two empty ones
	app := newTestApp(t, "a@x.com", "alice", "", "")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.EditProfile(ctx))

	assert.Equal(t, "a@x.com", app.user.Email)
	assert.Equal(t, "alice", app.user.Username)
}

func TestEditProfile_OverwritesValues(t *testing.T) {
	app := newTestApp(t, "a@x.com", "alice", "b@x.com", "bob")
	ctx := context.Background()

	require.NoError(t, app.Register(ctx))
	require.NoError(t, app.EditProfile(ctx))

	assert.Equal(t, "b@x.com", app.user.Email)
	assert.Equal(t, "bob", app.user.Username)

	// the overwritten record is what login matches against now
	require.NoError(t, app.Logout(ctx))
	queueLogin := newTestApp(t, "b@x.com")
	queueLogin.sessions = app.sessions
	require.NoError(t, queueLogin.Login(ctx))
	assert.Equal(t, "bob", queueLogin.user.Username)
}

func TestProfile_RequiresLogin(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, app.Profile(context.Background()))
	assert.False(t, app.isLoggedIn())
}
