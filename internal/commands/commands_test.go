package commands_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/tally-dev/tally/internal/commands"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/session"
)

// setupEnv points every config path into a temp dir and the client at
// the given server, so commands run hermetically.
func setupEnv(t *testing.T, serverURL string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("TALLY_SERVER_URL", serverURL)
	t.Setenv("TALLY_OUTPUT_STYLE", "notty")
	return home
}

func runTally(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func sessionPath(home string) string {
	return filepath.Join(home, "tally", "session.yaml")
}

// saveSession pre-seeds a logged-in session the way a prior `tally
// login` would have.
func saveSession(t *testing.T, home, user string, role model.Role) {
	t.Helper()
	store := session.NewStore(sessionPath(home))
	st := session.State{
		Session: model.Session{User: user, Role: role},
		Cookies: []session.Cookie{{Name: "session", Value: "abc123"}},
	}
	if err := store.Save(st); err != nil {
		t.Fatal(err)
	}
}

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}
