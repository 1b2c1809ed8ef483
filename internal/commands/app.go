package commands

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/tally-dev/tally/internal/actionlog"
	"github.com/tally-dev/tally/internal/api"
	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/render"
	"github.com/tally-dev/tally/internal/session"
)

// app bundles everything one command invocation needs: the loaded
// config, the API client primed with the persisted session, and the
// places state goes back to. Constructed once per gesture, no teardown.
type app struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	out    io.Writer
	logDir string
}

func newApp(out io.Writer) (*app, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := api.New(cfg.Server.URL, time.Duration(cfg.Server.TimeoutSeconds)*time.Second, logger)
	if err != nil {
		return nil, err
	}

	sessPath, err := cfg.SessionPath()
	if err != nil {
		return nil, err
	}
	store := session.NewStore(sessPath)

	st, err := store.Load()
	if err != nil {
		return nil, err
	}
	client.SetSession(st.Session, toHTTPCookies(st.Cookies))

	logDir, err := cfg.LogDir()
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, client: client, store: store, out: out, logDir: logDir}, nil
}

// saveSession persists the client's session and cookies; an empty
// session clears the file entirely.
func (a *app) saveSession() error {
	sess := a.client.Session()
	if !sess.LoggedIn() {
		return a.store.Clear()
	}
	return a.store.Save(session.State{
		Session: sess,
		Cookies: fromHTTPCookies(a.client.Cookies()),
	})
}

// logAction records a state-changing gesture. Logging trouble is worth a
// warning, never a failed command.
func (a *app) logAction(action, details string, actionErr error) {
	outcome := "ok"
	if actionErr != nil {
		outcome = actionErr.Error()
	}
	entry := actionlog.Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
		Outcome:   outcome,
	}
	if err := actionlog.Append(a.logDir, []actionlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write action log: %v\n", err)
	}
}

// render prints markdown through the configured glamour style.
func (a *app) render(markdown string) error {
	return render.Print(a.out, a.cfg.Output.Style, markdown)
}

func toHTTPCookies(cookies []session.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

func fromHTTPCookies(cookies []*http.Cookie) []session.Cookie {
	out := make([]session.Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, session.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}
