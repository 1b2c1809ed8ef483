package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestLogin_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds.Username)
		require.Equal(t, "s3cret", creds.Password)

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok-1", Path: "/"})
		io.WriteString(w, `{"ok":true,"user":"alice","role":"admin"}`)
	}))

	sess, err := c.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.User)
	assert.True(t, sess.IsAdmin())
	assert.Equal(t, sess, c.Session())

	cookies := c.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "tok-1", cookies[0].Value)
}

func TestLogin_FailureSurfacesServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":"bad credentials"}`)
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "bad credentials", err.Error())
	assert.False(t, c.Session().LoggedIn())
}

func TestLogin_FailureGenericFallback(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>gateway error</html>")
	}))

	_, err := c.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.Equal(t, "login failed", err.Error())
}

func TestLogout_ClearsSession(t *testing.T) {
	var method, path string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		io.WriteString(w, `{"ok":true}`)
	}))
	c.SetSession(model.Session{User: "alice", Role: model.RoleAdmin}, nil)

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/logout", path)

	// The whole session goes, not just the display name.
	assert.False(t, c.Session().LoggedIn())
	assert.Equal(t, model.RoleNone, c.Session().Role)
}

func TestRegister_ValidatesBeforeSending(t *testing.T) {
	hits := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	require.Error(t, c.Register(context.Background(), "", "pw", ""))
	require.Error(t, c.Register(context.Background(), "alice", "", ""))
	assert.Zero(t, hits)
}

func TestRegister_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Email    string `json:"email"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "bob", body.Username)
		require.Equal(t, "bob@example.com", body.Email)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"ok":true}`)
	}))

	require.NoError(t, c.Register(context.Background(), "bob", "pw", "bob@example.com"))
}

func TestRegister_UsernameExists(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"username exists"}`)
	}))

	err := c.Register(context.Background(), "bob", "pw", "")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "username exists", apiErr.Message)
}

func TestRequestPasswordReset(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reset-request", r.URL.Path)
		io.WriteString(w, `{"token":"tok-abc","expiry":"2025-03-01T12:00:00"}`)
	}))

	grant, err := c.RequestPasswordReset(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", grant.Token)
	assert.Equal(t, "2025-03-01T12:00:00", grant.Expiry)
}

func TestRequestPasswordReset_EmptyUsername(t *testing.T) {
	hits := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	_, err := c.RequestPasswordReset(context.Background(), "")
	require.Error(t, err)
	assert.Zero(t, hits)
}

func TestCompletePasswordReset(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reset", r.URL.Path)
		var body struct {
			Token       string `json:"token"`
			NewPassword string `json:"new_password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "tok-abc", body.Token)
		require.Equal(t, "newpw", body.NewPassword)
		io.WriteString(w, `{"ok":true}`)
	}))

	require.NoError(t, c.CompletePasswordReset(context.Background(), "tok-abc", "newpw"))
}

func TestCompletePasswordReset_InvalidToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"invalid token"}`)
	}))

	err := c.CompletePasswordReset(context.Background(), "bad", "newpw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestCompletePasswordReset_Validation(t *testing.T) {
	hits := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	require.Error(t, c.CompletePasswordReset(context.Background(), "", "pw"))
	require.Error(t, c.CompletePasswordReset(context.Background(), "tok", ""))
	assert.Zero(t, hits)
}
