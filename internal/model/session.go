package model

// Role is the coarse authorization label the server returns after login.
// It gates UI shortcuts only; the server is the sole trust boundary.
type Role string

const (
	RoleNone  Role = ""
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the client-held view of a logged-in user.
type Session struct {
	User string `yaml:"user" json:"user"`
	Role Role   `yaml:"role" json:"role"`
}

// LoggedIn reports whether the session belongs to a named user.
func (s Session) LoggedIn() bool { return s.User != "" }

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
