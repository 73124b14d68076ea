// Package session owns the client's authentication state: a Session value
// describing who is logged in, and a Manager that is the single writer of
// that value. Every other component observes the session read-only, either
// by polling Current or through a subscription.
package session

// Status describes the authentication state of the client.
type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticating  Status = "authenticating"
	StatusAuthenticated   Status = "authenticated"
	StatusFailed          Status = "failed"
)

// User is the identity record delivered by the remote service.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the authoritative in-memory record of "who is logged in".
//
// Invariant: Credential and User are both present or both absent, and they
// are present exactly when Status == StatusAuthenticated.
type Session struct {
	Status     Status
	Credential string
	User       *User
	LastError  error
}

// Authenticated reports whether the session carries a valid identity.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated
}

// Consistent reports whether the session satisfies its structural invariant.
// It exists for tests and assertions; the Manager never produces a session
// that violates it.
func (s Session) Consistent() bool {
	populated := s.Credential != "" && s.User != nil
	empty := s.Credential == "" && s.User == nil
	if s.Status == StatusAuthenticated {
		return populated
	}
	return empty
}
