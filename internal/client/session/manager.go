package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/craftops/atelier/internal/client/credstore"
	"github.com/craftops/atelier/internal/common"
	"github.com/craftops/atelier/internal/logging"
)

// AuthAPI is the slice of the remote service the Manager needs: one request
// per operation, no retries. Implemented by the api package.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and the user identity.
	Login(ctx context.Context, email, password string) (string, User, error)
	// Register creates an account and returns a bearer token and identity.
	Register(ctx context.Context, name, email, password string) (string, User, error)
	// Me validates a candidate token against the identity endpoint.
	Me(ctx context.Context, token string) (User, error)
}

// Profile is the registration input.
type Profile struct {
	Name     string
	Email    string
	Password string
}

// Manager owns the Session and is its only writer. State transitions are
// applied atomically and broadcast to subscribers synchronously with the
// transition, so no subscriber observes a stale state after a transition
// completes. Subscriber callbacks run inside the transition and must not
// call back into the Manager.
type Manager struct {
	store credstore.Store
	api   AuthAPI
	log   logging.Logger

	mu      sync.Mutex
	current Session
	subs    []func(Session)

	// now is a test seam for credential issuance timestamps.
	now func() time.Time
}

// NewManager wires the Manager to its collaborators. The session starts
// Unauthenticated.
func NewManager(store credstore.Store, api AuthAPI, log logging.Logger) *Manager {
	return &Manager{
		store:   store,
		api:     api,
		log:     log,
		current: Session{Status: StatusUnauthenticated},
		now:     time.Now,
	}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Token returns the current credential, or "" unless authenticated.
// It satisfies the api package's TokenProvider.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current.Status != StatusAuthenticated {
		return ""
	}
	return m.current.Credential
}

// Subscribe registers fn to be invoked on every state transition with the
// new session snapshot.
func (m *Manager) Subscribe(fn func(Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// transition swaps the session under the lock and notifies subscribers
// before releasing it.
func (m *Manager) transition(next Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = next
	for _, fn := range m.subs {
		fn(next)
	}
}

// Restore attempts a silent session restore from the durable store. It is
// called exactly once, at startup, before any protected surface may render.
//
// With no stored credential it returns immediately without a network call.
// With one, it validates the token against the identity endpoint (a single
// request, no retry); rejection or transport failure clears the store and
// leaves the session Unauthenticated — a stale token on startup is a silent
// no-op, never a user-facing error.
func (m *Manager) Restore(ctx context.Context) {
	cred, ok := m.store.Load(ctx)
	if !ok {
		return
	}

	m.transition(Session{Status: StatusAuthenticating})

	user, err := m.api.Me(ctx, cred.Token)
	if err != nil {
		m.log.Info(ctx, "stored session not restored", "reason", err.Error())
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear stale credential", "error", clearErr.Error())
		}
		m.transition(Session{Status: StatusUnauthenticated})
		return
	}

	m.log.Info(ctx, "session restored", "user_id", user.ID)
	m.transition(Session{Status: StatusAuthenticated, Credential: cred.Token, User: &user})
}

// beginAuth moves the session to Authenticating unless an attempt is already
// in flight. At most one authentication attempt exists at a time.
func (m *Manager) beginAuth() error {
	m.mu.Lock()
	if m.current.Status == StatusAuthenticating {
		m.mu.Unlock()
		return common.ErrAuthInProgress
	}
	next := Session{Status: StatusAuthenticating}
	m.current = next
	subs := m.subs
	for _, fn := range subs {
		fn(next)
	}
	m.mu.Unlock()
	return nil
}

// Login issues one authentication request. On success the credential is
// persisted and the session becomes Authenticated. Rejected credentials or
// transport failures move the session to Failed with a classified reason;
// the store stays empty.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if err := m.beginAuth(); err != nil {
		return err
	}

	token, user, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "reason", err.Error())
		m.transition(Session{Status: StatusFailed, LastError: err})
		return err
	}

	return m.completeAuth(ctx, token, user)
}

// Register validates the profile locally before any network round trip;
// missing required fields fail fast with ErrInvalidInput. Otherwise the
// contract matches Login.
func (m *Manager) Register(ctx context.Context, p Profile) error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		p.Password == "" {
		err := common.ErrInvalidInput
		m.transition(Session{Status: StatusFailed, LastError: err})
		return err
	}

	if err := m.beginAuth(); err != nil {
		return err
	}

	token, user, err := m.api.Register(ctx, p.Name, p.Email, p.Password)
	if err != nil {
		m.log.Warn(ctx, "registration failed", "reason", err.Error())
		m.transition(Session{Status: StatusFailed, LastError: err})
		return err
	}

	return m.completeAuth(ctx, token, user)
}

func (m *Manager) completeAuth(ctx context.Context, token string, user User) error {
	cred := credstore.StoredCredential{Token: token, IssuedAt: m.now()}
	if err := m.store.Save(ctx, cred); err != nil {
		// The session is still good for this process; persistence failure
		// only costs the next silent restore.
		m.log.Error(ctx, "failed to persist credential", "error", err.Error())
	}

	m.transition(Session{Status: StatusAuthenticated, Credential: token, User: &user})
	return nil
}

// Logout unconditionally clears the store and moves the session to
// Unauthenticated, regardless of current state. It never fails; store
// errors are logged only. Calling it while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.invalidate(ctx, "user logout")
}

// ForceInvalidate is invoked when an outbound request observes that a
// previously accepted credential was rejected. It has the same effect as
// Logout but is recorded as a session expiry. Concurrent invocations
// collapse: the transition is applied and broadcast at most once.
func (m *Manager) ForceInvalidate() {
	m.invalidate(context.Background(), "session expired")
}

func (m *Manager) invalidate(ctx context.Context, reason string) {
	m.mu.Lock()
	already := m.current.Status == StatusUnauthenticated
	if !already {
		next := Session{Status: StatusUnauthenticated}
		m.current = next
		for _, fn := range m.subs {
			fn(next)
		}
	}
	m.mu.Unlock()

	// The store is cleared even when the state did not change, so logout is
	// idempotent; the transition itself is broadcast at most once.
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credential", "error", err.Error())
	}
	if !already {
		m.log.Info(ctx, "session ended", "reason", reason)
	}
}

// IsAuthRejection reports whether err represents rejected credentials
// rather than a transport or server failure.
func IsAuthRejection(err error) bool {
	return errors.Is(err, common.ErrInvalidCredentials) || errors.Is(err, common.ErrUnauthorized)
}
