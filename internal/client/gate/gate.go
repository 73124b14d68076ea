// Package gate decides which surface the client renders for a given session
// status. It is a pure decision function with no side effects of its own;
// the CLI re-evaluates it on every session transition and on every
// navigation attempt.
package gate

import "github.com/craftops/atelier/internal/client/session"

// Route is one of the three externally visible render outcomes.
type Route string

const (
	// RouteShell renders the protected application shell.
	RouteShell Route = "shell"
	// RouteLogin redirects to the login surface.
	RouteLogin Route = "login"
	// RouteLoading renders a neutral loading indicator and nothing of the
	// protected subtree, preventing a flash of unauthenticated or
	// authenticated content during the async restore/login window.
	RouteLoading Route = "loading"
)

// Decide maps a session status to the surface to render.
func Decide(status session.Status) Route {
	switch status {
	case session.StatusAuthenticated:
		return RouteShell
	case session.StatusAuthenticating:
		return RouteLoading
	default:
		// Unauthenticated and Failed both land on the login surface; the
		// failure reason is the login surface's to display.
		return RouteLogin
	}
}
