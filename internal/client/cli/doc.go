// Package cli implements the interactive terminal client for the Atelier
// operations tool.
//
// The REPL is gated by the session state: while unauthenticated only the
// auth commands are available; once a session is established the protected
// commands (dashboard, status, logout) open up. A silent session restore
// runs once before the first prompt, and a forced invalidation observed on
// any outbound request redirects the user back to the login surface.
package cli
