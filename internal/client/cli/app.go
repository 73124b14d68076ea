package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"

	"github.com/craftops/atelier/internal/client/api"
	"github.com/craftops/atelier/internal/client/config"
	"github.com/craftops/atelier/internal/client/credstore"
	"github.com/craftops/atelier/internal/client/dashboard"
	"github.com/craftops/atelier/internal/client/gate"
	"github.com/craftops/atelier/internal/client/session"
	"github.com/craftops/atelier/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together: the credential store, the session manager,
// the authenticated API client, and the dashboard aggregator. It also tracks
// the current route so the REPL can react to session transitions.
type App struct {
	config  *config.Config
	log     logging.Logger
	manager *session.Manager
	agg     *dashboard.Aggregator
	money   *moneyFormatter
	reader  *bufio.Reader
	db      *sql.DB

	mu    sync.Mutex
	route gate.Route
}

// NewApp opens the local credential database and constructs the component
// graph. The session manager is handed to the API client both as the token
// source and as the invalidation target, so credential rejection observed on
// any outbound request forces the session back to unauthenticated.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, db, err := credstore.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		money:  newMoneyFormatter(c.Locale),
		reader: bufio.NewReader(os.Stdin),
		db:     db,
		route:  gate.RouteLogin,
	}

	// The manager and the client reference each other (token source one way,
	// auth requests the other), so the client reads the token through a
	// late-bound function.
	client := api.New(c.ServerBaseURL, c.RequestTimeout,
		api.TokenProviderFunc(func() string { return a.manager.Token() }), log)
	a.manager = session.NewManager(store, client, log)
	client.SetInvalidationHook(a.manager.ForceInvalidate)
	a.agg = dashboard.NewAggregator(client, log)

	a.manager.Subscribe(a.onTransition)

	return a, nil
}

// Close releases the credential database.
func (a *App) Close() error {
	return a.db.Close()
}

// onTransition re-evaluates the route on every session state change. Runs
// synchronously with the transition; it only records the new route, the
// REPL picks it up on its next iteration.
func (a *App) onTransition(s session.Session) {
	next := gate.Decide(s.Status)

	a.mu.Lock()
	prev := a.route
	a.route = next
	a.mu.Unlock()

	if prev == gate.RouteShell && next == gate.RouteLogin {
		printlnFn("Session expired, please log in again.")
	}
}

// Route returns the currently decided surface.
func (a *App) Route() gate.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.Route() == gate.RouteShell
}

// Run restores the session once, silently, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.manager.Restore(ctx)
	a.Root(ctx)
}
