package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftops/atelier/internal/client/session"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		status session.Status
		want   Route
	}{
		{session.StatusAuthenticated, RouteShell},
		{session.StatusAuthenticating, RouteLoading},
		{session.StatusUnauthenticated, RouteLogin},
		{session.StatusFailed, RouteLogin},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.status))
		})
	}
}
