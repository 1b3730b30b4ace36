package portal

import (
	"sync"

	"github.com/brandgate/brandgate/internal/reconcile"
	"github.com/brandgate/brandgate/internal/tenant/catalog"
	"github.com/brandgate/brandgate/internal/tenantctx"
)

// principal holds the per-session navigation state: the tenant/label
// context store and the reconciliation controller ordering navigations
// against it. It lives exactly as long as the session; logout drops it so
// the context never outlives the sign-in.
type principal struct {
	contexts *tenantctx.Store
	ctrl     *reconcile.Controller
}

// principalRegistry maps session ids to principals. Sessions restored
// from durable storage get a fresh principal on first use, so a restart
// keeps the user signed in but returns them to context selection.
type principalRegistry struct {
	mu     sync.Mutex
	byID   map[string]*principal
	source catalog.Source
}

func newPrincipalRegistry(source catalog.Source) *principalRegistry {
	return &principalRegistry{
		byID:   make(map[string]*principal),
		source: source,
	}
}

// get returns the principal for a session id, creating one on first use.
func (r *principalRegistry) get(sessionID string) *principal {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[sessionID]
	if !ok {
		contexts := tenantctx.NewStore(r.source)
		p = &principal{
			contexts: contexts,
			ctrl:     reconcile.NewController(contexts),
		}
		r.byID[sessionID] = p
	}
	return p
}

// drop removes a session's principal, discarding its context state.
func (r *principalRegistry) drop(sessionID string) {
	r.mu.Lock()
	delete(r.byID, sessionID)
	r.mu.Unlock()
}
