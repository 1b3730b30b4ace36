// Package reconcile validates a requested tenant/label context against the
// session, catalog, and stored context, and returns an explicit decision
// for the caller to apply. The controller always lands in a well-defined
// decision; context-resolution failures never propagate as errors.
package reconcile

import (
	"context"
	"sync/atomic"

	"github.com/brandgate/brandgate/internal/routepath"
	"github.com/brandgate/brandgate/internal/session"
	"github.com/brandgate/brandgate/internal/tenant"
	"github.com/brandgate/brandgate/internal/tenantctx"
)

// Kind discriminates reconciliation decisions.
type Kind int

const (
	// KindActive means the requested context is resolved and current.
	KindActive Kind = iota
	// KindAwaitingCatalog means the catalog is not available yet; the
	// caller should render a retryable loading state, not redirect.
	KindAwaitingCatalog
	// KindRedirect means the caller must navigate to Decision.Target.
	KindRedirect
	// KindSuperseded means a newer reconciliation attempt started before
	// this one committed; the caller discards the attempt.
	KindSuperseded
)

// Reason tags a redirect with a recoverable failure code.
type Reason string

const (
	// ReasonInvalidTenant marks a tenant that is unknown or inaccessible.
	ReasonInvalidTenant Reason = "invalid_tenant"
	// ReasonInvalidLabel marks a label with no fallback under its tenant.
	ReasonInvalidLabel Reason = "invalid_label"
)

// Decision is the outcome of one reconciliation attempt.
type Decision struct {
	Kind   Kind
	Reason Reason
	Target string
	// Err carries the catalog load failure for KindAwaitingCatalog.
	Err error
}

// Request is the context expressed by the navigation boundary.
type Request struct {
	TenantID string
	LabelID  string
	// Page is the requested sub-path within the context (e.g. "dashboard").
	Page string
	// Path is the originally requested location, preserved across login.
	Path string
}

// Controller reconciles requested contexts against a session's context
// store. Attempts are ordered: Begin hands out a generation, and only the
// most recent generation may commit a context change. Rapid navigation
// therefore supersedes in-flight attempts instead of queueing them.
type Controller struct {
	contexts   *tenantctx.Store
	generation atomic.Uint64
}

// NewController creates a controller over the given context store.
func NewController(contexts *tenantctx.Store) *Controller {
	return &Controller{contexts: contexts}
}

// Begin registers a new reconciliation attempt and supersedes all earlier
// ones that have not yet committed.
func (c *Controller) Begin() uint64 {
	return c.generation.Add(1)
}

// Reconcile runs one attempt with the given generation and returns the
// decision for the caller to apply.
//
// Rules are checked in priority order: authentication, catalog
// availability, presence of requested ids, short-circuit on exact match
// with the stored context, then validation against catalog and access set.
func (c *Controller) Reconcile(ctx context.Context, sess session.Session, req Request, gen uint64) Decision {
	if !sess.Authenticated() {
		return Decision{Kind: KindRedirect, Target: routepath.LoginWithReturn(req.Path)}
	}

	// Validation must observe a fully-loaded catalog. LoadCatalog is
	// idempotent, so this is a no-op after the first successful load.
	if !c.contexts.CatalogLoaded() {
		if err := c.contexts.LoadCatalog(ctx); err != nil {
			return Decision{Kind: KindAwaitingCatalog, Err: err}
		}
	}

	if req.TenantID == "" || req.LabelID == "" {
		return Decision{Kind: KindRedirect, Target: routepath.SelectContext}
	}

	current := c.contexts.Snapshot()
	if current.Ready() && current.TenantID == req.TenantID && current.LabelID == req.LabelID {
		// Reconciliation re-runs on every navigation; skipping the
		// recomputation when nothing changed is required, not cosmetic.
		return Decision{Kind: KindActive}
	}

	requested, ok := tenant.FindTenant(c.contexts.Catalog(), req.TenantID)
	if !ok || !sess.User.CanAccess(req.TenantID) {
		return Decision{
			Kind:   KindRedirect,
			Reason: ReasonInvalidTenant,
			Target: routepath.SelectContextWithError(string(ReasonInvalidTenant)),
		}
	}

	if _, ok := requested.LabelByID(req.LabelID); !ok {
		if len(requested.Labels) > 0 {
			// Fall back to the tenant's first label, preserving the
			// requested sub-path.
			return Decision{
				Kind:   KindRedirect,
				Target: routepath.AppPage(req.TenantID, requested.Labels[0].ID, req.Page),
			}
		}
		return Decision{
			Kind:   KindRedirect,
			Reason: ReasonInvalidLabel,
			Target: routepath.SelectContextWithError(string(ReasonInvalidLabel)),
		}
	}

	if c.generation.Load() != gen {
		return Decision{Kind: KindSuperseded}
	}
	c.contexts.SetContext(req.TenantID, req.LabelID)
	return Decision{Kind: KindActive}
}
