package reconcile

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/brandgate/brandgate/internal/session"
	"github.com/brandgate/brandgate/internal/tenant"
	"github.com/brandgate/brandgate/internal/tenant/catalog"
	"github.com/brandgate/brandgate/internal/tenantctx"
	"github.com/brandgate/brandgate/internal/theme"
)

type failingSource struct{ err error }

func (f *failingSource) FetchTenantCatalog(ctx context.Context) ([]tenant.Tenant, error) {
	return nil, f.err
}

func user1Session() session.Session {
	return session.Session{
		ID:    "sess-1",
		Token: "token-1",
		User:  tenant.User{ID: "user-1", Username: "user1", AccessibleTenantIDs: []string{"tenant-a", "tenant-b"}},
	}
}

func user2Session() session.Session {
	return session.Session{
		ID:    "sess-2",
		Token: "token-2",
		User:  tenant.User{ID: "user-2", Username: "user2", AccessibleTenantIDs: []string{"tenant-b"}},
	}
}

func demoController() (*Controller, *tenantctx.Store) {
	contexts := tenantctx.NewStore(&catalog.Fixture{Tenants: catalog.DemoTenants()})
	return NewController(contexts), contexts
}

func reconcileOnce(t *testing.T, ctrl *Controller, sess session.Session, req Request) Decision {
	t.Helper()
	return ctrl.Reconcile(context.Background(), sess, req, ctrl.Begin())
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	t.Parallel()

	ctrl, _ := demoController()
	req := Request{TenantID: "tenant-a", LabelID: "label-x", Page: "dashboard", Path: "/app/tenant-a/label-x/dashboard"}
	decision := reconcileOnce(t, ctrl, session.Session{}, req)

	if decision.Kind != KindRedirect {
		t.Fatalf("kind = %v, want redirect", decision.Kind)
	}
	want := "/login?return_to=%2Fapp%2Ftenant-a%2Flabel-x%2Fdashboard"
	if decision.Target != want {
		t.Fatalf("target = %q, want %q", decision.Target, want)
	}
}

func TestCatalogFailureAwaits(t *testing.T) {
	t.Parallel()

	contexts := tenantctx.NewStore(&failingSource{err: errors.New("catalog down")})
	ctrl := NewController(contexts)

	decision := reconcileOnce(t, ctrl, user1Session(), Request{TenantID: "tenant-a", LabelID: "label-x"})
	if decision.Kind != KindAwaitingCatalog {
		t.Fatalf("kind = %v, want awaiting catalog", decision.Kind)
	}
	if decision.Err == nil {
		t.Fatal("awaiting decision missing load error")
	}
}

func TestMissingIDsRedirectToSelection(t *testing.T) {
	t.Parallel()

	ctrl, _ := demoController()
	decision := reconcileOnce(t, ctrl, user1Session(), Request{Path: "/app"})

	if decision.Kind != KindRedirect || decision.Target != "/app/select-context" {
		t.Fatalf("decision = %+v, want redirect to selection", decision)
	}
	if decision.Reason != "" {
		t.Fatalf("reason = %q, want none for missing ids", decision.Reason)
	}
}

func TestValidContextBecomesActive(t *testing.T) {
	t.Parallel()

	ctrl, contexts := demoController()
	req := Request{TenantID: "tenant-a", LabelID: "label-x", Page: "dashboard"}
	decision := reconcileOnce(t, ctrl, user1Session(), req)

	if decision.Kind != KindActive {
		t.Fatalf("decision = %+v, want active", decision)
	}

	snap := contexts.Snapshot()
	if !snap.Ready() || snap.TenantID != "tenant-a" || snap.LabelID != "label-x" {
		t.Fatalf("context = %+v, want (tenant-a, label-x)", snap)
	}
	// label-x has no visual override keys, so the theme is the tenant
	// merge unchanged.
	tenantA, _ := tenant.FindTenant(contexts.Catalog(), "tenant-a")
	want := theme.Resolve(theme.Base(), tenantA.Theme, nil)
	if !reflect.DeepEqual(snap.Theme, want) {
		t.Fatalf("theme = %+v, want unchanged tenant-a theme", snap.Theme)
	}
}

func TestMatchingContextShortCircuits(t *testing.T) {
	t.Parallel()

	ctrl, contexts := demoController()
	req := Request{TenantID: "tenant-a", LabelID: "label-x", Page: "dashboard"}
	if d := reconcileOnce(t, ctrl, user1Session(), req); d.Kind != KindActive {
		t.Fatalf("first decision = %+v, want active", d)
	}

	before := contexts.Snapshot()
	if d := reconcileOnce(t, ctrl, user1Session(), req); d.Kind != KindActive {
		t.Fatalf("second decision = %+v, want active", d)
	}
	after := contexts.Snapshot()

	// SetContext builds fresh detail pointers; identical pointers prove
	// the second attempt skipped recomputation.
	if before.Tenant != after.Tenant || before.Label != after.Label {
		t.Fatal("matching request recomputed the stored context")
	}
}

func TestInaccessibleTenantRedirects(t *testing.T) {
	t.Parallel()

	ctrl, _ := demoController()
	req := Request{TenantID: "tenant-a", LabelID: "label-x", Page: "dashboard"}
	decision := reconcileOnce(t, ctrl, user2Session(), req)

	if decision.Kind != KindRedirect || decision.Reason != ReasonInvalidTenant {
		t.Fatalf("decision = %+v, want invalid_tenant redirect", decision)
	}
	if decision.Target != "/app/select-context?error=invalid_tenant" {
		t.Fatalf("target = %q, want selection with invalid_tenant", decision.Target)
	}
}

func TestUnknownTenantRedirects(t *testing.T) {
	t.Parallel()

	ctrl, _ := demoController()
	decision := reconcileOnce(t, ctrl, user1Session(), Request{TenantID: "tenant-x", LabelID: "label-x"})

	if decision.Kind != KindRedirect || decision.Reason != ReasonInvalidTenant {
		t.Fatalf("decision = %+v, want invalid_tenant redirect", decision)
	}
}

func TestUnknownLabelFallsBackToFirstLabel(t *testing.T) {
	t.Parallel()

	ctrl, _ := demoController()
	req := Request{TenantID: "tenant-b", LabelID: "label-q", Page: "settings"}
	decision := reconcileOnce(t, ctrl, user1Session(), req)

	if decision.Kind != KindRedirect {
		t.Fatalf("decision = %+v, want redirect", decision)
	}
	if decision.Target != "/app/tenant-b/label-z/settings" {
		t.Fatalf("target = %q, want first label with preserved sub-path", decision.Target)
	}
	if decision.Reason != "" {
		t.Fatalf("reason = %q, want none for label fallback", decision.Reason)
	}
}

func TestUnknownLabelNoSiblingsRedirectsToSelection(t *testing.T) {
	t.Parallel()

	tenants := append(catalog.DemoTenants(), tenant.Tenant{ID: "tenant-e", Name: "Empty Holdings"})
	contexts := tenantctx.NewStore(&catalog.Fixture{Tenants: tenants})
	ctrl := NewController(contexts)
	sess := user1Session()
	sess.User.AccessibleTenantIDs = append(sess.User.AccessibleTenantIDs, "tenant-e")

	decision := reconcileOnce(t, ctrl, sess, Request{TenantID: "tenant-e", LabelID: "label-q", Page: "dashboard"})
	if decision.Kind != KindRedirect || decision.Reason != ReasonInvalidLabel {
		t.Fatalf("decision = %+v, want invalid_label redirect", decision)
	}
	if decision.Target != "/app/select-context?error=invalid_label" {
		t.Fatalf("target = %q, want selection with invalid_label", decision.Target)
	}
}

func TestSupersededAttemptDoesNotCommit(t *testing.T) {
	t.Parallel()

	ctrl, contexts := demoController()
	sess := user1Session()

	stale := ctrl.Begin()
	fresh := ctrl.Begin()

	decision := ctrl.Reconcile(context.Background(), sess, Request{TenantID: "tenant-a", LabelID: "label-x"}, stale)
	if decision.Kind != KindSuperseded {
		t.Fatalf("stale decision = %+v, want superseded", decision)
	}
	if contexts.Snapshot().Ready() {
		t.Fatal("stale attempt committed a context")
	}

	decision = ctrl.Reconcile(context.Background(), sess, Request{TenantID: "tenant-b", LabelID: "label-z"}, fresh)
	if decision.Kind != KindActive {
		t.Fatalf("fresh decision = %+v, want active", decision)
	}
	if snap := contexts.Snapshot(); snap.TenantID != "tenant-b" || snap.LabelID != "label-z" {
		t.Fatalf("context = %+v, want latest request to win", snap)
	}
}
