package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/brandgate/brandgate/internal/services/portal/i18n"
	"github.com/brandgate/brandgate/internal/theme"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testPage() PageContext {
	return PageContext{
		Lang:       "en-US",
		Loc:        i18n.Printer(i18n.Default()),
		AppName:    "Brandgate",
		Theme:      theme.Base(),
		UserName:   "user1",
		TenantID:   "tenant-a",
		TenantName: "Alpha Bank",
		LabelID:    "label-x",
		LabelName:  "Label X",
		Page:       "dashboard",
	}
}

func TestLayoutRendersThemeAndChrome(t *testing.T) {
	page := testPage()
	page.Theme.BorderRadius = "0"
	page.Theme.Dashboard.Gap = "20px"

	out := render(t, Layout(page, "Brandgate | Dashboard", DashboardPage(page)))

	for _, want := range []string{
		"--border-radius:0;",
		"--dashboard-gap:20px;",
		"<title>Brandgate | Dashboard</title>",
		`href="/app/tenant-a/label-x/settings"`,
		`action="/logout"`,
		"Alpha Bank",
		"Label X",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("layout output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutWithoutContextHidesNav(t *testing.T) {
	page := testPage()
	page.TenantID = ""
	page.TenantName = ""
	page.LabelID = ""
	page.LabelName = ""

	out := render(t, Layout(page, "Brandgate", LoginPage(LoginParams{AppName: "Brandgate", Loc: page.Loc})))

	if strings.Contains(out, "<nav>") {
		t.Fatalf("nav rendered without an active context:\n%s", out)
	}
}

func TestLayoutEscapesTenantName(t *testing.T) {
	page := testPage()
	page.TenantName = `<script>alert("x")</script>`

	out := render(t, Layout(page, "t", DashboardPage(page)))

	if strings.Contains(out, "<script>alert") {
		t.Fatal("tenant name not escaped")
	}
}

func TestLoginPageError(t *testing.T) {
	out := render(t, LoginPage(LoginParams{
		AppName:  "Brandgate",
		Error:    "Invalid username or password.",
		Username: "user1",
		ReturnTo: "/app/tenant-a/label-x/dashboard",
		Loc:      i18n.Printer(i18n.Default()),
	}))

	for _, want := range []string{
		"Invalid username or password.",
		`value="user1"`,
		`name="return_to"`,
		"/app/tenant-a/label-x/dashboard",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("login output missing %q:\n%s", want, out)
		}
	}
}

func TestSelectionPageShowsSelectedTenantLabels(t *testing.T) {
	out := render(t, SelectionPage(SelectionParams{
		Tenants: []SelectionTenant{
			{ID: "tenant-a", Name: "Alpha Bank"},
			{ID: "tenant-b", Name: "Beta Financial", Selected: true, Labels: []SelectionLabel{
				{ID: "label-z", Name: "Label Z"},
				{ID: "label-w", Name: "Label W"},
			}},
		},
		Error: "That division is unavailable. Pick another one.",
		Loc:   i18n.Printer(i18n.Default()),
	}))

	for _, want := range []string{
		`value="tenant-a"`,
		`value="tenant-b" selected`,
		`value="label-z"`,
		`value="label-w"`,
		"That division is unavailable.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("selection output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `value="label-x"`) {
		t.Fatal("labels of an unselected tenant rendered")
	}
}

func TestEmptyAccessPage(t *testing.T) {
	out := render(t, EmptyAccessPage(i18n.Printer(i18n.Default())))
	if !strings.Contains(out, "no accessible organizations") {
		t.Fatalf("empty access message missing:\n%s", out)
	}
}

func TestDashboardPage(t *testing.T) {
	out := render(t, DashboardPage(testPage()))

	if !strings.Contains(out, "Welcome to the Alpha Bank dashboard for Label X.") {
		t.Fatalf("welcome line missing:\n%s", out)
	}
	if !strings.Contains(out, `class="dashboard-grid"`) {
		t.Fatalf("dashboard grid missing:\n%s", out)
	}
}

func TestSettingsPageSortsConfig(t *testing.T) {
	out := render(t, SettingsPage(SettingsParams{
		Page: testPage(),
		Config: map[string]any{
			"specificLegalText": "Legal text.",
			"dashboardGap":      20,
			"squareCorners":     true,
		},
	}))

	for _, want := range []string{"Alpha Bank", "Label X", "dashboardGap", "squareCorners", "specificLegalText", "Legal text."} {
		if !strings.Contains(out, want) {
			t.Fatalf("settings output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "dashboardGap") > strings.Index(out, "squareCorners") {
		t.Fatal("config keys not sorted")
	}
}

func TestSettingsPageEmptyConfig(t *testing.T) {
	out := render(t, SettingsPage(SettingsParams{Page: testPage()}))
	if !strings.Contains(out, "no configuration overrides") {
		t.Fatalf("empty config notice missing:\n%s", out)
	}
}

func TestErrorPages(t *testing.T) {
	page := testPage()

	out := render(t, NotFoundPage(page))
	if !strings.Contains(out, "Page not found") {
		t.Fatalf("not found heading missing:\n%s", out)
	}

	out = render(t, UnavailablePage(page))
	if !strings.Contains(out, "Catalog unavailable") {
		t.Fatalf("unavailable heading missing:\n%s", out)
	}
	if !strings.Contains(out, `href="/app/select-context"`) {
		t.Fatalf("retry link missing:\n%s", out)
	}
}

func TestCSSValueStripsBreakoutChars(t *testing.T) {
	cases := map[string]string{
		"#007bff":                  "#007bff",
		"20px":                     "20px",
		"0":                        "0",
		"red;}body{display:none":   "redbodydisplay:none",
		"</style><script>alert()":  "/stylescriptalert()",
		"'Inter', Arial, sans-serif": "'Inter', Arial, sans-serif",
	}
	for in, want := range cases {
		if got := cssValue(in); got != want {
			t.Fatalf("cssValue(%q) = %q, want %q", in, got, want)
		}
	}
}
