package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins and persists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=en-US", nil)
		req.Header.Set("Accept-Language", "pt-BR")

		tag, persist := ResolveTag(req)
		if tag.String() != "en-US" {
			t.Fatalf("tag = %s, want en-US", tag.String())
		}
		if !persist {
			t.Fatal("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag.String() != "en-US" {
			t.Fatalf("tag = %s, want en-US", tag.String())
		}
		if persist {
			t.Fatal("expected persist to be false")
		}
	})

	t.Run("default on no signal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		tag, persist := ResolveTag(req)
		if tag != Default() {
			t.Fatalf("tag = %s, want default", tag.String())
		}
		if persist {
			t.Fatal("expected persist to be false")
		}
	})
}

func TestPrinterUsesCatalog(t *testing.T) {
	printer := Printer(Default())
	got := printer.Sprintf("login.invalid_credentials")
	if got != "Invalid username or password." {
		t.Fatalf("message = %q, want catalog string", got)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetLanguageCookie(w, Default())
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName {
		t.Fatalf("cookies = %+v, want one %s cookie", cookies, LangCookieName)
	}
}
