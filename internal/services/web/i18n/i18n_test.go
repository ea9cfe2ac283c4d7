package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		accept string
	}{
		{name: "empty header", accept: ""},
		{name: "english", accept: "en-GB,en;q=0.9"},
		{name: "unsupported falls back", accept: "sn-ZW"},
		{name: "malformed falls back", accept: ";;;q=abc"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(req); got != language.English {
				t.Fatalf("ResolveTag() = %s, want %s", got, language.English)
			}
		})
	}
	if got := ResolveTag(nil); got != Default() {
		t.Fatalf("ResolveTag(nil) = %s, want default", got)
	}
}

func TestLocalizerRendersFlashCopy(t *testing.T) {
	t.Parallel()

	loc := NewLocalizer(language.English)
	tests := []struct {
		key  string
		args []string
		want string
	}{
		{key: "flash.register.success", want: "Registration successful! We will contact you with opportunities matching your profile."},
		{key: "flash.register_workshop.success", want: "Workshop registration successful! We will send you details shortly."},
		{key: "flash.registration.missing_field", args: []string{"first_name"}, want: "Registration failed: first_name is required"},
		{key: "flash.admin.registrant_deleted", args: []string{"999"}, want: "User 999 deleted successfully"},
		{key: "flash.admin.workshop_registrant_deleted", args: []string{"4"}, want: "Workshop registration 4 deleted successfully"},
		{key: "flash.admin.load_failed", want: "Error loading admin page"},
	}
	for _, tc := range tests {
		if got := loc.TS(tc.key, tc.args...); got != tc.want {
			t.Fatalf("TS(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestLocalizerFallbacks(t *testing.T) {
	t.Parallel()

	var zero Localizer
	if got := zero.T("nav.home"); got != "Home" {
		t.Fatalf("zero Localizer T() = %q, want %q", got, "Home")
	}
	if got := zero.T("  "); got != "" {
		t.Fatalf("blank key = %q, want empty", got)
	}
	if got := zero.T("missing.key"); got != "missing.key" {
		t.Fatalf("unknown key = %q, want key echoed", got)
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := Supported()
	tags[0] = language.French
	if Supported()[0] != language.English {
		t.Fatal("Supported() exposed internal slice")
	}
}
