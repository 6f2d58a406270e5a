package locale

import "testing"

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"en", false},
		{"en-US", false},
		{"ar", true},
		{"ar-JO", true},
		{"", false},
		{"zz-bogus", false},
	}
	for _, tt := range tests {
		got := Resolve(tt.code)
		if got.RTL != tt.want {
			t.Errorf("Resolve(%q).RTL = %v, want %v", tt.code, got.RTL, tt.want)
		}
	}
}

func TestResolveFallsBackToEnglish(t *testing.T) {
	l := Resolve("xx")
	if l.Code() != "en" {
		t.Errorf("Resolve(xx).Code() = %q, want en", l.Code())
	}
}

func TestDisplayName(t *testing.T) {
	en := Resolve("en")
	ar := Resolve("ar")

	if got := en.DisplayName("Cars", "سيارات"); got != "Cars" {
		t.Errorf("en DisplayName = %q, want Cars", got)
	}
	if got := ar.DisplayName("Cars", "سيارات"); got != "سيارات" {
		t.Errorf("ar DisplayName = %q, want سيارات", got)
	}
	// Arabic locale without an Arabic name falls back to the primary name
	if got := ar.DisplayName("Cars", ""); got != "Cars" {
		t.Errorf("ar DisplayName fallback = %q, want Cars", got)
	}
}

func TestTranslationLookup(t *testing.T) {
	en := Resolve("en")
	ar := Resolve("ar")

	if en.T("scroll_hint") != "Scroll for more categories" {
		t.Errorf("unexpected en scroll_hint: %q", en.T("scroll_hint"))
	}
	if ar.T("scroll_hint") == en.T("scroll_hint") {
		t.Error("arabic scroll_hint should differ from english")
	}
	// Unknown key echoes the key
	if en.T("nope") != "nope" {
		t.Errorf("unknown key = %q, want nope", en.T("nope"))
	}
}

func TestNextCyclesLocales(t *testing.T) {
	l := Resolve("en")
	l = l.Next()
	if l.Code() != "ar" || !l.RTL {
		t.Errorf("Next after en = %q rtl=%v, want ar rtl=true", l.Code(), l.RTL)
	}
	l = l.Next()
	if l.Code() != "en" || l.RTL {
		t.Errorf("Next after ar = %q rtl=%v, want en rtl=false", l.Code(), l.RTL)
	}
}
