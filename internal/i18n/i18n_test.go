package i18n

import (
	"testing"
	"time"
)

func TestSetLanguageIdempotent(t *testing.T) {
	l := New(English)
	if !l.SetLanguage(Bangla) {
		t.Fatal("first switch to bn should report a change")
	}
	if l.SetLanguage(Bangla) {
		t.Fatal("second switch to bn should be a no-op")
	}
	if l.Lang() != Bangla {
		t.Fatalf("lang = %q, want %q", l.Lang(), Bangla)
	}
}

func TestUnknownLanguageKeepsCurrent(t *testing.T) {
	l := New(Lang("fr"))
	if l.Lang() != English {
		t.Fatalf("lang = %q, want english default", l.Lang())
	}
	if l.SetLanguage(Lang("xx")) {
		t.Fatal("unknown language must not report a change")
	}
}

func TestToggleCycles(t *testing.T) {
	l := New(English)
	if got := l.Toggle(); got != Bangla {
		t.Fatalf("toggle = %q, want %q", got, Bangla)
	}
	if got := l.Toggle(); got != English {
		t.Fatalf("toggle = %q, want %q", got, English)
	}
}

func TestMissingKeyStaysVisible(t *testing.T) {
	l := New(Bangla)
	if got := l.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("T(missing) = %q, want the key itself", got)
	}
	if _, ok := Lookup(Bangla, "no.such.key"); ok {
		t.Fatal("Lookup must report missing keys")
	}
}

func TestCatalogParity(t *testing.T) {
	en := catalog[English]
	for _, lang := range Supported {
		if lang == English {
			continue
		}
		table := catalog[lang]
		for key := range en {
			if _, ok := table[key]; !ok {
				t.Errorf("%s table missing %q", lang, key)
			}
		}
		for key := range table {
			if _, ok := en[key]; !ok {
				t.Errorf("%s table has %q with no english source", lang, key)
			}
		}
	}
}

func TestSwitchRelabelsWithoutRecompute(t *testing.T) {
	l := New(English)
	if got := l.T("bmi.normal"); got != "Normal" {
		t.Fatalf("bmi.normal = %q", got)
	}
	l.SetLanguage(Bangla)
	if got := l.T("bmi.normal"); got != "স্বাভাবিক" {
		t.Fatalf("bmi.normal after switch = %q", got)
	}
}

func TestFormatTimePerLocale(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	l := New(English)
	if got := l.FormatTime(ts); got != "05 Mar 2026 14:30" {
		t.Fatalf("en time = %q", got)
	}
	l.SetLanguage(Bangla)
	if got := l.FormatTime(ts); got != "05/03/2026 14:30" {
		t.Fatalf("bn time = %q", got)
	}
}
