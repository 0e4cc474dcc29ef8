package ui

import (
	"testing"

	"github.com/redsea-eng/englib/internal/policy"
)

func TestNewLocalization_DefaultsToArabic(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "ar" {
		t.Errorf("Expected default language 'ar', got %s", l.GetCurrentLanguage())
	}
}

func TestSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("en")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected language 'en', got %s", l.GetCurrentLanguage())
	}

	// Unknown languages are ignored
	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language should not change current, got %s", l.GetCurrentLanguage())
	}
}

func TestGetText_FallsBackToKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %s", got)
	}
}

func TestGetText_BothLanguagesCoverSameKeys(t *testing.T) {
	l := NewLocalization()

	en := l.texts["en"]
	ar := l.texts["ar"]

	for key := range en {
		if _, ok := ar[key]; !ok {
			t.Errorf("Key %s missing from Arabic table", key)
		}
	}
	for key := range ar {
		if _, ok := en[key]; !ok {
			t.Errorf("Key %s missing from English table", key)
		}
	}
}

func TestDenyText_EveryReasonHasDistinctWording(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("en")

	reasons := []policy.DenyReason{
		policy.ReasonProtectedAccount,
		policy.ReasonSelfDelete,
		policy.ReasonAdminDeletesStudentsOnly,
		policy.ReasonRootTierRequired,
		policy.ReasonLockRootRequiresRoot,
		policy.ReasonStaffOnly,
		policy.ReasonGuestReadOnly,
		policy.ReasonRootOnly,
	}

	seen := make(map[string]policy.DenyReason)
	for _, reason := range reasons {
		text := l.DenyText(reason)
		if text == "" {
			t.Errorf("Reason %d has empty wording", reason)
			continue
		}
		if text == l.GetText(KeyDenyGeneric) {
			t.Errorf("Reason %d falls through to the generic wording", reason)
		}
		if other, dup := seen[text]; dup {
			t.Errorf("Reasons %d and %d share wording %q", reason, other, text)
		}
		seen[text] = reason
	}
}
