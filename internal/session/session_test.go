package session

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/duongpm13/cat-battle/internal/platform/errors"
)

var testClock = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager("c15afo-test-secret", time.Hour, func() time.Time { return testClock })
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return manager
}

func testIdentity() Identity {
	return Identity{
		AccountID:   "acct-1",
		TelegramID:  "tg-1001",
		DisplayName: "Duong",
		Ton:         1.5,
		Bnb:         0.25,
		Plays:       12,
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager("", time.Hour, nil); err == nil {
		t.Fatal("expected empty secret to fail")
	}
	if _, err := NewManager("secret", 0, nil); err == nil {
		t.Fatal("expected zero ttl to fail")
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	manager := testManager(t)

	token, err := manager.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Identity() != testIdentity() {
		t.Fatalf("identity = %+v, want %+v", claims.Identity(), testIdentity())
	}
	if claims.Subject != "acct-1" {
		t.Fatalf("subject = %q, want acct-1", claims.Subject)
	}
}

func TestIssueRequiresAccountID(t *testing.T) {
	manager := testManager(t)
	if _, err := manager.Issue(Identity{}); err == nil {
		t.Fatal("expected missing account id to fail")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := testManager(t)
	token, err := manager.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	late, err := NewManager("c15afo-test-secret", time.Hour, func() time.Time {
		return testClock.Add(2 * time.Hour)
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if _, err := late.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	manager := testManager(t)
	token, err := manager.Issue(testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other, err := NewManager("different-secret", time.Hour, func() time.Time { return testClock })
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if _, err := other.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := testManager(t)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := manager.Verify(token); apperrors.CodeOf(err) != apperrors.CodeSessionInvalid {
			t.Fatalf("Verify(%q) err = %v, want session invalid code", token, err)
		}
	}
}
