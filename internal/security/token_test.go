package security

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenIssuer(t *testing.T) {
	t.Run("rejects short secret", func(t *testing.T) {
		if _, err := NewTokenIssuer("too-short", time.Hour); err == nil {
			t.Error("expected error for short secret")
		}
	})

	t.Run("accepts 32 character secret", func(t *testing.T) {
		if _, err := NewTokenIssuer(testSecret, time.Hour); err != nil {
			t.Errorf("NewTokenIssuer() error = %v", err)
		}
	})
}

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("Verify() userID = %d, want 42", userID)
	}
}

func TestTokenRejection(t *testing.T) {
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := issuer.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenIssuer("ffffffffffffffffffffffffffffffff", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenIssuer() error = %v", err)
		}
		token, err := other.Issue(42)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}
		if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		issuer, err := NewTokenIssuer(testSecret, time.Hour)
		if err != nil {
			t.Fatalf("NewTokenIssuer() error = %v", err)
		}

		issued := time.Now().Add(-2 * time.Hour)
		issuer.timeFunc = func() time.Time { return issued }
		token, err := issuer.Issue(7)
		if err != nil {
			t.Fatalf("Issue() error = %v", err)
		}

		issuer.timeFunc = time.Now
		if _, err := issuer.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
		}
	})
}

func TestCSRFGenerator(t *testing.T) {
	g := NewCSRFGenerator(testSecret)

	token, err := g.GenerateToken("session-abc")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if !g.ValidateToken("session-abc", token) {
		t.Error("ValidateToken() = false for matching session")
	}
	if g.ValidateToken("session-xyz", token) {
		t.Error("ValidateToken() = true for different session")
	}
	if g.ValidateToken("session-abc", "forged") {
		t.Error("ValidateToken() = true for forged token")
	}
	if g.ValidateToken("", token) {
		t.Error("ValidateToken() = true for empty session")
	}
}
