package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	raw, err := codec.Issue("alice@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := codec.Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}
}

func TestCodec_DecodeExpired(t *testing.T) {
	codec := NewCodec("secret", time.Millisecond)

	raw, err := codec.Issue("alice@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if _, err := codec.Decode(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_DecodeTampered(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	raw, err := codec.Issue("alice@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one character of the signature segment.
	b := []byte(raw)
	i := strings.LastIndex(raw, ".") + 1
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}

	if _, err := codec.Decode(string(b)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestCodec_DecodeWrongSecret(t *testing.T) {
	raw, err := NewCodec("secret", time.Hour).Issue("alice@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewCodec("other", time.Hour).Decode(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestCodec_DecodeWrongAlgorithm(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	other := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  "alice@example.com",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := other.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Decode(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestCodec_DecodeMalformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := codec.Decode(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestNewCodec_DefaultTTL(t *testing.T) {
	codec := NewCodec("secret", 0)
	if codec.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, codec.ttl)
	}
}
