package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/myantech/erp-api/models"
)

var testPrincipal = models.Principal{UserID: 123, Username: "thida", Role: models.RoleAdmin}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testPrincipal, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if token.Claims.Role != "Admin" {
		t.Errorf("expected role Admin, got %s", token.Claims.Role)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, testPrincipal, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", testPrincipal, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	principal, err := parsed.Claims.Principal()
	if err != nil {
		t.Fatalf("expected principal, got error: %v", err)
	}
	if principal != testPrincipal {
		t.Errorf("expected %+v, got %+v", testPrincipal, principal)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, _ := GenerateJWTToken("test-issuer", testPrincipal, time.Minute, "secret-key")
	expired, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Role: "Admin",
	}).SignedString([]byte("secret-key"))
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "test-issuer", Subject: "1"},
	}).SignedString([]byte("secret-key"))
	noneAlg, _ := jwt.NewWithClaims(jwt.SigningMethodNone, models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
		target error
	}{
		{"wrong key", valid.SignedString, "other-key", "test-issuer", jwt.ErrTokenSignatureInvalid},
		{"wrong issuer", valid.SignedString, "secret-key", "someone-else", jwt.ErrTokenInvalidIssuer},
		{"expired", expired, "secret-key", "test-issuer", jwt.ErrTokenExpired},
		{"no expiry", noExpiry, "secret-key", "test-issuer", jwt.ErrTokenRequiredClaimMissing},
		{"alg none", noneAlg, "secret-key", "test-issuer", jwt.ErrTokenSignatureInvalid},
		{"garbage", "not-a-jwt", "secret-key", "test-issuer", jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "Bearer a b", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error, got token %q", tt.header, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: expected %q, got %q (err %v)", tt.header, tt.want, got, err)
		}
	}
}
