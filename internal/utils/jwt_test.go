package utils

import (
	"testing"

	"telehealth-connect-server/internal/config"
	"telehealth-connect-server/internal/models"
)

func tokenConfig(accessMinutes int) *config.Config {
	return &config.Config{
		JWTSecret:                 "access_secret",
		JWTRefreshSecret:          "refresh_secret",
		JWTExpirationMinutes:      accessMinutes,
		JWTRefreshExpirationHours: 1,
	}
}

func TestGenerateAndValidateTokens(t *testing.T) {
	cfg := tokenConfig(15)
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}, Email: "jane@example.com"}

	access, refresh, err := GenerateTokens(user, models.RolePatient, cfg)
	if err != nil {
		t.Fatalf("GenerateTokens() error = %v", err)
	}

	claims, err := ValidateToken(access, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken(access) error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != models.RolePatient {
		t.Errorf("Role = %q, want patient", claims.Role)
	}

	claims, err = ValidateToken(refresh, cfg.JWTRefreshSecret)
	if err != nil {
		t.Fatalf("ValidateToken(refresh) error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("refresh UserID = %q, want user-1", claims.UserID)
	}
}

func TestValidateTokenFailures(t *testing.T) {
	user := &models.User{BaseModel: models.BaseModel{ID: "user-1"}}

	validAccess, _, err := GenerateTokens(user, models.RoleDoctor, tokenConfig(15))
	if err != nil {
		t.Fatalf("GenerateTokens() error = %v", err)
	}
	expiredAccess, _, err := GenerateTokens(user, models.RoleDoctor, tokenConfig(-5))
	if err != nil {
		t.Fatalf("GenerateTokens(expired) error = %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: validAccess, secret: "other_secret"},
		{name: "refresh secret against access token", token: validAccess, secret: "refresh_secret"},
		{name: "expired token", token: expiredAccess, secret: "access_secret"},
		{name: "garbage token", token: "not.a.jwt", secret: "access_secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, tt.secret); err == nil {
				t.Error("ValidateToken() expected an error, got nil")
			}
		})
	}
}
