package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"community-http-service/internal/domain/models"
	"community-http-service/internal/infrastructure/config"
)

func TestGenerateAndParseToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	user := createUser(t, db, "tenant@example.com", models.RoleTenant)
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %d got %d", user.ID, claims.UserID)
	}
	if claims.Email != "tenant@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != models.RoleTenant {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestParseTokenMalformed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	if _, err := svc.ParseToken("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed got %v", err)
	}
}

func TestParseTokenExpired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	// 手工签发一个早已过期的令牌
	claims := &AuthClaims{
		UserID: 1,
		Email:  "old@example.com",
		Role:   models.RoleTenant,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired got %v", err)
	}
}

func TestParseTokenWrongSignature(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)
	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"}, db)

	user := createUser(t, db, "tenant@example.com", models.RoleTenant)
	token, err := other.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := svc.ParseToken(token); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid got %v", err)
	}
}

func TestParseTokenMissingRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	claims := &AuthClaims{
		UserID: 1,
		Email:  "norole@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.ParseToken(token); !errors.Is(err, ErrTokenMissingRole) {
		t.Fatalf("expected ErrTokenMissingRole got %v", err)
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	user := createUser(t, db, "owner@example.com", models.RoleOwner)

	result, err := svc.Login("owner@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected non-empty token")
	}
	if result.User.ID != user.ID {
		t.Fatalf("expected user id %d got %d", user.ID, result.User.ID)
	}

	claims, err := svc.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != models.RoleOwner {
		t.Fatalf("unexpected role in token: %s", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	createUser(t, db, "owner@example.com", models.RoleOwner)

	if _, err := svc.Login("owner@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	if _, err := svc.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials got %v", err)
	}
}

func TestLoginNoPasswordHash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewJWTService(testConfig(), db)

	user := models.User{Email: "nopass@example.com", Name: "NoPass", Role: models.RoleTenant}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, err := svc.Login("nopass@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials got %v", err)
	}
}
