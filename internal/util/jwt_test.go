package util

import (
	"ielts_tracker_backend/internal/model"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Username: "mei", Email: "mei@example.com"}
	user.ID = 7

	token, err := GenerateJWT(user, "secret-for-tests", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, "secret-for-tests")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "mei" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ParseJWT(token, "another-secret"); err == nil {
		t.Fatalf("token signed with another secret should be rejected")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Username: "mei"}
	token, err := GenerateJWT(user, "secret-for-tests", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseJWT(token, "secret-for-tests"); err == nil {
		t.Fatalf("expired token should be rejected")
	}
}
