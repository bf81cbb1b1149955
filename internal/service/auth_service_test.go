package service

import (
	"errors"
	"ielts_tracker_backend/internal/util"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.users, env.cfg)

	req := RegisterRequest{
		Name:            "Mei Chen",
		Username:        "mei",
		Email:           "Mei@Example.com",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
	}
	user, err := svc.Register(req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "mei@example.com" || user.Password == req.Password {
		t.Fatalf("email should be normalised and password hashed: %+v", user)
	}

	if _, err := svc.Register(req); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("duplicate email: want ErrEmailRegistered got %v", err)
	}
	req.Email = "other@example.com"
	if _, err := svc.Register(req); !errors.Is(err, util.ErrUsernameTaken) {
		t.Fatalf("duplicate username: want ErrUsernameTaken got %v", err)
	}

	for _, login := range []string{"mei", "mei@example.com"} {
		res, err := svc.Login(login, "Secret123")
		if err != nil {
			t.Fatalf("login %s: %v", login, err)
		}
		claims, err := util.ParseJWT(res.Token, env.cfg.JWT.Secret)
		if err != nil || claims.UserID != user.ID {
			t.Fatalf("token for %s: claims %+v err %v", login, claims, err)
		}
		if res.User.LastLogin == nil {
			t.Fatalf("last login not recorded")
		}
	}

	if _, err := svc.Login("mei", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials got %v", err)
	}
	if _, err := svc.Login("nobody", "Secret123"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown user: want ErrInvalidCredentials got %v", err)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.users, env.cfg)

	_, err := svc.Register(RegisterRequest{Name: "a", Username: "abc", Email: "a@example.com", Password: "password", ConfirmPassword: "password"})
	if !errors.Is(err, util.ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}
}

func TestChangePasswordAndProfile(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	auth := NewAuthService(env.users, env.cfg)
	users := NewUserService(env.users)

	user, err := auth.Register(RegisterRequest{Name: "Tom", Username: "tom", Email: "tom@example.com", Password: "Secret123", ConfirmPassword: "Secret123"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	profile, err := users.UpdateProfile(user.ID, UpdateProfileRequest{
		Name:        "Tom B",
		Email:       "tom@example.com",
		TargetScore: ptr(7.5),
		TestDate:    "2026-11-23",
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if profile.DaysUntilTest == nil || *profile.DaysUntilTest != 37 {
		t.Fatalf("days until test: got %v", profile.DaysUntilTest)
	}

	if _, err := users.UpdateProfile(user.ID, UpdateProfileRequest{Name: "Tom", Email: "tom@example.com", TargetScore: ptr(7.3)}); !errors.Is(err, util.ErrInvalidScore) {
		t.Fatalf("invalid target: want ErrInvalidScore got %v", err)
	}

	err = users.ChangePassword(user.ID, ChangePasswordRequest{CurrentPassword: "bad", NewPassword: "Newpass123", ConfirmPassword: "Newpass123"})
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong current password: got %v", err)
	}
	if err := users.ChangePassword(user.ID, ChangePasswordRequest{CurrentPassword: "Secret123", NewPassword: "Newpass123", ConfirmPassword: "Newpass123"}); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := auth.Login("tom", "Newpass123"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}
