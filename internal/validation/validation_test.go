package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_PasswordRules(t *testing.T) {
	v := New()

	valid := RegisterRequest{
		Email:           "alice@example.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
	}
	assert.NoError(t, v.Struct(valid))

	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{name: "too short", password: "Ab1!", wantMsg: "Password must be at least 8 characters"},
		{name: "missing lowercase", password: "ABC123!@", wantMsg: "Password must contain a lowercase letter"},
		{name: "missing uppercase", password: "abc123!@", wantMsg: "Password must contain an uppercase letter"},
		{name: "missing digit", password: "Abcdefg!", wantMsg: "Password must contain a number"},
		{name: "missing symbol", password: "Abc12345", wantMsg: "Password must contain a special character"},
		{name: "too long", password: "Ab1!" + strings.Repeat("x", 126), wantMsg: "Must be at most 128 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{
				Email:           "alice@example.com",
				Password:        tt.password,
				ConfirmPassword: tt.password,
			}
			err := v.Struct(req)
			assert.Error(t, err)

			fields := FieldErrors(err)
			assert.Contains(t, fields, "password")
			assert.Contains(t, fields["password"], tt.wantMsg)
		})
	}
}

func TestRegisterRequest_ConfirmMismatchReportedOnConfirmField(t *testing.T) {
	v := New()

	req := RegisterRequest{
		Email:           "alice@example.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!#",
	}
	err := v.Struct(req)
	assert.Error(t, err)

	fields := FieldErrors(err)
	assert.NotContains(t, fields, "password")
	assert.Equal(t, []string{"Passwords do not match"}, fields["confirmPassword"])
}

func TestRegisterRequest_EmailRules(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		email   string
		wantMsg string
	}{
		{name: "empty", email: "", wantMsg: "Email is required"},
		{name: "not an address", email: "not-an-email", wantMsg: "Invalid email"},
		{name: "too long", email: strings.Repeat("a", 250) + "@example.com", wantMsg: "Must be at most 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RegisterRequest{
				Email:           tt.email,
				Password:        "Abc123!@",
				ConfirmPassword: "Abc123!@",
			}
			err := v.Struct(req)
			assert.Error(t, err)

			fields := FieldErrors(err)
			assert.Contains(t, fields["email"], tt.wantMsg)
		})
	}
}

func TestLoginRequest_WeakPasswordAccepted(t *testing.T) {
	v := New()

	// Accounts may predate the strength rules; login only requires a
	// non-empty password of bounded length.
	assert.NoError(t, v.Struct(LoginRequest{Email: "alice@example.com", Password: "weak"}))

	err := v.Struct(LoginRequest{Email: "alice@example.com", Password: ""})
	assert.Error(t, err)
	fields := FieldErrors(err)
	assert.Equal(t, []string{"Password is required"}, fields["password"])

	err = v.Struct(LoginRequest{Email: "alice@example.com", Password: strings.Repeat("x", 129)})
	assert.Error(t, err)
	fields = FieldErrors(err)
	assert.Contains(t, fields["password"], "Must be at most 128 characters")
}
