package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHandle(t *testing.T) {
	tests := []struct {
		name    string
		handle  string
		wantErr bool
	}{
		{"valid simple", "@alice", false},
		{"valid with digits", "@alice42", false},
		{"valid with underscore", "@alice_b", false},
		{"valid with hyphen", "@alice-b", false},
		{"missing at sign", "alice", true},
		{"uppercase letters", "@Alice", true},
		{"too short", "@a", true},
		{"too long", "@" + strings.Repeat("a", 31), true},
		{"leading underscore", "@_alice", true},
		{"trailing hyphen", "@alice-", true},
		{"spaces", "@al ice", true},
		{"second at sign", "@al@ice", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHandle(tt.handle)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail("alice"))
	assert.Error(t, ValidateEmail("alice@"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("alice@example"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Str0ng!passw0rd", false},
		{"too short", "Sh0rt!pw", true},
		{"no uppercase", "str0ng!passw0rd", true},
		{"no lowercase", "STR0NG!PASSW0RD", true},
		{"no digit", "Strong!password", true},
		{"no special", "Str0ngpassword1", true},
		{"too long", "Aa1!" + strings.Repeat("x", 125), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
