package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user := NewUser("alice", "alice@example.com")

	require.NotNil(t, user)
	assert.Zero(t, user.ID, "new users have no ID until the store assigns one")
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsPersisted())
}

func TestUser_IsPersisted(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "zero id", user: &User{Username: "bob"}, want: false},
		{name: "assigned id", user: &User{ID: 42, Username: "bob"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsPersisted())
		})
	}
}

func TestUser_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(User{ID: 7, Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":7,"username":"alice","email":"alice@example.com"}`, string(data))
}
