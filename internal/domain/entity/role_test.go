package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Hierarchy(t *testing.T) {
	tests := []struct {
		role     Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleViewer, true},
		{RoleAdmin, RoleEditor, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleEditor, RoleViewer, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{RoleViewer, RoleViewer, true},
		{RoleViewer, RoleEditor, false},
		{Role("superuser"), RoleViewer, false},
		{Role(""), RoleViewer, false},
		{Role("Admin"), RoleViewer, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.required), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.required))
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, role.IsValid(), role.String())
		assert.Positive(t, role.Level())
	}

	assert.False(t, Role("owner").IsValid())
	assert.Zero(t, Role("owner").Level())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&User{Username: "ada", FirstName: "Ada", LastName: "Lovelace"}).DisplayName())
	assert.Equal(t, "Ada", (&User{Username: "ada", FirstName: "Ada"}).DisplayName())
	assert.Equal(t, "ada", (&User{Username: "ada"}).DisplayName())
}

func TestUser_CloneCopiesMetadata(t *testing.T) {
	original := &User{Username: "ada", Metadata: map[string]any{"team": "data"}}

	clone := original.Clone()
	clone.Metadata["team"] = "ops"
	clone.Username = "eve"

	assert.Equal(t, "data", original.Metadata["team"])
	assert.Equal(t, "ada", original.Username)
	assert.Nil(t, (*User)(nil).Clone())
}
