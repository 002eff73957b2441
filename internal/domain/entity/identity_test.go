package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connecta/identity-service/internal/domain/entity"
)

func TestParseProfileKind(t *testing.T) {
	tests := []struct {
		input string
		want  entity.ProfileKind
		ok    bool
	}{
		{input: "MENTOR", want: entity.ProfileMentor, ok: true},
		{input: "mentor", want: entity.ProfileMentor, ok: true},
		{input: " Mentee ", want: entity.ProfileMentee, ok: true},
		{input: "MENTEE", want: entity.ProfileMentee, ok: true},
		{input: "ADMIN", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := entity.ParseProfileKind(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, entity.RoleMentor, entity.RoleFor(entity.ProfileMentor))
	assert.Equal(t, entity.RoleMentee, entity.RoleFor(entity.ProfileMentee))
}
