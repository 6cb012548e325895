package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"student":     RoleStudent,
		"PROFESSOR":   RoleProfessor,
		" College ":   RoleCollege,
		"Admin":       RoleAdmin,
		"super_admin": RoleSuperAdmin,
		"SUPER-ADMIN": RoleSuperAdmin,
		"superadmin":  RoleSuperAdmin,
		"guest":       RoleUnknown,
		"":            RoleUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseRole(raw), raw)
	}
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleStudent.Can(CapApply))
	assert.False(t, RoleStudent.Can(CapCollegeReview))
	assert.True(t, RoleProfessor.Can(CapRecommend))
	assert.False(t, RoleProfessor.Can(CapRanking))

	assert.True(t, RoleCollege.Can(CapRanking))
	assert.True(t, RoleCollege.Can(CapScholarshipScoped))
	assert.False(t, RoleCollege.Can(CapUserManage))

	assert.True(t, RoleAdmin.Can(CapRosterManage))
	assert.True(t, RoleAdmin.Can(CapScholarshipScoped))
	assert.False(t, RoleAdmin.Can(CapAllScholarships))

	assert.True(t, RoleSuperAdmin.Can(CapAllScholarships))
	assert.False(t, RoleSuperAdmin.Can(CapScholarshipScoped))

	assert.False(t, RoleUnknown.Can(CapApply))
	assert.False(t, Role("janitor").Valid())
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Super Administrator", RoleSuperAdmin.Label(LocaleEN))
	assert.Equal(t, "學生", RoleStudent.Label(LocaleZH))
	assert.Equal(t, "教授", RoleProfessor.Label("fr"))
	assert.Equal(t, "janitor", Role("janitor").Label(LocaleEN))
}

func TestRoleIsAdministrative(t *testing.T) {
	assert.True(t, RoleCollege.IsAdministrative())
	assert.True(t, RoleAdmin.IsAdministrative())
	assert.True(t, RoleSuperAdmin.IsAdministrative())
	assert.False(t, RoleProfessor.IsAdministrative())
	assert.False(t, RoleStudent.IsAdministrative())
}
