package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *ScholarshipCatalog {
	return &ScholarshipCatalog{
		Scholarships: []Scholarship{
			{ID: 1, Code: "undergraduate_freshman", Name: "學士班新生獎學金", NameEn: "Undergraduate Freshman Scholarship"},
			{ID: 2, Code: "phd", Name: "博士生獎學金"},
		},
		Translations: SubTypeTranslations{
			LocaleZH: {"nstc": "國科會", "moe_1w": "教育部(1萬)"},
			LocaleEN: {"nstc": "NSTC"},
		},
	}
}

func TestGetScholarshipNameUndefinedOrZero(t *testing.T) {
	catalog := testCatalog()
	for _, locale := range []string{LocaleZH, LocaleEN, ""} {
		assert.Equal(t, "-", catalog.GetScholarshipName(0, locale))
	}
	var empty *ScholarshipCatalog
	assert.Equal(t, "-", empty.GetScholarshipName(0, LocaleEN))
	assert.Equal(t, "-", empty.GetScholarshipName(3, LocaleEN))
}

func TestGetScholarshipNameLocale(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, "學士班新生獎學金", catalog.GetScholarshipName(1, LocaleZH))
	assert.Equal(t, "Undergraduate Freshman Scholarship", catalog.GetScholarshipName(1, LocaleEN))
	assert.Equal(t, "博士生獎學金", catalog.GetScholarshipName(2, LocaleEN))
	assert.Equal(t, "-", catalog.GetScholarshipName(99, LocaleZH))
}

func TestGetSubTypeName(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, "國科會", catalog.GetSubTypeName("nstc", LocaleZH))
	assert.Equal(t, "NSTC", catalog.GetSubTypeName("nstc", LocaleEN))
	assert.Equal(t, "moe_1w", catalog.GetSubTypeName("moe_1w", LocaleEN))
	assert.Equal(t, "general", catalog.GetSubTypeName("general", LocaleZH))
	assert.Equal(t, "nstc", catalog.GetSubTypeName("nstc", "ja"))
}

func TestGetScholarshipByIDAndCode(t *testing.T) {
	catalog := testCatalog()
	s := catalog.GetScholarshipByCode("phd")
	require.NotNil(t, s)
	assert.Equal(t, 2, s.ID)
	assert.Nil(t, catalog.GetScholarshipByCode("missing"))
	assert.Nil(t, catalog.GetScholarshipByID(0))
	require.NotNil(t, catalog.GetScholarshipByID(1))
}

func TestHasPermission(t *testing.T) {
	perms := []ScholarshipPermission{{UserID: 7, ScholarshipID: 1}}

	assert.True(t, HasPermission(RoleSuperAdmin, nil, 42))
	assert.True(t, HasPermission(RoleAdmin, perms, 1))
	assert.False(t, HasPermission(RoleAdmin, perms, 2))
	assert.True(t, HasPermission(RoleCollege, perms, 1))
	assert.False(t, HasPermission(RoleCollege, nil, 1))

	for _, role := range []Role{RoleStudent, RoleProfessor, RoleUnknown, Role("guest")} {
		assert.False(t, HasPermission(role, perms, 1), role)
	}
}

func TestFilterScholarshipsByPermission(t *testing.T) {
	list := testCatalog().Scholarships

	assert.Len(t, FilterScholarshipsByPermission(RoleSuperAdmin, nil, list), 2)

	for _, role := range []Role{RoleAdmin, RoleCollege} {
		filtered := FilterScholarshipsByPermission(role, nil, list)
		assert.NotNil(t, filtered)
		assert.Empty(t, filtered)
		assert.Empty(t, FilterScholarshipsByPermission(role, []ScholarshipPermission{}, list))
	}

	scoped := FilterScholarshipsByPermission(RoleCollege, []ScholarshipPermission{{ScholarshipID: 2}}, list)
	require.Len(t, scoped, 1)
	assert.Equal(t, "phd", scoped[0].Code)

	assert.Empty(t, FilterScholarshipsByPermission(RoleStudent, []ScholarshipPermission{{ScholarshipID: 2}}, list))
}
