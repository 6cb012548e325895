package models

import "strings"

// Role is a portal role. Capability questions go through the table below
// rather than string comparisons at call sites.
type Role string

const (
	RoleUnknown    Role = ""
	RoleStudent    Role = "student"
	RoleProfessor  Role = "professor"
	RoleCollege    Role = "college"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Capability names an action a role may perform in the portal.
type Capability string

const (
	CapApply             Capability = "apply"
	CapRecommend         Capability = "recommend"
	CapCollegeReview     Capability = "college_review"
	CapRanking           Capability = "ranking"
	CapDistribution      Capability = "distribution"
	CapRosterManage      Capability = "roster_manage"
	CapUserManage        Capability = "user_manage"
	CapConfigManage      Capability = "config_manage"
	CapAuditView         Capability = "audit_view"
	CapEmailManage       Capability = "email_manage"
	CapRelationManage    Capability = "relationship_manage"
	CapScholarshipScoped Capability = "scholarship_scoped"
	CapAllScholarships   Capability = "all_scholarships"
)

var capabilities = map[Role]map[Capability]struct{}{
	RoleStudent: set(
		CapApply,
	),
	RoleProfessor: set(
		CapRecommend,
	),
	RoleCollege: set(
		CapCollegeReview, CapRanking, CapDistribution, CapAuditView, CapScholarshipScoped,
	),
	RoleAdmin: set(
		CapCollegeReview, CapRanking, CapDistribution, CapRosterManage, CapUserManage,
		CapConfigManage, CapAuditView, CapEmailManage, CapRelationManage, CapScholarshipScoped,
	),
	RoleSuperAdmin: set(
		CapCollegeReview, CapRanking, CapDistribution, CapRosterManage, CapUserManage,
		CapConfigManage, CapAuditView, CapEmailManage, CapRelationManage, CapAllScholarships,
	),
}

var roleLabels = map[Role][2]string{
	RoleStudent:    {"學生", "Student"},
	RoleProfessor:  {"教授", "Professor"},
	RoleCollege:    {"學院", "College"},
	RoleAdmin:      {"管理員", "Administrator"},
	RoleSuperAdmin: {"超級管理員", "Super Administrator"},
}

func set(caps ...Capability) map[Capability]struct{} {
	out := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		out[c] = struct{}{}
	}
	return out
}

// ParseRole normalises backend role strings ("ADMIN", "Super_Admin", "superadmin").
func ParseRole(raw string) Role {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == "superadmin" {
		normalized = string(RoleSuperAdmin)
	}
	role := Role(normalized)
	if _, ok := capabilities[role]; ok {
		return role
	}
	return RoleUnknown
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := capabilities[r]
	return ok
}

// Can reports whether r holds capability c.
func (r Role) Can(c Capability) bool {
	caps, ok := capabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

// Label returns the display label for locale ("zh" default, "en").
func (r Role) Label(locale string) string {
	labels, ok := roleLabels[r]
	if !ok {
		return string(r)
	}
	if locale == LocaleEN {
		return labels[1]
	}
	return labels[0]
}

// IsAdministrative reports whether r manages scholarships through explicit
// permission grants or unconditionally.
func (r Role) IsAdministrative() bool {
	return r.Can(CapScholarshipScoped) || r.Can(CapAllScholarships)
}
