package models

// Supported display locales.
const (
	LocaleZH = "zh"
	LocaleEN = "en"
)

// UnknownName is rendered when a lookup has nothing to show.
const UnknownName = "-"

// Scholarship mirrors the backend scholarship type DTO.
type Scholarship struct {
	ID          int      `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	NameEn      string   `json:"name_en,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Status      string   `json:"status,omitempty"`
	SubTypes    []string `json:"sub_type_list,omitempty"`
}

// DisplayName returns the locale specific name.
func (s Scholarship) DisplayName(locale string) string {
	if locale == LocaleEN && s.NameEn != "" {
		return s.NameEn
	}
	if s.Name != "" {
		return s.Name
	}
	return UnknownName
}

// SubTypeTranslations maps locale -> sub-type code -> label.
type SubTypeTranslations map[string]map[string]string

// ScholarshipPermission grants an admin or college user access to a scholarship.
type ScholarshipPermission struct {
	ID                int    `json:"id"`
	UserID            int    `json:"user_id"`
	ScholarshipID     int    `json:"scholarship_id"`
	ScholarshipName   string `json:"scholarship_name,omitempty"`
	ScholarshipNameEn string `json:"scholarship_name_en,omitempty"`
	Comment           string `json:"comment,omitempty"`
}

// ScholarshipCatalog bundles cached reference data and answers lookups
// without ever failing: unknown ids render "-", unknown codes echo back.
type ScholarshipCatalog struct {
	Scholarships []Scholarship       `json:"scholarships"`
	Translations SubTypeTranslations `json:"translations"`
}

// GetScholarshipName returns the name for id; zero means "no id".
func (c *ScholarshipCatalog) GetScholarshipName(id int, locale string) string {
	if id == 0 {
		return UnknownName
	}
	s := c.GetScholarshipByID(id)
	if s == nil {
		return UnknownName
	}
	return s.DisplayName(locale)
}

// GetSubTypeName translates a sub-type code, echoing it when untranslated.
func (c *ScholarshipCatalog) GetSubTypeName(code, locale string) string {
	if c == nil || code == "" {
		return code
	}
	if byCode, ok := c.Translations[locale]; ok {
		if label, ok := byCode[code]; ok && label != "" {
			return label
		}
	}
	return code
}

// GetScholarshipByID returns nil when id is unknown.
func (c *ScholarshipCatalog) GetScholarshipByID(id int) *Scholarship {
	if c == nil || id == 0 {
		return nil
	}
	for i := range c.Scholarships {
		if c.Scholarships[i].ID == id {
			return &c.Scholarships[i]
		}
	}
	return nil
}

// GetScholarshipByCode returns nil when code is unknown.
func (c *ScholarshipCatalog) GetScholarshipByCode(code string) *Scholarship {
	if c == nil || code == "" {
		return nil
	}
	for i := range c.Scholarships {
		if c.Scholarships[i].Code == code {
			return &c.Scholarships[i]
		}
	}
	return nil
}

// HasPermission answers whether role may act on scholarshipID. Super admins
// match everything; admins and colleges need an explicit grant; everyone
// else is denied.
func HasPermission(role Role, permissions []ScholarshipPermission, scholarshipID int) bool {
	if role.Can(CapAllScholarships) {
		return true
	}
	if !role.Can(CapScholarshipScoped) || len(permissions) == 0 {
		return false
	}
	for _, p := range permissions {
		if p.ScholarshipID == scholarshipID {
			return true
		}
	}
	return false
}

// FilterScholarshipsByPermission keeps the scholarships role may see. An
// empty grant list for a scoped role yields nothing.
func FilterScholarshipsByPermission(role Role, permissions []ScholarshipPermission, scholarships []Scholarship) []Scholarship {
	if role.Can(CapAllScholarships) {
		out := make([]Scholarship, len(scholarships))
		copy(out, scholarships)
		return out
	}
	out := make([]Scholarship, 0)
	if !role.Can(CapScholarshipScoped) || len(permissions) == 0 {
		return out
	}
	for _, s := range scholarships {
		if HasPermission(role, permissions, s.ID) {
			out = append(out, s)
		}
	}
	return out
}
