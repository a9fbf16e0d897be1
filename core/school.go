package core

// Classes a student may belong to and a homework may target.
const (
	Class8th  = "8th"
	Class9th  = "9th"
	Class10th = "10th"
)

// Subjects a homework may be assigned for.
const (
	SubjectEnglish = "English"
	SubjectMath    = "Math"
	SubjectScience = "Science"
	SubjectSocial  = "Social"
)

// Account roles. Students see their class's homework; admins assign it;
// superadmins manage accounts.
const (
	RoleAdmin      = "admin"
	RoleStudent    = "student"
	RoleSuperAdmin = "superadmin"
)

var (
	Classes  = []string{Class8th, Class9th, Class10th}
	Subjects = []string{SubjectEnglish, SubjectMath, SubjectScience, SubjectSocial}
	Roles    = []string{RoleAdmin, RoleStudent, RoleSuperAdmin}
)

func contains(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}

func ValidClass(s string) bool   { return contains(Classes, s) }
func ValidSubject(s string) bool { return contains(Subjects, s) }
func ValidRole(s string) bool    { return contains(Roles, s) }
