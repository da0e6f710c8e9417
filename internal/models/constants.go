package models

// contains all supported interview roles (in lowercase slug form)
var SupportedRoles = map[string]bool{
	"software-engineer": true,
	"data-scientist":    true,
	"ai-engineer":       true,
	"web-developer":     true,
	"cyber-security":    true,
	"devops":            true,
	"analyst":           true,
}

// contains all valid difficulty levels
var ValidDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// contains all valid question types
var ValidQuestionTypes = map[string]bool{
	"technical":  true,
	"behavioral": true,
	"mixed":      true,
}

func SupportedRolesList() []string {
	return []string{"software-engineer", "data-scientist", "ai-engineer", "web-developer", "cyber-security", "devops", "analyst"}
}

func ValidDifficultiesList() []string {
	return []string{"easy", "medium", "hard"}
}

func ValidQuestionTypesList() []string {
	return []string{"technical", "behavioral", "mixed"}
}
