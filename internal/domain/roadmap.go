package domain

// PathCategory classifies a career path suggestion
type PathCategory string

const (
	PathMostCommon PathCategory = "most_common"
	PathSimilar    PathCategory = "similar"
	PathPivot      PathCategory = "pivot"
)

// NextRole is one suggested next step on a career path
type NextRole struct {
	Title      string
	Department string
}

// CareerPath groups next-role suggestions under a path category
type CareerPath struct {
	Category  PathCategory
	Label     string
	NextRoles []NextRole
}

// RoleInfo identifies the resolved current role of a profile
type RoleInfo struct {
	Title      string
	Department string
}

// Roadmap is the resolved career trajectory for a profile
type Roadmap struct {
	CurrentRole RoleInfo
	Paths       []CareerPath
}
