package engine

import "github.com/meridianhr/pathfinder/internal/domain"

// The static tables below are versioned data, not branching code. Bump
// tablesVersion whenever their contents change so cached suggestion keys and
// seeded demo data can be traced to a table revision.
const tablesVersion = "2025-08"

// roleCertKey builds the lookup key for the certification table.
func roleCertKey(role, department string) string {
	return Normalize(role) + "|" + Normalize(department)
}

// roleCertifications maps (role, department) to suggested certifications.
var roleCertifications = map[string][]string{
	roleCertKey("employee", "engineering"): {"AWS Certified Developer", "Google Cloud Professional", "Kubernetes (CKA)"},
	roleCertKey("employee", "sales"):       {"Salesforce Certified", "HubSpot Sales", "Negotiation Certification"},
	roleCertKey("employee", "hr"):          {"SHRM-CP", "HR Analytics", "Diversity & Inclusion"},
	roleCertKey("manager", "engineering"):  {"AWS Solutions Architect", "PMP", "Agile Certified"},
	roleCertKey("manager", "sales"):        {"Sales Leadership", "Executive Presence"},
	roleCertKey("hr", "hr"):                {"SHRM-SCP", "Compensation & Benefits", "Talent Acquisition"},
}

// roleCertOrder fixes iteration order for the first-match department fallback.
var roleCertOrder = []string{
	roleCertKey("employee", "engineering"),
	roleCertKey("employee", "sales"),
	roleCertKey("employee", "hr"),
	roleCertKey("manager", "engineering"),
	roleCertKey("manager", "sales"),
	roleCertKey("hr", "hr"),
}

// roleGraph maps a lowercase role-title key to its career path suggestions.
var roleGraph = map[string][]domain.CareerPath{
	"data scientist": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior Data Scientist", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Machine Learning Engineer", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{
			{Title: "Software Engineer", Department: "Engineering"},
			{Title: "Data Engineer", Department: "Information Technology"},
			{Title: "Data Analyst", Department: "Information Technology"},
		}},
	},
	"senior data scientist": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Staff Data Scientist", Department: "Engineering"}, {Title: "Principal Data Scientist", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "ML Engineering Lead", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Engineering Manager", Department: "Engineering"}, {Title: "Data Science Manager", Department: "Engineering"}}},
	},
	"software engineer": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior Software Engineer", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Full Stack Developer", Department: "Engineering"}, {Title: "Backend Engineer", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{
			{Title: "Data Engineer", Department: "Information Technology"},
			{Title: "DevOps Engineer", Department: "Engineering"},
			{Title: "Product Manager", Department: "Product"},
		}},
	},
	"senior software engineer": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Staff Engineer", Department: "Engineering"}, {Title: "Principal Engineer", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Tech Lead", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Engineering Manager", Department: "Engineering"}, {Title: "Architect", Department: "Engineering"}}},
	},
	"senior developer": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Tech Lead", Department: "Engineering"}, {Title: "Staff Engineer", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Principal Developer", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Engineering Manager", Department: "Engineering"}, {Title: "Architect", Department: "Engineering"}, {Title: "Product Manager", Department: "Product"}}},
	},
	"developer": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior Developer", Department: "Engineering"}, {Title: "Senior Software Engineer", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Full Stack Developer", Department: "Engineering"}, {Title: "Backend Developer", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Data Analyst", Department: "Information Technology"}, {Title: "QA Engineer", Department: "Engineering"}}},
	},
	"engineer": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior Engineer", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Software Engineer", Department: "Engineering"}, {Title: "Systems Engineer", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Project Manager", Department: "Engineering"}, {Title: "Technical Lead", Department: "Engineering"}}},
	},
	"engineering": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior Engineer", Department: "Engineering"}, {Title: "Tech Lead", Department: "Engineering"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Software Engineer", Department: "Engineering"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Engineering Manager", Department: "Engineering"}, {Title: "Product Manager", Department: "Product"}}},
	},
	"sales": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior Sales Representative", Department: "Sales"}, {Title: "Sales Lead", Department: "Sales"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Account Executive", Department: "Sales"}, {Title: "Business Development", Department: "Sales"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Sales Manager", Department: "Sales"}, {Title: "Customer Success Manager", Department: "Sales"}}},
	},
	"hr": {
		{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior HR Specialist", Department: "HR"}, {Title: "HR Lead", Department: "HR"}}},
		{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Talent Acquisition", Department: "HR"}, {Title: "HR Business Partner", Department: "HR"}}},
		{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "HR Manager", Department: "HR"}, {Title: "People Operations", Department: "HR"}}},
	},
}

// defaultRoadmap is returned when no graph key matches the resolved role.
var defaultRoadmap = []domain.CareerPath{
	{Category: domain.PathMostCommon, Label: "Most common", NextRoles: []domain.NextRole{{Title: "Senior role in your track", Department: "Your department"}}},
	{Category: domain.PathSimilar, Label: "Similar", NextRoles: []domain.NextRole{{Title: "Related specialist role", Department: "Your department"}}},
	{Category: domain.PathPivot, Label: "Pivot", NextRoles: []domain.NextRole{{Title: "Cross-functional role", Department: "Other department"}}},
}

// keywordRoute maps a query keyword to the document category it boosts.
type keywordRoute struct {
	Keyword  string
	Category domain.DocumentCategory
}

// keywordRoutes is checked in order; every matching route boosts its category.
var keywordRoutes = []keywordRoute{
	{"balance", domain.CategoryLeave},
	{"leave", domain.CategoryLeave},
	{"vacation", domain.CategoryLeave},
	{"course", domain.CategoryLearning},
	{"learning", domain.CategoryLearning},
	{"training", domain.CategoryLearning},
	{"skill", domain.CategoryLearning},
	{"policy", domain.CategoryCompliance},
	{"policies", domain.CategoryCompliance},
	{"compliance", domain.CategoryCompliance},
	{"wellness", domain.CategoryWellness},
	{"stress", domain.CategoryWellness},
	{"health", domain.CategoryWellness},
	{"career", domain.CategoryCareer},
	{"promotion", domain.CategoryCareer},
	{"roadmap", domain.CategoryCareer},
}

// navigationTargets maps a matched category to the dashboard destination the
// caller can suggest alongside the response.
var navigationTargets = map[domain.DocumentCategory]string{
	domain.CategoryLeave:      "/dashboard/leave",
	domain.CategoryLearning:   "/dashboard/learning",
	domain.CategoryCompliance: "/dashboard/compliance",
	domain.CategoryWellness:   "/wellness",
	domain.CategoryCareer:     "/career/roadmap",
}

// Keyword sets driving the path builder's relevance test per role.
var (
	leadershipKeywords = []string{"leadership", "management", "communication", "strategy", "team", "coaching", "delegation"}
	technicalKeywords  = []string{"cloud", "programming", "devops", "security", "data", "architecture", "kubernetes"}
	hrKeywords         = []string{"hr", "compliance", "recruitment", "people", "onboarding", "benefits", "culture"}
	employeeKeywords   = []string{"fundamentals", "basics", "programming", "communication", "productivity", "tools"}
)

// effectiveRoleKeyword maps a free-text current-role keyword to a portal role.
// Checked in order; first match wins.
type effectiveRoleKeyword struct {
	Keyword string
	Role    domain.Role
}

var effectiveRoleKeywords = []effectiveRoleKeyword{
	{"manager", domain.RoleManager},
	{"lead", domain.RoleManager},
	{"senior", domain.RoleEmployee},
	{"engineer", domain.RoleEmployee},
	{"developer", domain.RoleEmployee},
	{"human resources", domain.RoleHR},
	{"hr", domain.RoleHR},
}

// wellnessSnippet is one static wellness/mental-health/work-life entry.
type wellnessSnippet struct {
	Title    string
	Content  string
	Category string
}

var wellnessSnippets = []wellnessSnippet{
	{"Stress management guide", "Techniques for managing workload and stress.", "mental_health"},
	{"Sleep hygiene", "Tips for better sleep and rest.", "wellness"},
	{"Ergonomics at work", "Set up your workspace for comfort and health.", "physical"},
	{"Take short breaks", "Step away from the screen every 90 minutes for a few minutes.", "breaks"},
	{"Stay connected", "Check in with colleagues and maintain social connections.", "work_life"},
	{"Set boundaries", "Define clear work hours and protect personal time.", "work_life"},
	{"Flexible working", "Options for hybrid and remote work.", "work_life"},
	{"Time off", "Use your leave balance and take regular time off.", "work_life"},
}

// faqEntry is a fixed phrase-to-answer pair always present in the corpus.
type faqEntry struct {
	Phrase string
	Answer string
}

var faqEntries = []faqEntry{
	{
		Phrase: "hello hi hey greeting assistant help",
		Answer: "Hello! I'm your assistant. I can help with leave applications, compliance policies, learning recommendations, and dashboard personalization.",
	},
	{
		Phrase: "dashboard personalize customize cards toggle",
		Answer: "You can personalize your dashboard by toggling the cards on or off. Go to the personalization panel on your dashboard to show or hide Leave Status, Learning Recommendations, and Compliance Reminders.",
	},
	{
		Phrase: "password reset account login access",
		Answer: "For account and login issues, contact the IT helpdesk from the portal footer. Password resets are handled by the identity provider, not this assistant.",
	},
}

// Fixed responses used by the retriever's exact-phrase shortcuts and the
// generic fallback.
const (
	applyLeaveResponse = "To apply for leave, go to your dashboard and click on 'Apply for Leave'. Fill in the from date, to date, and reason. Your manager will review and approve it."

	fallbackResponse = "I can help you with leave applications, compliance policies, learning recommendations, and dashboard personalization. What would you like to know?"
)
