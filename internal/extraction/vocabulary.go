package extraction

import "strings"

// seniorityWords may precede a role noun in a job title.
var seniorityWords = []string{
	"Senior", "Sr.", "Sr", "Junior", "Jr.", "Jr", "Lead", "Principal", "Staff", "Chief", "Head",
	"Associate", "Assistant", "Graduate", "Trainee", "Entry-Level", "Entry Level", "Mid-Level", "Mid Level",
}

// domainWords may sit between the seniority prefix and the role noun.
var domainWords = []string{
	"Software", "Frontend", "Front-End", "Front End", "Backend", "Back-End", "Back End", "Full Stack",
	"Full-Stack", "Fullstack", "Web", "Mobile", "Data", "Machine Learning", "ML", "AI", "DevOps", "Cloud",
	"Site Reliability", "Reliability", "Platform", "Infrastructure", "Systems", "Security", "QA",
	"Quality Assurance", "Test", "Automation", "Product", "Project", "Program", "Engineering", "Marketing",
	"Sales", "Business", "Financial", "Technical", "Tech", "Team", "Solutions", "Network", "Database",
	"UX", "UI", "UI/UX", "Graphic", "Research", "Embedded", "Game", "iOS", "Android", "Java", "Python",
	"JavaScript", "Go", "Golang", ".NET", "React", "Node.js", "Operations", "Customer Success", "Support",
	"HR", "Human Resources", "Content", "Digital", "Growth", "Account", "IT", "Application", "Applications",
	"Computer Vision", "NLP", "Analytics", "Blockchain", "Hardware", "Electrical", "Mechanical", "Civil",
	"Release", "Build", "Integration", "Implementation", "Design", "Visual", "Creative", "Scrum", "Delivery",
}

// roleNouns end a job title.
var roleNouns = []string{
	"Engineer", "Developer", "Programmer", "Architect", "Manager", "Analyst", "Designer", "Scientist",
	"Consultant", "Administrator", "Specialist", "Lead", "Director", "Coordinator", "Officer",
	"Technician", "Intern", "Accountant", "Strategist", "Writer", "Editor", "Marketer", "Recruiter",
	"Researcher", "Tester", "Owner", "Master", "Executive", "Representative", "Advocate", "Evangelist",
}

var (
	roleWordSet      = lowerSet(roleNouns)
	seniorityWordSet = lowerSet([]string{"senior", "sr", "junior", "jr", "principal", "staff", "chief", "head", "intern", "trainee"})
)

func lowerSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = true
	}
	return m
}

// isRoleWord reports whether w is a role noun such as "engineer".
func isRoleWord(w string) bool {
	return roleWordSet[strings.ToLower(strings.Trim(w, "."))]
}

// isSeniorityWord reports whether w is a seniority marker such as "senior".
func isSeniorityWord(w string) bool {
	return seniorityWordSet[strings.ToLower(strings.Trim(w, "."))]
}
