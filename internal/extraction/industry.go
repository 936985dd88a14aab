package extraction

import (
	"regexp"
	"strings"
)

type industryKeywords struct {
	name     string
	keywords []string
}

// industries is ordered; on equal counts the earlier industry wins.
var industries = []industryKeywords{
	{"Technology", []string{"software", "developer", "programming", "saas", "cloud", "devops", "engineering", "api", "startup"}},
	{"Finance", []string{"bank", "banking", "finance", "financial", "investment", "fintech", "trading", "accounting", "audit"}},
	{"Healthcare", []string{"hospital", "healthcare", "medical", "clinical", "patient", "pharmaceutical", "nursing", "health"}},
	{"Education", []string{"teacher", "teaching", "curriculum", "students", "school", "lecturer", "edtech", "tutor"}},
	{"Marketing", []string{"marketing", "brand", "seo", "advertising", "campaign", "social media", "content strategy"}},
	{"Sales", []string{"sales", "quota", "pipeline", "crm", "account management", "business development", "revenue"}},
	{"Manufacturing", []string{"manufacturing", "production", "factory", "supply chain", "assembly", "lean", "logistics"}},
	{"Retail", []string{"retail", "e-commerce", "ecommerce", "store", "merchandising", "customer service"}},
	{"Consulting", []string{"consulting", "consultant", "advisory", "client engagements", "strategy"}},
}

var industryPatterns = func() [][]*regexp.Regexp {
	out := make([][]*regexp.Regexp, len(industries))
	for i, ind := range industries {
		for _, kw := range ind.keywords {
			out[i] = append(out[i], regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
	}
	return out
}()

// ExtractIndustry classifies the résumé into the industry whose keywords occur
// most often. It returns "" when no keyword occurs.
func ExtractIndustry(text string) string {
	lower := strings.ToLower(text)
	best, bestCount := "", 0
	for i, patterns := range industryPatterns {
		count := 0
		for _, re := range patterns {
			count += len(re.FindAllStringIndex(lower, -1))
		}
		if count > bestCount {
			best, bestCount = industries[i].name, count
		}
	}
	return best
}
