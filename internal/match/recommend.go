package match

import (
	"strings"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// Recommend returns the subset of projects relevant to the profile: region
// by loose containment (a project region of "전국" or "전체" matches every
// profile), then industry by keyword expansion unless the profile's
// industry is "전체" or empty. This is a relevance filter, not a ranker;
// input order is preserved and nothing is scored.
func Recommend(profile models.UserProfile, projects []models.Project) []models.Project {
	keywords := industryKeywords(profile.Industry)

	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !profileRegionMatches(p.Region, profile.Region) {
			continue
		}
		if keywords != nil && !containsAnyKeyword(projectText(p), keywords) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func industryKeywords(industry string) []string {
	industry = strings.TrimSpace(industry)
	if industry == "" || industry == "전체" {
		return nil
	}
	return KeywordsForIndustry(industry)
}

func profileRegionMatches(projectRegion, profileRegion string) bool {
	if projectRegion == "전국" || projectRegion == "전체" {
		return true
	}
	if strings.TrimSpace(profileRegion) == "" {
		return true
	}
	return RegionsOverlap(projectRegion, profileRegion)
}

// projectText concatenates every text surface the industry keywords are
// matched against.
func projectText(p models.Project) string {
	parts := []string{p.Title, strings.Join(p.Tags, " "), p.Description, p.TargetAudience, p.SupportContent}
	return strings.ToLower(strings.Join(parts, " "))
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
