// Package match holds the pure filtering and recommendation logic applied
// to normalized project collections. Nothing here mutates its inputs or
// keeps state, so calls are safe from any number of goroutines.
package match

import (
	"strings"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// Filter applies all provided predicates with AND semantics, preserving
// relative order. Absent criteria pass everything, as do the sentinel
// values "전체" (region, support type) and "all" (status).
func Filter(projects []models.Project, opts models.FilterOptions) []models.Project {
	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesKeyword(p, opts.Keyword) {
			continue
		}
		if !matchesRegion(p.Region, opts.Region) {
			continue
		}
		if opts.Status != "" && opts.Status != "all" && string(p.Status) != opts.Status {
			continue
		}
		if opts.SupportType != "" && opts.SupportType != "전체" && p.SupportType != opts.SupportType {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesKeyword(p models.Project, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), keyword) ||
		strings.Contains(strings.ToLower(p.Organization), keyword) ||
		strings.Contains(strings.ToLower(p.Description), keyword) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}

func matchesRegion(projectRegion, filterRegion string) bool {
	if filterRegion == "" || filterRegion == "전체" {
		return true
	}
	// Nationwide announcements apply everywhere.
	if projectRegion == "전국" {
		return true
	}
	return RegionsOverlap(projectRegion, filterRegion)
}

// RegionsOverlap is the loose containment rule: two region strings match
// when they are equal or either contains the other, so "서울" matches
// "서울특별시" in both directions.
func RegionsOverlap(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
