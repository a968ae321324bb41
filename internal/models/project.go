package models

// ProjectStatus is the derived application-window state of an announcement.
type ProjectStatus string

const (
	StatusUpcoming ProjectStatus = "upcoming"
	StatusOpen     ProjectStatus = "open"
	StatusClosed   ProjectStatus = "closed"
)

// Project is the canonical, fully-defaulted form of one support-program
// announcement. Every string field is non-empty or holds a documented
// placeholder; downstream code never needs nil/missing checks.
type Project struct {
	ID                   string        `json:"id"`
	Title                string        `json:"title"`
	Organization         string        `json:"organization"`
	SupportType          string        `json:"support_type"`
	ApplicationStartDate string        `json:"application_start_date"`
	ApplicationEndDate   string        `json:"application_end_date"`
	Region               string        `json:"region"`
	TargetAudience       string        `json:"target_audience"`
	SupportContent       string        `json:"support_content"`
	ApplicationMethod    string        `json:"application_method"`
	Description          string        `json:"description"`
	DetailURL            string        `json:"detail_url"`
	Status               ProjectStatus `json:"status"`
	Tags                 []string      `json:"tags"`
	CreatedAt            string        `json:"created_at"`
	UpdatedAt            string        `json:"updated_at"`
}

// FilterOptions carries the transient browse criteria. Zero values mean
// "no constraint"; Region/SupportType additionally treat "전체" and Status
// treats "all" as pass-everything.
type FilterOptions struct {
	Keyword     string `json:"keyword"`
	Region      string `json:"region"`
	Status      string `json:"status"`
	SupportType string `json:"support_type"`
}

// StatusCounts summarizes a listing by derived status for the tab bar.
type StatusCounts struct {
	All      int `json:"all"`
	Open     int `json:"open"`
	Upcoming int `json:"upcoming"`
	Closed   int `json:"closed"`
}

// CountByStatus tallies a project collection without filtering it.
func CountByStatus(projects []Project) StatusCounts {
	counts := StatusCounts{All: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case StatusOpen:
			counts.Open++
		case StatusUpcoming:
			counts.Upcoming++
		case StatusClosed:
			counts.Closed++
		}
	}
	return counts
}
