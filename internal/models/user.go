package models

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType enumerates the registration form of the user's business.
type BusinessType string

const (
	BusinessPreStartup  BusinessType = "pre-startup"
	BusinessIndividual  BusinessType = "individual"
	BusinessCorporation BusinessType = "corporation"
)

// UserProfile is the per-user matching profile. It is created or replaced
// wholesale on every save; there is no partial update.
type UserProfile struct {
	Region        string       `json:"region" validate:"required"`
	Industry      string       `json:"industry" validate:"required"`
	BusinessType  BusinessType `json:"business_type" validate:"required,oneof=pre-startup individual corporation"`
	RevenueRange  string       `json:"revenue_range,omitempty"`
	FoundedYear   int          `json:"founded_year,omitempty" validate:"omitempty,gte=1900,lte=2100"`
	EmployeeCount int          `json:"employee_count,omitempty" validate:"omitempty,gte=0"`
	UpdatedAt     time.Time    `json:"updated_at,omitempty"`
}

// Bookmark is a per-user, per-project association carrying a denormalized
// snapshot of the project so the bookmark list renders without re-fetching
// the live listing.
type Bookmark struct {
	UserID    uuid.UUID        `json:"user_id"`
	ProjectID string           `json:"project_id"`
	Snapshot  BookmarkSnapshot `json:"snapshot"`
	CreatedAt time.Time        `json:"created_at"`
}

// BookmarkSnapshot holds the key project fields frozen at bookmark time.
type BookmarkSnapshot struct {
	Title              string        `json:"title"`
	Organization       string        `json:"organization"`
	Region             string        `json:"region"`
	SupportType        string        `json:"support_type"`
	Status             ProjectStatus `json:"status"`
	ApplicationEndDate string        `json:"application_end_date"`
	DetailURL          string        `json:"detail_url"`
	Tags               []string      `json:"tags"`
}

// SnapshotOf extracts the bookmark snapshot from a live project.
func SnapshotOf(p Project) BookmarkSnapshot {
	return BookmarkSnapshot{
		Title:              p.Title,
		Organization:       p.Organization,
		Region:             p.Region,
		SupportType:        p.SupportType,
		Status:             p.Status,
		ApplicationEndDate: p.ApplicationEndDate,
		DetailURL:          p.DetailURL,
		Tags:               p.Tags,
	}
}
