package bizinfo

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// Normalizer turns raw listing items into canonical Projects. It is a pure
// transformation: the reference time is passed in, never read from a clock.
type Normalizer struct {
	resolver *Resolver
	rules    *Rules
}

func NewNormalizer(rules *Rules) *Normalizer {
	return &Normalizer{resolver: NewResolver(rules), rules: rules}
}

// FromRaw produces exactly one Project from one raw record. The positional
// index participates only in the identifier fallback for records that carry
// no distinguishing content at all.
func (n *Normalizer) FromRaw(raw RawAnnouncement, index int, now time.Time) models.Project {
	res := n.resolver

	title := res.Resolve(raw, FieldTitle)
	org, region := res.OrganizationAndRegion(raw)
	description := CleanText(res.Resolve(raw, FieldDescription))
	supportContent := CleanText(res.Resolve(raw, FieldSupportContent))
	detailURL := res.Resolve(raw, FieldDetailURL)

	startStr, endStr := SplitPeriod(res.Resolve(raw, FieldApplicationPeriod))
	start, end := parseWindow(startStr, endStr)

	tags := SplitTags(res.Resolve(raw, FieldHashtags))

	// The hash input is the record's actual content, not the defaulted
	// values, so a record that carries nothing at all falls through to the
	// positional branch instead of colliding with every other empty record.
	id := res.Resolve(raw, FieldID)
	if id == "" {
		id = contentID(
			res.rawValue(raw, FieldTitle),
			res.rawValue(raw, FieldOrganization),
			res.rawValue(raw, FieldDetailURL),
			index,
		)
	}

	today := now.Format("2006-01-02")

	return models.Project{
		ID:                   id,
		Title:                title,
		Organization:         org,
		SupportType:          n.supportType(tags, raw),
		ApplicationStartDate: startStr,
		ApplicationEndDate:   endStr,
		Region:               region,
		TargetAudience:       res.Resolve(raw, FieldTargetAudience),
		SupportContent:       supportContent,
		ApplicationMethod:    res.Resolve(raw, FieldApplicationMethod),
		Description:          description,
		DetailURL:            detailURL,
		Status:               ClassifyStatus(start, end, now),
		Tags:                 tags,
		CreatedAt:            today,
		UpdatedAt:            today,
	}
}

// SplitTags splits a comma-delimited hashtag string, trimming whitespace and
// dropping empty entries. Order is preserved and duplicates are kept.
func SplitTags(hashtags string) []string {
	if strings.TrimSpace(hashtags) == "" {
		return []string{}
	}
	var tags []string
	for _, raw := range strings.Split(hashtags, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// supportType tries a dedicated support-type hashtag first, then the generic
// category field, then the literal fallback.
func (n *Normalizer) supportType(tags []string, raw RawAnnouncement) string {
	for _, tag := range tags {
		for _, known := range n.rules.SupportTypeTags {
			if tag == known {
				return tag
			}
		}
	}
	if category := n.resolver.Resolve(raw, FieldCategory); category != "" {
		return category
	}
	return "기타"
}

// contentID derives a stable identifier for records the upstream ships
// without an announcement ID. Hashing the identifying content keeps the ID
// stable across pagination and reordering; the positional index only enters
// for records that are entirely empty.
func contentID(title, org, url string, index int) string {
	key := title + "|" + org + "|" + url
	if key == "||" {
		key = fmt.Sprintf("index|%d", index)
	}
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("gen-%016x", h.Sum64())
}
