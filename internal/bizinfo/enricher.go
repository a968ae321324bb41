package bizinfo

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// DetailEnricher scrapes an announcement's detail page to fill fields the
// listing API omits. Only placeholder values are replaced; fields the API
// populated are left alone.
type DetailEnricher struct {
	UserAgent      string
	RequestTimeout time.Duration
	DomainDelay    time.Duration
}

func NewDetailEnricher() *DetailEnricher {
	return &DetailEnricher{
		UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		RequestTimeout: 30 * time.Second,
		DomainDelay:    1 * time.Second,
	}
}

// Enrich visits the project's detail page and fills ApplicationMethod and
// TargetAudience when they still hold resolver defaults. Scrape failures
// propagate; the project is left untouched on error.
func (e *DetailEnricher) Enrich(p *models.Project) error {
	parsed, err := url.Parse(p.DetailURL)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("invalid detail URL %q", p.DetailURL)
	}

	c := colly.NewCollector(
		colly.UserAgent(e.UserAgent),
		colly.AllowedDomains(parsed.Host),
		colly.DetectCharset(),
	)
	c.SetRequestTimeout(e.RequestTimeout)
	c.Limit(&colly.LimitRule{DomainGlob: "*", Delay: e.DomainDelay})

	methodDefault := defaultFor(FieldApplicationMethod)
	audienceDefault := defaultFor(FieldTargetAudience)

	c.OnHTML("th, dt", func(el *colly.HTMLElement) {
		label := strings.TrimSpace(el.Text)
		value := CleanText(el.DOM.Next().Text())
		if value == "" {
			return
		}
		switch {
		case strings.Contains(label, "신청방법") && p.ApplicationMethod == methodDefault:
			p.ApplicationMethod = value
		case strings.Contains(label, "지원대상") && p.TargetAudience == audienceDefault:
			p.TargetAudience = value
		}
	})

	var scrapeErr error
	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = fmt.Errorf("detail fetch failed (%d): %w", r.StatusCode, err)
	})

	if err := c.Visit(p.DetailURL); err != nil {
		return fmt.Errorf("visiting detail page: %w", err)
	}
	c.Wait()

	return scrapeErr
}

func defaultFor(field string) string {
	for _, chain := range DefaultRules().Fields {
		if chain.Name == field {
			return chain.Default
		}
	}
	return ""
}
