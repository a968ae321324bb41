package bizinfo

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// DefaultBaseURL is the public listing endpoint of the Bizinfo open-data API.
const DefaultBaseURL = "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"

// Client issues paged listing requests and normalizes every returned item.
// It performs no retries itself; bounded retry lives in the Service.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	AccessKey  string

	// Now supplies the normalization reference time; tests pin it.
	Now func() time.Time

	normalizer *Normalizer
}

func NewClient(baseURL, accessKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
		AccessKey:  accessKey,
		Now:        time.Now,
		normalizer: NewNormalizer(DefaultRules()),
	}
}

// FetchProjects requests one page and returns the normalized projects in
// upstream order. Transport failures and non-success statuses propagate as
// errors; an envelope without items is an empty, valid page.
func (c *Client) FetchProjects(ctx context.Context, q ListQuery) ([]models.Project, error) {
	q = q.normalized()

	params := url.Values{}
	params.Set("crtfcKey", c.AccessKey)
	params.Set("dataType", "json")
	params.Set("searchCnt", strconv.Itoa(q.PageSize))
	params.Set("pageIndex", strconv.Itoa(q.PageIndex))
	if q.CategoryCode != "" {
		params.Set("searchLclasId", q.CategoryCode)
	}
	if q.Hashtags != "" {
		params.Set("hashtags", q.Hashtags)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("listing API returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	items, err := ExtractItems(body)
	if err != nil {
		return nil, err
	}

	log.Printf("[bizinfo] page=%d size=%d lclas=%q items=%d", q.PageIndex, q.PageSize, q.CategoryCode, len(items))

	now := c.Now()
	projects := make([]models.Project, 0, len(items))
	for i, item := range items {
		projects = append(projects, c.normalizer.FromRaw(item, i, now))
	}
	return projects, nil
}

// HasMore reports whether another page is likely available: a short page
// signals exhaustion.
func HasMore(returned, pageSize int) bool {
	return returned >= pageSize && pageSize > 0
}

// Paginate partitions an in-memory collection into 1-based pages for
// infinite-scroll consumption. Out-of-range pages are empty; more reports
// whether a later page exists.
func Paginate(projects []models.Project, page, size int) (items []models.Project, more bool) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(projects) {
		return []models.Project{}, false
	}
	end := start + size
	if end > len(projects) {
		end = len(projects)
	}
	return projects[start:end], end < len(projects)
}
