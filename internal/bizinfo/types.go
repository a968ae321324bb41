package bizinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// RawAnnouncement is one untrusted item from the listing API. Upstream has
// renamed and dropped fields across versions, so it stays a loose map and
// all shaping happens in the Resolver.
type RawAnnouncement map[string]any

// String returns the trimmed string value under key, coercing JSON numbers
// so numeric IDs survive. Missing or non-scalar values yield "".
func (r RawAnnouncement) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// ListQuery are the parameters of one paged listing request.
type ListQuery struct {
	PageSize     int
	PageIndex    int
	CategoryCode string
	Hashtags     string
}

func (q ListQuery) normalized() ListQuery {
	if q.PageSize <= 0 {
		q.PageSize = 100
	}
	if q.PageIndex <= 0 {
		q.PageIndex = 1
	}
	return q
}

// key identifies a query for caching: same parameters, same cache slot.
func (q ListQuery) key() string {
	q = q.normalized()
	return fmt.Sprintf("cnt=%d&page=%d&lclas=%s&tags=%s", q.PageSize, q.PageIndex, q.CategoryCode, q.Hashtags)
}
