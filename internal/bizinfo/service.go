package bizinfo

import (
	"context"
	"log"
	"time"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

const (
	// DefaultFreshness is how long a fetched listing is served without a
	// new network call.
	DefaultFreshness = 5 * time.Minute
	// DefaultRetries is the number of automatic re-attempts after a failed
	// fetch before the error is surfaced.
	DefaultRetries = 2
)

// Service is the caller-facing listing surface: fetch-through-cache with a
// freshness window and bounded retry. Normalization and filtering stay pure;
// this is the only stateful piece.
type Service struct {
	client  *Client
	cache   *listingCache
	retries int
}

func NewService(client *Client) *Service {
	return &Service{
		client:  client,
		cache:   newListingCache(DefaultFreshness),
		retries: DefaultRetries,
	}
}

// WithFreshness overrides the cache window; zero disables caching entirely.
func (s *Service) WithFreshness(ttl time.Duration) *Service {
	s.cache = newListingCache(ttl)
	return s
}

// Projects returns the normalized listing for the query, served from cache
// within the freshness window. On a miss it fetches with up to s.retries
// automatic re-attempts; exhaustion surfaces the last error.
func (s *Service) Projects(ctx context.Context, q ListQuery) ([]models.Project, error) {
	key := q.key()

	if projects, ok := s.cache.Fresh(key); ok {
		return projects, nil
	}

	gen := s.cache.Begin(key)

	var lastErr error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				s.cache.Fail(key, gen, ctx.Err())
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
			log.Printf("[bizinfo] retry %d/%d for %s: %v", attempt, s.retries, key, lastErr)
		}

		projects, err := s.client.FetchProjects(ctx, q)
		if err != nil {
			lastErr = err
			continue
		}

		s.cache.Complete(key, gen, projects)
		return projects, nil
	}

	s.cache.Fail(key, gen, lastErr)
	return nil, lastErr
}

// FindByID looks a project up within the current listing for the query.
func (s *Service) FindByID(ctx context.Context, q ListQuery, id string) (models.Project, bool, error) {
	projects, err := s.Projects(ctx, q)
	if err != nil {
		return models.Project{}, false, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, true, nil
		}
	}
	return models.Project{}, false, nil
}

// CacheState exposes the cache entry state for a query.
func (s *Service) CacheState(q ListQuery) CacheState {
	return s.cache.State(q.key())
}
