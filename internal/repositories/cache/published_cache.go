// Package cache decorates the review repository with an in-process cache of carousel queries.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/customer_reviews_app/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_reviews_app/internal/core/ports/repositories"
	"github.com/SscSPs/customer_reviews_app/internal/platform/metrics"
	gocache "github.com/patrickmn/go-cache"
)

// PublishedReviewCache caches non-empty QueryPublished results per limit. Every write
// through the cache flushes it; writes from other processes are seen once entries expire,
// so it is meant for deployments with a single serving process.
type PublishedReviewCache struct {
	portsrepo.ReviewRepositoryFacade
	cache *gocache.Cache
}

var _ portsrepo.ReviewRepositoryFacade = (*PublishedReviewCache)(nil)

// NewPublishedReviewCache wraps repo. A non-positive ttl disables caching and returns repo unchanged.
func NewPublishedReviewCache(repo portsrepo.ReviewRepositoryFacade, ttl time.Duration) portsrepo.ReviewRepositoryFacade {
	if ttl <= 0 {
		return repo
	}
	return &PublishedReviewCache{
		ReviewRepositoryFacade: repo,
		cache:                  gocache.New(ttl, ttl*2),
	}
}

func publishedKey(limit int) string {
	return fmt.Sprintf("published:%d", limit)
}

func (c *PublishedReviewCache) QueryPublished(ctx context.Context, limit int) ([]domain.Review, error) {
	key := publishedKey(limit)
	if cached, found := c.cache.Get(key); found {
		metrics.RecordCacheLookup(true)
		return cloneReviews(cached.([]domain.Review)), nil
	}
	metrics.RecordCacheLookup(false)

	reviews, err := c.ReviewRepositoryFacade.QueryPublished(ctx, limit)
	if err != nil {
		return nil, err
	}
	if len(reviews) > 0 {
		c.cache.Set(key, cloneReviews(reviews), gocache.DefaultExpiration)
	}
	return reviews, nil
}

func (c *PublishedReviewCache) UpdateReviewContent(ctx context.Context, review domain.Review) error {
	if err := c.ReviewRepositoryFacade.UpdateReviewContent(ctx, review); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

func (c *PublishedReviewCache) DeleteReview(ctx context.Context, reviewID string) error {
	if err := c.ReviewRepositoryFacade.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

func (c *PublishedReviewCache) TransitionState(ctx context.Context, reviewID string, action domain.ModerationAction, at time.Time) (*domain.Review, error) {
	review, err := c.ReviewRepositoryFacade.TransitionState(ctx, reviewID, action, at)
	if err != nil {
		return nil, err
	}
	c.cache.Flush()
	return review, nil
}

// cloneReviews copies the slice and the PublishedAt pointers so callers cannot mutate cached entries.
func cloneReviews(in []domain.Review) []domain.Review {
	out := make([]domain.Review, len(in))
	copy(out, in)
	for i := range out {
		if out[i].PublishedAt != nil {
			published := *out[i].PublishedAt
			out[i].PublishedAt = &published
		}
	}
	return out
}
