package service

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"tabmark/internal/pkg/logger"
	"tabmark/internal/scraper"
)

// MetadataService resolves page metadata for the bookmark-add dialog. Scrapes
// are slow and sites rarely change their title, so results sit in an expiring
// LRU keyed by URL.
type MetadataService struct {
	scraper *scraper.Scraper
	cache   *expirable.LRU[string, *scraper.PageMeta]
}

func NewMetadataService(sc *scraper.Scraper, cacheSize int, cacheTTL time.Duration) *MetadataService {
	service := &MetadataService{scraper: sc}
	if cacheSize > 0 && cacheTTL > 0 {
		service.cache = expirable.NewLRU[string, *scraper.PageMeta](cacheSize, nil, cacheTTL)
	}
	return service
}

func (s *MetadataService) Fetch(ctx context.Context, rawURL string) (*scraper.PageMeta, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(rawURL); ok {
			logger.FromContext(ctx).Debug("metadata cache hit", zap.String("url", rawURL))
			return cached, nil
		}
	}
	meta, err := s.scraper.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(rawURL, meta)
	}
	return meta, nil
}
