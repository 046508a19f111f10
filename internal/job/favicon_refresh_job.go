package job

import (
	"context"

	"go.uber.org/zap"

	"tabmark/internal/pkg/logger"
	"tabmark/internal/pkg/timeutil"
	"tabmark/internal/repo"
	"tabmark/internal/scraper"
)

// FaviconRefreshJob backfills favicons for bookmarks saved without one, a
// batch per run. A site that fails to scrape is simply retried next run.
type FaviconRefreshJob struct {
	bookmarks *repo.BookmarkRepo
	scraper   *scraper.Scraper
	batchSize uint
}

func NewFaviconRefreshJob(bookmarks *repo.BookmarkRepo, sc *scraper.Scraper, batchSize uint) *FaviconRefreshJob {
	if batchSize == 0 {
		batchSize = 20
	}
	return &FaviconRefreshJob{bookmarks: bookmarks, scraper: sc, batchSize: batchSize}
}

func (j *FaviconRefreshJob) Name() string {
	return "favicon_refresh"
}

func (j *FaviconRefreshJob) Run(ctx context.Context) error {
	pending, err := j.bookmarks.ListMissingFavicon(ctx, j.batchSize)
	if err != nil {
		return err
	}
	updated := 0
	for _, bookmark := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		meta, err := j.scraper.Fetch(ctx, bookmark.URL)
		if err != nil || meta.Favicon == "" {
			logger.FromContext(ctx).Debug("favicon fetch failed",
				zap.Int64("bookmark_id", bookmark.ID),
				zap.String("url", bookmark.URL),
				zap.Error(err),
			)
			continue
		}
		fields := map[string]interface{}{
			"favicon": meta.Favicon,
			"mtime":   timeutil.NowUnix(),
		}
		if err := j.bookmarks.Update(ctx, bookmark.ID, fields); err != nil {
			logger.FromContext(ctx).Warn("favicon update failed",
				zap.Int64("bookmark_id", bookmark.ID),
				zap.Error(err),
			)
			continue
		}
		updated++
	}
	if updated > 0 {
		logger.FromContext(ctx).Info("favicons refreshed", zap.Int("updated", updated), zap.Int("scanned", len(pending)))
	}
	return nil
}
