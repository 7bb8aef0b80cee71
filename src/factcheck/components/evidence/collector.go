package evidence

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/factlens/factscore/src/factcheck/types"
)

// Admitter gates calls to the quota-limited video provider.
type Admitter interface {
	Admit(ctx context.Context) bool
}

// Collector fans a claim out to every configured evidence provider and
// assembles the normalized EvidenceSet. The news provider is mandatory; the
// rest degrade to an empty category with a recorded reason.
type Collector struct {
	news     *NewsClient
	encyc    *EncyclopediaClient
	registry *RegistryClient
	video    *VideoClient
	quota    Admitter
	log      *zap.SugaredLogger
}

func NewCollector(news *NewsClient, encyc *EncyclopediaClient, registry *RegistryClient, video *VideoClient, quota Admitter, log *zap.SugaredLogger) *Collector {
	return &Collector{news: news, encyc: encyc, registry: registry, video: video, quota: quota, log: log}
}

// Collect queries all providers concurrently; they share no state. The
// returned error is non-nil only when the news provider failed.
func (c *Collector) Collect(ctx context.Context, claim string, includeVideo bool) (types.EvidenceSet, []types.Degradation, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		set      = make(types.EvidenceSet)
		degraded []types.Degradation
		newsErr  error
	)

	record := func(cat types.Category, items []types.EvidenceItem, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			c.log.Warnw("evidence provider degraded", "category", cat, "error", err)
			degraded = append(degraded, types.Degradation{Category: cat, Reason: err.Error()})
			set[cat] = nil
			return
		}
		set[cat] = items
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		items, err := c.news.Search(ctx, claim)
		if err != nil {
			mu.Lock()
			newsErr = fmt.Errorf("primary provider: %w", err)
			mu.Unlock()
			return
		}
		record(types.CategoryNews, items, nil)
	}()

	if c.encyc != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.encyc.Search(ctx, claim)
			record(types.CategoryEncyclopedia, items, err)
		}()
	}

	if c.registry != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := c.registry.Search(ctx, claim)
			record(types.CategoryFactCheck, items, err)
		}()
	}

	if includeVideo && c.video != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.quota != nil && !c.quota.Admit(ctx) {
				record(types.CategoryVideo, nil, fmt.Errorf("daily video quota exhausted"))
				return
			}
			items, err := c.video.Search(ctx, claim)
			record(types.CategoryVideo, items, err)
		}()
	}

	wg.Wait()

	if newsErr != nil {
		return nil, nil, newsErr
	}
	return set, degraded, nil
}
