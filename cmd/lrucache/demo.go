package lrucache

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/liliang-cn/lrucache/pkg/cache"
	"github.com/liliang-cn/lrucache/pkg/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// session is the payload the demo host caches: the "session store" sketch
// a real service would put in front of its session database.
type session struct {
	ID      string
	User    string
	LoginAt time.Time
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a concurrent session-store workload against a shared cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithModule("demo")

		c, err := cache.New[string, session](cfg.Cache.Capacity,
			cache.WithOnEvict[string, session](func(key string, s session) {
				logger.Debug("session evicted", "id", key, "user", s.User)
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}

		// A fixed universe of session IDs, larger than the cache, so the
		// workload produces genuine capacity pressure and misses.
		ids := make([]string, cfg.Demo.Sessions)
		for i := range ids {
			ids[i] = uuid.NewString()
		}

		logger.Info("starting workload",
			"capacity", cfg.Cache.Capacity,
			"sessions", cfg.Demo.Sessions,
			"workers", cfg.Demo.Workers,
			"operations", cfg.Demo.Operations,
		)

		start := time.Now()

		var g errgroup.Group
		perWorker := cfg.Demo.Operations / cfg.Demo.Workers
		for w := 0; w < cfg.Demo.Workers; w++ {
			worker := w
			g.Go(func() error {
				for i := 0; i < perWorker; i++ {
					id := ids[rand.IntN(len(ids))]
					if _, ok := c.Get(id); ok {
						continue
					}
					// Miss: establish the session, as a host would after
					// authenticating against its backing store.
					c.Put(id, session{
						ID:      id,
						User:    fmt.Sprintf("user-%d-%d", worker, i),
						LoginAt: time.Now(),
					})
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		elapsed := time.Since(start)
		stats := c.Stats()

		fmt.Printf("workload finished in %v\n", elapsed)
		fmt.Printf("  hits:      %d\n", stats.Hits)
		fmt.Printf("  misses:    %d\n", stats.Misses)
		fmt.Printf("  evictions: %d\n", stats.Evictions)
		fmt.Printf("  resident:  %d / %d\n", stats.Len, stats.Capacity)

		if key, s, ok := c.Oldest(); ok {
			fmt.Printf("  next eviction candidate: %s (user %s)\n", key, s.User)
		}

		keys := c.Keys()
		if len(keys) > 5 {
			keys = keys[:5]
		}
		logger.Debug("most recently used", "keys", keys)

		return nil
	},
}
