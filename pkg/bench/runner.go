// Package bench drives the benchmark: per dataset size it generates
// records, bulk-loads every structure by repeated single-record insertion,
// times one guaranteed-hit lookup against each, and accumulates result
// rows. Execution is strictly sequential, one size at a time.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/eunmann/searchbench/internal/logctx"
	"github.com/eunmann/searchbench/pkg/dataset"
	"github.com/eunmann/searchbench/pkg/logging"
	"github.com/eunmann/searchbench/pkg/lookup"
	"github.com/eunmann/searchbench/pkg/memdiag"
	"github.com/eunmann/searchbench/pkg/rbtree"
)

// Row is one line of benchmark output: the single-lookup latency of every
// structure at one dataset size, plus the hash table's collision count.
type Row struct {
	Size       int
	Linear     time.Duration
	BST        time.Duration
	RBT        time.Duration
	Hash       time.Duration
	Multimap   time.Duration
	MPHF       time.Duration
	Collisions uint64
}

// Run executes the benchmark for every configured size, in order. All
// structures built for a size are discarded before the next one starts.
func Run(ctx context.Context, cfg Config) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logctx.FromContext(ctx)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(len(cfg.Sizes)), "sizes")
	}

	rows := make([]Row, 0, len(cfg.Sizes))
	for i, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logging.SizeStarted(log, n, i, len(cfg.Sizes))

		start := time.Now()
		row, err := runSize(ctx, cfg, n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)

		logging.PhaseComplete(log, "size", time.Since(start)).
			Int("size", n).
			Uint64("collisions", row.Collisions).
			Msg("dataset size complete")
		memdiag.LogSnapshot(log, n)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return rows, nil
}

func runSize(ctx context.Context, cfg Config, n int) (Row, error) {
	log := logctx.FromContext(logctx.WithInt(ctx, "size", n))

	start := time.Now()
	gen := dataset.NewGenerator(dataset.Config{NumRecords: n, Seed: cfg.Seed})
	records := gen.Generate()
	key := gen.PickKey(records)
	log.Debug().Str("phase", "generate").Dur("elapsed", time.Since(start)).Msg("dataset ready")

	row := Row{Size: n}

	linear := lookup.NewLinear(n)
	load(linear, records)
	row.Linear = timeSearch(linear, key)

	bst := lookup.NewBST()
	load(bst, records)
	row.BST = timeSearch(bst, key)

	rbt := rbtree.New()
	load(rbt, records)
	row.RBT = timeSearch(rbt, key)

	buckets := int(float64(n)*cfg.BucketFactor) + 1
	ht := lookup.NewHashTable(buckets)
	load(ht, records)
	row.Hash = timeSearch(ht, key)
	row.Collisions = ht.Collisions()

	multimap := lookup.NewBTreeMap()
	load(multimap, records)
	row.Multimap = timeSearch(multimap, key)

	mphf := lookup.NewMPHF()
	load(mphf, records)
	if err := mphf.Build(); err != nil {
		return Row{}, fmt.Errorf("size %d: %w", n, err)
	}
	row.MPHF = timeSearch(mphf, key)

	log.Debug().
		Str("phase", "search").
		Str("key", key).
		Int64("linear_ns", row.Linear.Nanoseconds()).
		Int64("bst_ns", row.BST.Nanoseconds()).
		Int64("rbt_ns", row.RBT.Nanoseconds()).
		Int64("hash_ns", row.Hash.Nanoseconds()).
		Int64("multimap_ns", row.Multimap.Nanoseconds()).
		Int64("mphf_ns", row.MPHF.Nanoseconds()).
		Msg("lookups timed")
	return row, nil
}

// load bulk-loads idx by repeated single-record insertion, identically for
// every structure. Positions index into records.
func load(idx lookup.Index, records []dataset.Record) {
	for i := range records {
		idx.Insert(records[i].FullName, i)
	}
}

// timeSearch measures one lookup against the monotonic clock.
func timeSearch(idx lookup.Index, key string) time.Duration {
	start := time.Now()
	idx.Search(key)
	return time.Since(start)
}
