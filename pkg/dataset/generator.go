package dataset

import (
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultSeed keeps runs reproducible unless the caller asks otherwise.
const DefaultSeed = 42

// cabinTypes are the four cabin classes of the source data.
var cabinTypes = [...]string{"Lux", "1", "2", "3"}

// Config controls synthetic dataset generation.
type Config struct {
	// NumRecords is the total number of passengers to generate.
	NumRecords int
	// UniqueNames is the size of the name pool. Zero means the default
	// ratio of max(10, NumRecords/20), which guarantees duplicate keys
	// once NumRecords exceeds the pool.
	UniqueNames int
	// Seed for reproducible generation. 0 = DefaultSeed.
	Seed int64
}

// DefaultConfig returns the generation config the benchmark harness uses.
func DefaultConfig(numRecords int) Config {
	return Config{
		NumRecords: numRecords,
		Seed:       DefaultSeed,
	}
}

// Generator produces passenger datasets from a seeded random source.
type Generator struct {
	cfg  Config
	rng  *rand.Rand
	fake *gofakeit.Faker
}

// NewGenerator creates a new dataset generator.
func NewGenerator(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Generator{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		fake: gofakeit.New(seed),
	}
}

// Generate returns the full record slice. Every record draws its key from
// a bounded name pool, so duplicate keys are guaranteed for any dataset
// larger than the pool.
func (g *Generator) Generate() []Record {
	pool := g.namePool()
	records := make([]Record, g.cfg.NumRecords)
	for i := range records {
		records[i] = Record{
			FullName:        pool[g.rng.Intn(len(pool))],
			CabinNumber:     1 + g.rng.Intn(1000),
			CabinType:       cabinTypes[g.rng.Intn(len(cabinTypes))],
			DestinationPort: g.fake.City(),
		}
	}
	return records
}

// PickKey selects one guaranteed-present lookup key uniformly at random.
// Every structure's timed search is a hit by construction.
func (g *Generator) PickKey(records []Record) string {
	return records[g.rng.Intn(len(records))].FullName
}

// PoolSize returns the effective name pool size for n records.
func PoolSize(n, uniqueNames int) int {
	if uniqueNames > 0 {
		return uniqueNames
	}
	size := n / 20
	if size < 10 {
		size = 10
	}
	return size
}

func (g *Generator) namePool() []string {
	size := PoolSize(g.cfg.NumRecords, g.cfg.UniqueNames)
	seen := make(map[string]struct{}, size)
	pool := make([]string, 0, size)
	for len(pool) < size {
		name := g.fake.Name()
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		pool = append(pool, name)
	}
	return pool
}
