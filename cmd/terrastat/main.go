// Command terrastat generates an area of terrain and prints statistics about its climate cells,
// biomes, heights and decoration.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"sort"
	"sync"

	"github.com/brentp/intintmap"

	"github.com/df-mc/terragen"
	"github.com/df-mc/terragen/biome"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/poisson"
	"github.com/df-mc/terragen/populate"
)

func main() {
	var (
		configPath = flag.String("config", "terragen.toml", "path of the TOML config, created with defaults if missing")
		seed       = flag.Int64("seed", 0, "overrides the seed of the config if non-zero")
		originX    = flag.Int("x", 0, "x of the north-west corner of the area")
		originZ    = flag.Int("z", 0, "z of the north-west corner of the area")
		size       = flag.Int("size", 1024, "width of the area in blocks")
		step       = flag.Int("step", 4, "distance in blocks between sampled columns")
		workers    = flag.Int("workers", runtime.NumCPU(), "number of goroutines decorating tiles")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	uc, err := terragen.LoadConfig(*configPath)
	if err != nil {
		log.Error("load config: " + err.Error())
		os.Exit(1)
	}
	if *seed != 0 {
		uc.World.Seed = *seed
	}
	conf, err := uc.Config(log)
	if err != nil {
		log.Error("convert config: " + err.Error())
		os.Exit(1)
	}
	conf.Metrics = poisson.NewMetrics()

	g, err := terragen.New(conf)
	if err != nil {
		log.Error("create generator: " + err.Error())
		os.Exit(1)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	s := survey(g, *originX, *originZ, max(*size, terragen.TileSize), max(*step, 1))
	if s.features, err = decorate(ctx, g, s.area, max(*workers, 1)); err != nil {
		log.Warn("Decoration interrupted, feature counts are partial.", "err", err)
	}
	log.Debug("Survey finished.", "columns", s.columns, "tiles", len(s.area))
	s.print(conf.Metrics)
}

// stats holds the results of a survey.
type stats struct {
	columns   int
	cells     *intintmap.Map
	biomes    map[string]int
	water     int
	minHeight int
	maxHeight int
	area      [][2]int32
	features  map[populate.Kind]int
}

func survey(g *terragen.Generator, originX, originZ, size, step int) stats {
	s := stats{
		cells:     intintmap.New(1024, 0.6),
		biomes:    make(map[string]int),
		minHeight: 128,
		maxHeight: -1,
	}
	for z := originZ; z < originZ+size; z += step {
		for x := originX; x < originX+size; x += step {
			col := g.Column(x, z)
			c := g.Climate(x, z)

			id := int64(c.CellID)
			n, _ := s.cells.Get(id)
			s.cells.Put(id, n+1)

			s.columns++
			if b, ok := col.Biome.(biome.Biome); ok {
				s.biomes[b.Name()]++
			}
			if col.Water {
				s.water++
			}
			s.minHeight, s.maxHeight = min(s.minHeight, col.Height), max(s.maxHeight, col.Height)
		}
	}

	t0x, t0z := mathutil.FloorDiv(originX, terragen.TileSize), mathutil.FloorDiv(originZ, terragen.TileSize)
	t1x, t1z := mathutil.FloorDiv(originX+size-1, terragen.TileSize), mathutil.FloorDiv(originZ+size-1, terragen.TileSize)
	for tz := t0z; tz <= t1z; tz++ {
		for tx := t0x; tx <= t1x; tx++ {
			s.area = append(s.area, [2]int32{int32(tx), int32(tz)})
		}
	}
	return s
}

// decorate decorates the tiles passed on a pool of workers and counts the features placed by kind.
// Tiles are handed out in order but finish in any order, which does not change the result.
func decorate(ctx context.Context, g *terragen.Generator, tiles [][2]int32, workers int) (map[populate.Kind]int, error) {
	jobs := make(chan [2]int32)
	results := make(chan map[populate.Kind]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts := make(map[populate.Kind]int)
			for tile := range jobs {
				g.Decorate(tile[0], tile[1], func(f populate.Feature) {
					counts[f.Kind]++
				})
			}
			results <- counts
		}()
	}

feed:
	for _, tile := range tiles {
		select {
		case jobs <- tile:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	merged := make(map[populate.Kind]int)
	for counts := range results {
		for k, n := range counts {
			merged[k] += n
		}
	}
	return merged, ctx.Err()
}

func (s stats) print(m *poisson.Metrics) {
	fmt.Printf("columns: %d (%d under water), height %d..%d\n", s.columns, s.water, s.minHeight, s.maxHeight)

	var sizes []int64
	for kv := range s.cells.Items() {
		sizes = append(sizes, kv[1])
	}
	slices.Sort(sizes)
	if len(sizes) > 0 {
		fmt.Printf("climate cells: %d, columns per cell min %d, median %d, max %d\n", len(sizes), sizes[0], sizes[len(sizes)/2], sizes[len(sizes)-1])
	}

	names := make([]string, 0, len(s.biomes))
	for name := range s.biomes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return s.biomes[names[i]] > s.biomes[names[j]]
	})
	fmt.Println("biomes:")
	for _, name := range names {
		fmt.Printf("  %-16s %6.2f%%\n", name, 100*float64(s.biomes[name])/float64(s.columns))
	}

	fmt.Printf("features over %d tiles:\n", len(s.area))
	kinds := make([]populate.Kind, 0, len(s.features))
	for k := range s.features {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-16s %d\n", k, s.features[k])
	}

	total := m.Total()
	fmt.Printf("poisson: %d regions, %d visits, %d accepted, %d rejected\n", m.Regions(), total.Visits, total.Accepted, total.Rejected)
}
