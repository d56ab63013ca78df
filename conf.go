package terragen

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/df-mc/terragen/climate"
	"github.com/df-mc/terragen/poisson"
)

// ErrConfig is returned by New when the terrain parameters of a Config are inconsistent.
var ErrConfig = errors.New("terragen: invalid config")

// Config contains the options of a Generator. Zero values are replaced with defaults by New.
type Config struct {
	// Log is the Logger to use for logging information. If nil, Log is set to
	// slog.Default(). Generation itself never logs.
	Log *slog.Logger
	// Seed is the root seed that every noise field, the climate lattice and
	// the decoration scatter are derived from.
	Seed int64
	// SeaLevel is the y below which the surface is covered with water.
	// Defaults to 62.
	SeaLevel int

	// CellScale is the size of a climate cell in blocks. Defaults to 256.
	CellScale float64
	// Jitter is how far a climate cell anchor may move away from its lattice
	// point, in cell units. Defaults to 0.45.
	Jitter float64
	// WarpScale is the wavelength of the noise displacing climate lookups and
	// WarpStrength the largest displacement in blocks. A zero WarpStrength
	// disables the warp.
	WarpScale, WarpStrength float64
	// Variation is the largest local deviation of temperature and moisture
	// from the value of their cell.
	Variation float64
	// EdgeFunc selects the edge metric of climate cells.
	EdgeFunc climate.EdgeFunc
	// Altitude configures how the terrain height pulls the temperature.
	Altitude climate.Altitude

	// ContinentScale is the wavelength of the noise separating ocean from
	// land. Defaults to 512.
	ContinentScale float64
	// CoastMin and CoastMax bound the continent noise range over which the
	// ocean floor blends into land. Default to 0.42 and 0.5.
	CoastMin, CoastMax float64
	// MountainScale is the wavelength of the mountain noise. Defaults to 384.
	MountainScale float64
	// HillMin, HillMid and HillMax bound the mountain noise ranges blending
	// land into hills and hills into mountains. Default to 0.55, 0.68 and 0.82.
	HillMin, HillMid, HillMax float64

	// Radius is the minimum spacing of decoration points in blocks. Defaults
	// to 4.
	Radius int
	// Samples is the number of candidates tried around every decoration
	// point. Defaults to 30.
	Samples int
	// RegionSize is the size in blocks of the regions decoration is seeded
	// per. It must be a multiple of 16. Defaults to 32.
	RegionSize int
	// DensityScale multiplies the squared decoration spacing. Values below 1
	// pack features closer together. Defaults to 1.
	DensityScale float64
	// EdgeThreshold drops decoration where the climate edge metric is lower,
	// keeping features away from biome borders.
	EdgeThreshold float64
	// Metrics, if set, receives per-region decoration counters.
	Metrics *poisson.Metrics
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.SeaLevel == 0 {
		conf.SeaLevel = 62
	}
	if conf.CellScale == 0 {
		conf.CellScale = 256
	}
	if conf.WarpScale == 0 {
		conf.WarpScale = 128
	}
	if conf.ContinentScale == 0 {
		conf.ContinentScale = 512
	}
	if conf.CoastMin == 0 && conf.CoastMax == 0 {
		conf.CoastMin, conf.CoastMax = 0.42, 0.5
	}
	if conf.MountainScale == 0 {
		conf.MountainScale = 384
	}
	if conf.HillMin == 0 && conf.HillMid == 0 && conf.HillMax == 0 {
		conf.HillMin, conf.HillMid, conf.HillMax = 0.55, 0.68, 0.82
	}
	if conf.Radius == 0 {
		conf.Radius = 4
	}
	if conf.RegionSize == 0 {
		conf.RegionSize = 32
	}
	if conf.DensityScale == 0 {
		conf.DensityScale = 1
	}
	return conf
}

func (conf Config) validate() error {
	if conf.SeaLevel <= 0 || conf.SeaLevel >= 128 {
		return fmt.Errorf("%w: sea level %d outside (0, 128)", ErrConfig, conf.SeaLevel)
	}
	if !(conf.ContinentScale > 0) || !(conf.MountainScale > 0) || !(conf.WarpScale > 0) {
		return fmt.Errorf("%w: noise scales must be positive", ErrConfig)
	}
	if conf.DensityScale < 0 {
		return fmt.Errorf("%w: density scale %v is negative", ErrConfig, conf.DensityScale)
	}
	return nil
}

// UserConfig is the user configuration of a Generator. UserConfig may be
// serialised to TOML and can be converted to a Config by calling
// UserConfig.Config().
type UserConfig struct {
	World struct {
		// Seed is the root seed of the world.
		Seed int64
		// SeaLevel is the y below which the surface is covered with water.
		SeaLevel int
	}
	Climate struct {
		// Scale is the size of a climate cell in blocks.
		Scale float64
		// Jitter is the largest anchor offset in cell units, in (0, 0.5].
		Jitter float64
		// WarpScale and WarpStrength configure the domain warp of climate
		// lookups. A WarpStrength of 0 disables it.
		WarpScale, WarpStrength float64
		// Variation is the largest local deviation of temperature and
		// moisture from their cell value.
		Variation float64
		// EdgeFunc is the edge metric: "div", "div2" or "sub".
		EdgeFunc string
		// AltitudeCorrection enables cooling of high terrain and warming of
		// deep ocean.
		AltitudeCorrection bool
		// Lower, Mid and Upper are the normalised heights used by the
		// altitude correction.
		Lower, Mid, Upper float64
		// OceanWarmth is the largest warming applied below Lower.
		OceanWarmth float64
	}
	Terrain struct {
		// ContinentScale is the wavelength of the ocean/land noise.
		ContinentScale float64
		// CoastMin and CoastMax bound the blend from ocean floor to land.
		CoastMin, CoastMax float64
		// MountainScale is the wavelength of the mountain noise.
		MountainScale float64
		// HillMin, HillMid and HillMax bound the blends from land to hills
		// and from hills to mountains.
		HillMin, HillMid, HillMax float64
	}
	Decoration struct {
		// Radius is the minimum spacing of features in blocks.
		Radius int
		// Samples is the number of candidates tried per feature.
		Samples int
		// RegionSize is the size of a decoration region in blocks.
		RegionSize int
		// DensityScale multiplies the squared feature spacing.
		DensityScale float64
		// EdgeThreshold keeps features away from biome borders.
		EdgeThreshold float64
	}
}

// Config converts a UserConfig to a Config, so that it may be used for
// creating a Generator. Unknown edge functions fall back to "div" with a
// warning.
func (uc UserConfig) Config(log *slog.Logger) (Config, error) {
	edge, err := climate.ParseEdgeFunc(uc.Climate.EdgeFunc)
	if err != nil {
		if log != nil {
			log.Warn("Unknown edge function, using div.", "value", uc.Climate.EdgeFunc)
		}
		edge = climate.EdgeDiv
	}
	conf := Config{
		Log:          log,
		Seed:         uc.World.Seed,
		SeaLevel:     uc.World.SeaLevel,
		CellScale:    uc.Climate.Scale,
		Jitter:       uc.Climate.Jitter,
		WarpScale:    uc.Climate.WarpScale,
		WarpStrength: uc.Climate.WarpStrength,
		Variation:    uc.Climate.Variation,
		EdgeFunc:     edge,
		Altitude: climate.Altitude{
			Enabled:     uc.Climate.AltitudeCorrection,
			Lower:       uc.Climate.Lower,
			Mid:         uc.Climate.Mid,
			Upper:       uc.Climate.Upper,
			OceanWarmth: uc.Climate.OceanWarmth,
		},
		ContinentScale: uc.Terrain.ContinentScale,
		CoastMin:       uc.Terrain.CoastMin,
		CoastMax:       uc.Terrain.CoastMax,
		MountainScale:  uc.Terrain.MountainScale,
		HillMin:        uc.Terrain.HillMin,
		HillMid:        uc.Terrain.HillMid,
		HillMax:        uc.Terrain.HillMax,
		Radius:         uc.Decoration.Radius,
		Samples:        uc.Decoration.Samples,
		RegionSize:     uc.Decoration.RegionSize,
		DensityScale:   uc.Decoration.DensityScale,
		EdgeThreshold:  uc.Decoration.EdgeThreshold,
	}
	if err := conf.withDefaults().validate(); err != nil {
		return conf, err
	}
	return conf, nil
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Seed = 0
	c.World.SeaLevel = 62
	c.Climate.Scale = 256
	c.Climate.Jitter = 0.45
	c.Climate.WarpScale = 128
	c.Climate.WarpStrength = 24
	c.Climate.Variation = 0.08
	c.Climate.EdgeFunc = "div"
	c.Climate.AltitudeCorrection = true
	c.Climate.Lower = 0.45
	c.Climate.Mid = 0.55
	c.Climate.Upper = 0.95
	c.Climate.OceanWarmth = 0.2
	c.Terrain.ContinentScale = 512
	c.Terrain.CoastMin = 0.42
	c.Terrain.CoastMax = 0.5
	c.Terrain.MountainScale = 384
	c.Terrain.HillMin = 0.55
	c.Terrain.HillMid = 0.68
	c.Terrain.HillMax = 0.82
	c.Decoration.Radius = 4
	c.Decoration.Samples = 30
	c.Decoration.RegionSize = 32
	c.Decoration.DensityScale = 1
	c.Decoration.EdgeThreshold = 0.1
	return c
}

// LoadConfig reads the UserConfig stored in the TOML file at the path passed.
// Keys missing from the file keep their default value. If the file does not
// exist yet, it is created with the default configuration.
func LoadConfig(path string) (UserConfig, error) {
	if strings.TrimSpace(path) == "" {
		return UserConfig{}, errors.New("config path must not be empty")
	}
	c := DefaultConfig()
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, c.Save(path)
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &c); err != nil {
			return c, fmt.Errorf("decode config: %w", err)
		}
	}
	return c, nil
}

// Save writes uc to the TOML file at the path passed, creating its directory
// if needed.
func (uc UserConfig) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := toml.Marshal(uc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
