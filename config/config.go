// Package config loads runtime settings from an optional TOML file and
// environment variables, with defaults matching the published gameplay
// constants.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gravityduel/constant"
)

// Settings is everything the binary needs to assemble a game
type Settings struct {
	ArenaWidth  float64
	ArenaHeight float64
	Players     int
	Seed        uint64

	AudioEnabled bool
	LogLevel     string
	LogFile      string

	Physics constant.Config
}

// Load reads gravityduel.toml from configDir (missing file is fine) and
// GRAVITYDUEL_* environment variables on top of the defaults
func Load(configDir string) (Settings, error) {
	v := viper.New()
	def := constant.Default()

	v.SetDefault("arena.width", 200.0)
	v.SetDefault("arena.height", 200.0)
	v.SetDefault("arena.players", 2)
	v.SetDefault("arena.seed", 0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "gravityduel.log")

	v.SetDefault("physics.tickInterval", def.TickInterval)
	v.SetDefault("physics.gravitationalConstant", def.GravitationalConstant)
	v.SetDefault("physics.missileTimeToLive", def.MissileTimeToLive)
	v.SetDefault("physics.missileMaxVelocity", def.MissileMaxVelocity)
	v.SetDefault("physics.missileVelocityScale", def.MissileVelocityScale)
	v.SetDefault("physics.planetDensityMean", def.PlanetDensityMean)
	v.SetDefault("physics.planetDensityStdDev", def.PlanetDensityStdDev)
	v.SetDefault("physics.planetRadiusMean", def.PlanetRadiusMean)
	v.SetDefault("physics.planetRadiusStdDev", def.PlanetRadiusStdDev)
	v.SetDefault("physics.planetRadiusMin", def.PlanetRadiusMin)
	v.SetDefault("physics.planetMassDensityMean", def.PlanetMassDensityMean)
	v.SetDefault("physics.planetMassDensityStdDev", def.PlanetMassDensityStdDev)
	v.SetDefault("physics.shipRadius", def.ShipRadius)
	v.SetDefault("physics.shipMassDensity", def.ShipMassDensity)
	v.SetDefault("physics.placementMargin", def.PlacementMargin)
	v.SetDefault("physics.maxPlacementAttempts", def.MaxPlacementAttempts)

	v.SetConfigName("gravityduel")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("gravityduel")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	s := Settings{
		ArenaWidth:   v.GetFloat64("arena.width"),
		ArenaHeight:  v.GetFloat64("arena.height"),
		Players:      v.GetInt("arena.players"),
		Seed:         v.GetUint64("arena.seed"),
		AudioEnabled: v.GetBool("audio.enabled"),
		LogLevel:     v.GetString("log.level"),
		LogFile:      v.GetString("log.file"),
		Physics: constant.Config{
			TickInterval:            v.GetFloat64("physics.tickInterval"),
			GravitationalConstant:   v.GetFloat64("physics.gravitationalConstant"),
			MissileTimeToLive:       v.GetFloat64("physics.missileTimeToLive"),
			MissileMaxVelocity:      v.GetFloat64("physics.missileMaxVelocity"),
			MissileVelocityScale:    v.GetFloat64("physics.missileVelocityScale"),
			PlanetDensityMean:       v.GetFloat64("physics.planetDensityMean"),
			PlanetDensityStdDev:     v.GetFloat64("physics.planetDensityStdDev"),
			PlanetRadiusMean:        v.GetFloat64("physics.planetRadiusMean"),
			PlanetRadiusStdDev:      v.GetFloat64("physics.planetRadiusStdDev"),
			PlanetRadiusMin:         v.GetFloat64("physics.planetRadiusMin"),
			PlanetMassDensityMean:   v.GetFloat64("physics.planetMassDensityMean"),
			PlanetMassDensityStdDev: v.GetFloat64("physics.planetMassDensityStdDev"),
			ShipRadius:              v.GetFloat64("physics.shipRadius"),
			ShipMassDensity:         v.GetFloat64("physics.shipMassDensity"),
			PlacementMargin:         v.GetFloat64("physics.placementMargin"),
			MaxPlacementAttempts:    v.GetInt("physics.maxPlacementAttempts"),
		},
	}
	if s.Players < 2 {
		return Settings{}, fmt.Errorf("config: at least 2 players required, got %d", s.Players)
	}
	return s, nil
}
