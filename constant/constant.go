package constant

// TicksPerSecond is the fixed simulation rate driven by the host loop
const TicksPerSecond = 30

// Config carries every physics and generation tunable. It is threaded
// explicitly into the integrator and the map generator so tests can run
// with alternate constants instead of patching globals.
type Config struct {
	// Simulation timestep in seconds
	TickInterval float64

	// Gravitational constant for the squared-distance gravity model
	GravitationalConstant float64

	// Missile lifetime in seconds
	MissileTimeToLive float64
	// Maximum fire-command speed (command units)
	MissileMaxVelocity float64
	// Game units per second per command speed unit
	MissileVelocityScale float64

	// Planet count is sampled from N(mean, stddev) per unit of arena
	// area, then floored to at least one planet
	PlanetDensityMean   float64
	PlanetDensityStdDev float64

	// Planet radius distribution, clamped below at PlanetRadiusMin
	PlanetRadiusMean   float64
	PlanetRadiusStdDev float64
	PlanetRadiusMin    float64

	// Planet material density distribution, clamped to non-negative;
	// mass = 4/3 * pi * r^3 * density
	PlanetMassDensityMean   float64
	PlanetMassDensityStdDev float64

	// Collision radius of the default ship disc
	ShipRadius float64

	// Ship hull material density; ship mass uses the planet formula
	// mass = 4/3 * pi * r^3 * density with r the hull bounding radius.
	// Fixed rather than sampled so generation consumes no extra
	// random draws.
	ShipMassDensity float64

	// Minimum clearance demanded between placed entities
	PlacementMargin float64

	// Rejection-sampling budget per placed entity
	MaxPlacementAttempts int
}

// Default returns the published gameplay constants
func Default() Config {
	return Config{
		TickInterval:          1.0 / TicksPerSecond,
		GravitationalConstant: 5e-10,

		MissileTimeToLive:    30.0,
		MissileMaxVelocity:   10.0,
		MissileVelocityScale: 10.0,

		PlanetDensityMean:   2e-4,
		PlanetDensityStdDev: 1e-4,

		PlanetRadiusMean:   5.0,
		PlanetRadiusStdDev: 2.0,
		PlanetRadiusMin:    1.0,

		PlanetMassDensityMean:   250.0,
		PlanetMassDensityStdDev: 100.0,

		ShipRadius:      2.0,
		ShipMassDensity: 250.0,

		PlacementMargin:      1.0,
		MaxPlacementAttempts: 64,
	}
}
