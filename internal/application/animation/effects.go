package animation

import "time"

// Spawn cadences, lifetimes and visual parameter ranges per category.
const (
	cloudCount          = 5
	cloudStagger        = 200 * time.Millisecond
	cloudSizeMin        = 60.0
	cloudSizeMax        = 140.0
	cloudOffsetMax      = 40.0
	cloudDriftMin       = 30 * time.Second
	cloudDriftMax       = 50 * time.Second
	cloudOpacityMin     = 0.2
	cloudOpacityMax     = 0.5
	cloudReplenishEvery = 10 * time.Second

	rainSeedDrops  = 50
	rainSpawnEvery = 300 * time.Millisecond
	rainSpawnBatch = 5
	rainFallMin    = 500 * time.Millisecond
	rainFallMax    = time.Second
	rainDelayMax   = 2 * time.Second
	raindropTTL    = 3 * time.Second

	snowSeedFlakes = 30
	snowSpawnEvery = 500 * time.Millisecond
	snowSpawnBatch = 3
	snowSizeMin    = 4.0
	snowSizeMax    = 12.0
	snowFallMin    = 5 * time.Second
	snowFallMax    = 10 * time.Second
	snowDelayMax   = 5 * time.Second
	snowflakeTTL   = 15 * time.Second

	lightningEvery    = 2 * time.Second
	lightningChance   = 0.3
	lightningRuns     = 30 // bounds the lightning task to one minute
	lightningFlashTTL = 200 * time.Millisecond

	fogBandCount = 3

	starCount        = 50
	starPulseMax     = 3 * time.Second
)

// Fog bands sit at fixed staggered offsets with fixed drift durations.
var (
	fogBandOffsets = [fogBandCount]float64{0, 30, 60}
	fogBandDrifts  = [fogBandCount]time.Duration{40 * time.Second, 50 * time.Second, 60 * time.Second}
)

func (d *Director) newCloudLocked() Particle {
	drift := d.durRange(cloudDriftMin, cloudDriftMax)
	return Particle{
		Kind:    ParticleCloud,
		X:       -20,
		Y:       d.floatRange(0, cloudOffsetMax),
		Size:    d.floatRange(cloudSizeMin, cloudSizeMax),
		Opacity: d.floatRange(cloudOpacityMin, cloudOpacityMax),
		Drift:   drift,
		TTL:     drift,
	}
}

func (d *Director) newRaindropLocked() Particle {
	return Particle{
		Kind:  ParticleRaindrop,
		X:     d.floatRange(0, 100),
		Drift: d.durRange(rainFallMin, rainFallMax),
		Delay: d.durRange(0, rainDelayMax),
		TTL:   raindropTTL,
	}
}

func (d *Director) newSnowflakeLocked() Particle {
	return Particle{
		Kind:  ParticleSnowflake,
		X:     d.floatRange(0, 100),
		Size:  d.floatRange(snowSizeMin, snowSizeMax),
		Drift: d.durRange(snowFallMin, snowFallMax),
		Delay: d.durRange(0, snowDelayMax),
		TTL:   snowflakeTTL,
	}
}

func (d *Director) newLightningLocked() Particle {
	return Particle{
		Kind:    ParticleLightning,
		X:       d.floatRange(10, 90),
		Opacity: 1,
		TTL:     lightningFlashTTL,
	}
}

func (d *Director) newStarLocked() Particle {
	return Particle{
		Kind:  ParticleStar,
		X:     d.floatRange(0, 100),
		Y:     d.floatRange(0, 100),
		Delay: d.durRange(0, starPulseMax),
	}
}

func (d *Director) floatRange(min, max float64) float64 {
	return min + d.rng.Float64()*(max-min)
}

func (d *Director) durRange(min, max time.Duration) time.Duration {
	return min + time.Duration(d.rng.Int63n(int64(max-min)+1))
}
