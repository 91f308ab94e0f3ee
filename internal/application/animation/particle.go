package animation

import "time"

// ParticleKind identifies the visual element a particle renders as.
type ParticleKind string

const (
	ParticleSunburst  ParticleKind = "sunburst"
	ParticleCloud     ParticleKind = "cloud"
	ParticleRaindrop  ParticleKind = "raindrop"
	ParticleSnowflake ParticleKind = "snowflake"
	ParticleLightning ParticleKind = "lightning"
	ParticleFogBand   ParticleKind = "fog-band"
	ParticleStar      ParticleKind = "star"
)

// Particle is one live decorative element. Positions are percentages of the
// viewport, sizes are abstract units, Drift is the crossing or fall duration.
// A zero TTL means the particle lives until the owning category is torn down.
type Particle struct {
	ID        uint64        `json:"id"`
	Kind      ParticleKind  `json:"kind"`
	X         float64       `json:"x"`
	Y         float64       `json:"y"`
	Size      float64       `json:"size"`
	Opacity   float64       `json:"opacity"`
	Drift     time.Duration `json:"drift"`
	Delay     time.Duration `json:"delay"`
	SpawnedAt time.Time     `json:"spawnedAt"`
	TTL       time.Duration `json:"ttl"`
}

// expired reports whether the particle's self-removal deadline has passed.
func (p Particle) expired(now time.Time) bool {
	return p.TTL > 0 && now.After(p.SpawnedAt.Add(p.TTL))
}
