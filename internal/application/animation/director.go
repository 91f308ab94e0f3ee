package animation

import (
	"math/rand"
	"sync"
	"time"

	"skycast/internal/domain/condition"
	"skycast/internal/domain/theme"
	"skycast/pkg/log"
	"skycast/pkg/sched"
)

// None is the category before any session has been displayed.
const None condition.AnimationCategory = "none"

// Snapshot is a point-in-time view of the director's state, served to the
// rendering surface.
type Snapshot struct {
	Category        condition.AnimationCategory `json:"category"`
	Theme           theme.Mode                  `json:"theme"`
	RecurringTimers int                         `json:"recurringTimers"`
	ParticleCount   int                         `json:"particleCount"`
	StarCount       int                         `json:"starCount"`
	Flash           bool                        `json:"flash"`
	Particles       []Particle                  `json:"particles"`
}

type ownedHandle struct {
	handle    sched.Handle
	recurring bool
}

// Director owns the decorative animation lifecycle: every spawn timer and
// every live particle belongs to it, and a category transition synchronously
// cancels everything the previous category started before the new category
// creates any state. The night starfield is held separately because it is
// additive to whatever category is active.
type Director struct {
	mu     sync.Mutex
	runner sched.Runner
	rng    *rand.Rand
	now    func() time.Time

	category   condition.AnimationCategory
	handles    []ownedHandle
	particles  []Particle
	stars      []Particle
	mode       theme.Mode
	flashUntil time.Time
	nextID     uint64
}

// NewDirector creates a Director scheduling its spawners on runner.
func NewDirector(runner sched.Runner) *Director {
	return &Director{
		runner:   runner,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		category: None,
		mode:     theme.ModeDay,
	}
}

// Transition switches the active animation category. A repeated category is a
// no-op; otherwise every handle and particle owned by the previous category is
// cancelled and removed before the new category initializes.
func (d *Director) Transition(category condition.AnimationCategory) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if category == d.category {
		return
	}

	d.teardownLocked()
	d.category = category

	switch category {
	case condition.AnimationClear:
		d.spawnLocked(Particle{Kind: ParticleSunburst, X: 50, Y: 20, Opacity: 1})
	case condition.AnimationCloudy:
		d.startCloudyLocked()
	case condition.AnimationRain:
		d.startCloudyLocked()
		d.startRainLocked()
	case condition.AnimationSnow:
		d.startSnowLocked()
	case condition.AnimationThunder:
		d.startCloudyLocked()
		d.startRainLocked()
		d.startThunderLocked()
	case condition.AnimationFog:
		d.startFogLocked()
	}

	log.Infow("animation category switched", "category", string(category))
}

// ApplyTheme sets the day/night mode. Entering night seeds the starfield when
// no decorative particle exists yet; returning to day removes it.
func (d *Director) ApplyTheme(mode theme.Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.mode = mode
	if mode != theme.ModeNight {
		d.stars = nil
		return
	}
	if len(d.particles) == 0 && len(d.stars) == 0 {
		for i := 0; i < starCount; i++ {
			star := d.newStarLocked()
			star.ID = d.nextParticleIDLocked()
			star.SpawnedAt = d.now()
			d.stars = append(d.stars, star)
		}
	}
}

// Category returns the active animation category.
func (d *Director) Category() condition.AnimationCategory {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.category
}

// RecurringTimerCount returns the number of live recurring spawn timers owned
// by the active category.
func (d *Director) RecurringTimerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, owned := range d.handles {
		if owned.recurring && owned.handle.Active() {
			count++
		}
	}
	return count
}

// Snapshot prunes expired particles and returns the current state. At most
// limit particles are included; limit <= 0 means all.
func (d *Director) Snapshot(limit int) Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	d.pruneLocked(now)

	particles := make([]Particle, 0, len(d.particles)+len(d.stars))
	particles = append(particles, d.particles...)
	particles = append(particles, d.stars...)
	if limit > 0 && len(particles) > limit {
		particles = particles[:limit]
	}

	recurring := 0
	for _, owned := range d.handles {
		if owned.recurring && owned.handle.Active() {
			recurring++
		}
	}

	return Snapshot{
		Category:        d.category,
		Theme:           d.mode,
		RecurringTimers: recurring,
		ParticleCount:   len(d.particles),
		StarCount:       len(d.stars),
		Flash:           now.Before(d.flashUntil),
		Particles:       particles,
	}
}

// teardownLocked cancels every owned handle and removes every owned particle.
// Stars survive: they belong to the night theme, not to a category.
func (d *Director) teardownLocked() {
	for _, owned := range d.handles {
		owned.handle.Cancel()
	}
	d.handles = nil
	d.particles = nil
	d.flashUntil = time.Time{}
}

func (d *Director) startCloudyLocked() {
	d.spawnLocked(d.newCloudLocked())
	for i := 1; i < cloudCount; i++ {
		d.scheduleOnceLocked(time.Duration(i)*cloudStagger, func() {
			d.spawnLocked(d.newCloudLocked())
		})
	}

	// Drifted-out clouds are pruned by TTL; keep the layer at full strength.
	d.scheduleEveryLocked(cloudReplenishEvery, func() {
		d.pruneLocked(d.now())
		alive := 0
		for _, p := range d.particles {
			if p.Kind == ParticleCloud {
				alive++
			}
		}
		for ; alive < cloudCount; alive++ {
			d.spawnLocked(d.newCloudLocked())
		}
	})
}

func (d *Director) startRainLocked() {
	for i := 0; i < rainSeedDrops; i++ {
		d.spawnLocked(d.newRaindropLocked())
	}

	d.scheduleEveryLocked(rainSpawnEvery, func() {
		d.pruneLocked(d.now())
		for i := 0; i < rainSpawnBatch; i++ {
			d.spawnLocked(d.newRaindropLocked())
		}
	})
}

func (d *Director) startSnowLocked() {
	for i := 0; i < snowSeedFlakes; i++ {
		d.spawnLocked(d.newSnowflakeLocked())
	}

	d.scheduleEveryLocked(snowSpawnEvery, func() {
		d.pruneLocked(d.now())
		for i := 0; i < snowSpawnBatch; i++ {
			d.spawnLocked(d.newSnowflakeLocked())
		}
	})
}

func (d *Director) startThunderLocked() {
	d.scheduleEveryLimitedLocked(lightningEvery, lightningRuns, func() {
		d.pruneLocked(d.now())
		if d.rng.Float64() < lightningChance {
			d.spawnLocked(d.newLightningLocked())
			d.flashUntil = d.now().Add(lightningFlashTTL)
		}
	})
}

func (d *Director) startFogLocked() {
	for i := 0; i < fogBandCount; i++ {
		d.spawnLocked(Particle{
			Kind:    ParticleFogBand,
			Y:       fogBandOffsets[i],
			Opacity: 0.6,
			Drift:   fogBandDrifts[i],
		})
	}
}

// spawnLocked stamps identity and birth time onto a particle and adds it to
// the owned set.
func (d *Director) spawnLocked(p Particle) {
	p.ID = d.nextParticleIDLocked()
	p.SpawnedAt = d.now()
	d.particles = append(d.particles, p)
}

func (d *Director) pruneLocked(now time.Time) {
	kept := d.particles[:0]
	for _, p := range d.particles {
		if !p.expired(now) {
			kept = append(kept, p)
		}
	}
	d.particles = kept
}

func (d *Director) nextParticleIDLocked() uint64 {
	d.nextID++
	return d.nextID
}

// scheduleEveryLocked registers a recurring spawner owned by the active
// category. The callback re-checks ownership: a tick that raced a transition
// must not touch the new category's state.
func (d *Director) scheduleEveryLocked(interval time.Duration, task func()) {
	category := d.category
	handle, err := d.runner.Every(interval, d.guarded(category, task))
	if err != nil {
		log.Warnf("Failed to schedule recurring spawner for category %s: %v", category, err)
		return
	}
	d.handles = append(d.handles, ownedHandle{handle: handle, recurring: true})
}

func (d *Director) scheduleEveryLimitedLocked(interval time.Duration, runs int, task func()) {
	category := d.category
	handle, err := d.runner.EveryLimited(interval, runs, d.guarded(category, task))
	if err != nil {
		log.Warnf("Failed to schedule bounded spawner for category %s: %v", category, err)
		return
	}
	d.handles = append(d.handles, ownedHandle{handle: handle, recurring: true})
}

func (d *Director) scheduleOnceLocked(delay time.Duration, task func()) {
	category := d.category
	handle, err := d.runner.After(delay, d.guarded(category, task))
	if err != nil {
		log.Warnf("Failed to schedule staggered spawn for category %s: %v", category, err)
		return
	}
	d.handles = append(d.handles, ownedHandle{handle: handle, recurring: false})
}

func (d *Director) guarded(category condition.AnimationCategory, task func()) func() {
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.category != category {
			return
		}
		task()
	}
}
