// vec2play - Terminal 2D Vector Playground
// A swarm of particles chases a spring-driven attractor around your
// terminal, exercising the vec2 and bound2 packages.
//
// Controls:
//
//	Mouse move  - Steer the attractor
//	Space       - Scatter particles
//	R           - Reset the swarm
//	A           - Toggle autopilot (attractor orbits on its own)
//	?           - Toggle HUD overlay
//	Esc/Q       - Quit
package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/charmbracelet/harmonica"
	"github.com/spf13/cobra"

	"github.com/Bobbyjoness/cpml/bound2"
	"github.com/Bobbyjoness/cpml/vec2"
)

var (
	targetFPS    int
	numParticles int
	seed         uint64
)

func main() {
	cmd := &cobra.Command{
		Use:   "vec2play",
		Short: "Terminal 2D vector playground",
		Long: `vec2play - Terminal 2D Vector Playground

A swarm of particles chases a spring-driven attractor around your terminal.

Controls:
  Mouse move  - Steer the attractor
  Space       - Scatter particles
  R           - Reset the swarm
  A           - Toggle autopilot
  ?           - Toggle HUD overlay
  Esc/Q       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.Flags().IntVar(&targetFPS, "fps", 60, "Target FPS")
	cmd.Flags().IntVar(&numParticles, "particles", 80, "Number of particles")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 = time-based)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

const (
	maxSpeed     = 40.0 // cells per second
	steerAccel   = 60.0 // cells per second^2
	wallDamping  = 0.6  // velocity kept after a wall bounce
	orbitRadius  = 0.35 // autopilot orbit radius, fraction of the short side
	scatterSpeed = 30.0
)

// Particle is a point mass chasing the attractor.
type Particle struct {
	Pos, Vel vec2.Vec2
}

// Swarm holds the particles and the world box they are confined to.
type Swarm struct {
	Particles []Particle
	World     bound2.Bound2
	rng       *rand.Rand
}

func NewSwarm(n int, world bound2.Bound2, rng *rand.Rand) *Swarm {
	s := &Swarm{
		Particles: make([]Particle, n),
		World:     world,
		rng:       rng,
	}
	s.Reset()
	return s
}

// Reset spreads the particles uniformly over the world box at rest.
func (s *Swarm) Reset() {
	size := s.World.Size()
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Pos: s.World.Min.Add(vec2.New(s.rng.Float64()*size.X, s.rng.Float64()*size.Y)),
		}
	}
}

// Scatter flings every particle in a random direction.
func (s *Swarm) Scatter() {
	for i := range s.Particles {
		s.Particles[i].Vel = vec2.FromAngle(s.rng.Float64() * 2 * math.Pi).Scale(scatterSpeed)
	}
}

// Update steers every particle toward the attractor and integrates one
// step, bouncing off the world box. Uses the in-place vec2 API so the per
// frame loop does not allocate.
func (s *Swarm) Update(attractor vec2.Vec2, dt float64) {
	var steer vec2.Vec2
	for i := range s.Particles {
		p := &s.Particles[i]

		vec2.Sub(&steer, &attractor, &p.Pos)
		if steer.Len2() > 1e-9 { // normalizing a zero offset would yield NaN
			vec2.Normalize(&steer, &steer)
			vec2.Mul(&steer, &steer, steerAccel*dt)
			vec2.Add(&p.Vel, &p.Vel, &steer)
		}
		vec2.Trim(&p.Vel, &p.Vel, maxSpeed)

		vec2.Mul(&steer, &p.Vel, dt)
		vec2.Add(&p.Pos, &p.Pos, &steer)

		clamped := s.World.Clamp(p.Pos)
		if clamped.X != p.Pos.X {
			p.Vel.X = -p.Vel.X * wallDamping
		}
		if clamped.Y != p.Pos.Y {
			p.Vel.Y = -p.Vel.Y * wallDamping
		}
		p.Pos = clamped
	}
}

// Attractor is a point animated by critically damped springs toward a
// target, one spring per axis.
type Attractor struct {
	Pos, Vel vec2.Vec2
	spring   harmonica.Spring
}

func NewAttractor(fps int, start vec2.Vec2) *Attractor {
	return &Attractor{
		Pos: start,
		// Frequency 3.0 = gentle chase, damping 1.0 = critically damped
		spring: harmonica.NewSpring(harmonica.FPS(fps), 3.0, 1.0),
	}
}

func (a *Attractor) Update(target vec2.Vec2) {
	a.Pos.X, a.Vel.X = a.spring.Update(a.Pos.X, a.Vel.X, target.X)
	a.Pos.Y, a.Vel.Y = a.spring.Update(a.Pos.Y, a.Vel.Y, target.Y)
}

// orbitTarget returns the autopilot target: a point circling the world
// center.
func orbitTarget(world bound2.Bound2, elapsed float64) vec2.Vec2 {
	size := world.Size()
	r := math.Min(size.X, size.Y) * orbitRadius
	return world.Center().Add(vec2.FromAngle(elapsed * 0.8).Scale(r))
}

// frameDuration returns the frame budget for fps, treating anything below
// 1 as 1 so a bad --fps value cannot zero the divisor.
func frameDuration(fps int) time.Duration {
	if fps < 1 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

func glyph(speed float64) string {
	switch {
	case speed > maxSpeed*0.66:
		return "•"
	case speed > maxSpeed*0.33:
		return "∙"
	default:
		return "·"
	}
}

func run() error {
	if targetFPS < 1 {
		targetFPS = 1
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	log.Infof("vec2play: %d particles, seed %d", numParticles, seed)

	ap := ansipixels.NewAnsiPixels(float64(targetFPS))
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.MouseTrackingOn()
	ap.HideCursor()

	if ap.W <= 0 || ap.H <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
	}

	// Bottom row is reserved for the HUD.
	world := bound2.New(vec2.Zero(), vec2.New(float64(ap.W-1), float64(ap.H-2)))
	swarm := NewSwarm(numParticles, world, rng)
	attractor := NewAttractor(targetFPS, world.Center())

	autopilot := true
	showHUD := true
	target := world.Center()

	ap.OnMouse = func() {
		autopilot = false
		target = world.Clamp(vec2.New(float64(ap.Mx), float64(ap.My)))
	}

	targetDuration := frameDuration(targetFPS)
	start := time.Now()
	lastFrame := start

	for {
		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		_, err := ap.ReadOrResizeOrSignalOnce()
		if err != nil {
			return fmt.Errorf("input error: %w", err)
		}
		// Terminal may have been resized.
		world = bound2.New(vec2.Zero(), vec2.New(float64(ap.W-1), float64(ap.H-2)))
		swarm.World = world

		for _, b := range ap.Data {
			switch b {
			case ' ':
				swarm.Scatter()
			case 'r', 'R':
				swarm.Reset()
				attractor.Pos = world.Center()
				attractor.Vel = vec2.Zero()
			case 'a', 'A':
				autopilot = !autopilot
			case '?':
				showHUD = !showHUD
			case 'q', 'Q', 27: // Escape
				return nil
			}
		}

		if autopilot {
			target = orbitTarget(world, now.Sub(start).Seconds())
		}
		attractor.Update(target)
		swarm.Update(attractor.Pos, dt)

		ap.StartSyncMode()
		ap.ClearScreen()
		for i := range swarm.Particles {
			p := &swarm.Particles[i]
			ap.WriteAtStr(int(p.Pos.X), int(p.Pos.Y), glyph(p.Vel.Len()))
		}
		ap.WriteAtStr(int(attractor.Pos.X), int(attractor.Pos.Y), "◉")

		if showHUD {
			mode := "autopilot"
			if !autopilot {
				mode = "mouse"
			}
			ap.WriteAt(0, ap.H-1, "%d particles  attractor %s  [%s]  space: scatter  r: reset  a: autopilot  esc: quit",
				len(swarm.Particles), attractor.Pos.String(), mode)
		}
		ap.EndSyncMode()

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
