package mapgen

import (
	"fmt"
	"time"

	"game-toolkit/internal/physics"
	"game-toolkit/internal/primitives"
	"game-toolkit/internal/scene"

	"github.com/chewxy/math32"
)

// minHeight keeps every terrain column visible and collidable.
const minHeight = float32(0.15)

// HeightMapOptions controls procedural height map generation.
// Width/Depth are in tiles; TileSize is the world size of one tile on X/Z.
// HeightScale is the maximum height of the terrain in world units.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type HeightMapOptions struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultHeightMapOptions returns a sane default configuration.
func DefaultHeightMapOptions() HeightMapOptions {
	return HeightMapOptions{
		Width:       32,
		Depth:       32,
		TileSize:    1.0,
		HeightScale: 3.0,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// Spawn is one primitive to create: a type and the options to create it with.
type Spawn struct {
	Type    primitives.Type
	Options *primitives.Options3DWithPhysics
}

func (o *HeightMapOptions) normalize() {
	if o.TileSize <= 0 {
		o.TileSize = 1
	}
	if o.HeightScale <= minHeight {
		o.HeightScale = 1
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
}

// GenerateHeightMap builds a height map as a grid of static cubes sitting on Y=0,
// centered on the origin. Each tile's height comes from fractal noise and each cube
// carries its own static container, so the terrain collides with dynamic bodies.
func GenerateHeightMap(opts HeightMapOptions) []Spawn {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	opts.normalize()

	halfTile := opts.TileSize * 0.5
	startX := -float32(opts.Width)*halfTile + halfTile
	startZ := -float32(opts.Depth)*halfTile + halfTile

	out := make([]Spawn, 0, opts.Width*opts.Depth)
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, opts.Seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			height := minHeight + h*(opts.HeightScale-minHeight)
			if math32.IsNaN(height) || math32.IsInf(height, 0) || height <= 0 {
				height = minHeight
			}
			o := primitives.NewOptions3DWithPhysics().
				WithPosition(startX+float32(x)*opts.TileSize, height*0.5, startZ+float32(z)*opts.TileSize).
				WithSize(opts.TileSize, height, opts.TileSize).
				WithComponent(physics.NewStaticComponent(nil))
			o.EntityName = fmt.Sprintf("terrain-%d-%d", x, z)
			out = append(out, Spawn{Type: primitives.Cube, Options: o})
		}
	}
	return out
}

// Populate creates every spawn in scn and returns how many were created.
// It stops at the first error.
func Populate(scn *scene.Scene, spawns []Spawn) (int, error) {
	for i, sp := range spawns {
		if _, err := scn.Create3DPrimitive(sp.Type, sp.Options); err != nil {
			return i, fmt.Errorf("mapgen: spawn %d: %w", i, err)
		}
	}
	return len(spawns), nil
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value noise with
// configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amplitude, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func valueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	sx := smoothStep(x - float32(x0))
	sy := smoothStep(y - float32(y0))

	ix0 := lerp(hash2D(x0, y0, seed), hash2D(x0+1, y0, seed), sx)
	ix1 := lerp(hash2D(x0, y0+1, seed), hash2D(x0+1, y0+1, seed), sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
