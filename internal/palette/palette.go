// Package palette parses user supplied colors and generates the random colors
// used by the rainbow animation and the profile accent.
package palette

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse normalises a color to lowercase "#rrggbb". It accepts "#rgb",
// "#rrggbb" and both forms without the leading hash.
func Parse(value string) (string, error) {
	raw := strings.TrimSpace(value)
	raw = strings.TrimPrefix(raw, "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 {
		return "", fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", value)
	}
	c, err := colorful.Hex("#" + raw)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", value, err)
	}
	return c.Hex(), nil
}

// Valid reports whether Parse accepts value.
func Valid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Generator produces random colors from its own source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic generator for tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Hex returns any 24-bit color.
func (g *Generator) Hex() string {
	return rgb(g.channel(), g.channel(), g.channel())
}

// Light returns a color with every channel lifted by 200 and capped at 255.
func (g *Generator) Light() string {
	lift := func(v uint8) uint8 {
		if int(v)+200 > 255 {
			return 255
		}
		return v + 200
	}
	return rgb(lift(g.channel()), lift(g.channel()), lift(g.channel()))
}

func (g *Generator) channel() uint8 {
	return uint8(g.rng.IntN(256))
}

func rgb(r, g, b uint8) string {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	return c.Hex()
}
