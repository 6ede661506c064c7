// Package mthtesting provides deterministic leaf fixtures for tests that
// exercise trees built by the mth package. The generated data is synthetic
// but shaped like production input: each leaf is the digest of a unique
// event identity.
package mthtesting

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	sha256 "github.com/minio/sha256-simd"
)

type TestConfig struct {
	// We seed the RNG with the provided Seed. It is normal to force it to
	// some fixed value so that the generated leaves are the same from run
	// to run.
	Seed            int64
	TestLabelPrefix string
}

type LeafGenerator struct {
	cfg TestConfig
	rng *rand.Rand
}

func NewLeafGenerator(cfg TestConfig) *LeafGenerator {
	return &LeafGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// GenerateLeaf returns the next synthetic leaf: the sha256 of an event
// identity derived from the generator's rng.
func (g *LeafGenerator) GenerateLeaf() []byte {
	id := uuid.Must(uuid.NewRandomFromReader(g.rng))
	sum := sha256.Sum256(fmt.Appendf(nil, "%sevents/%s", g.cfg.TestLabelPrefix, id.String()))
	return sum[:]
}

// GenerateLeaves returns count leaves in generation order.
func (g *LeafGenerator) GenerateLeaves(count int) [][]byte {
	leaves := make([][]byte, count)
	for i := range leaves {
		leaves[i] = g.GenerateLeaf()
	}
	return leaves
}
