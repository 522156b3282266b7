// Package id generates request identifiers.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces ULIDs that increase monotonically, including within the
// same millisecond. It is safe for concurrent use.
type Generator struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewGenerator returns a Generator whose entropy is seeded with seed.
// A zero seed is replaced with one read from crypto/rand.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
		now:     time.Now,
	}
}

// Next returns a new ULID string.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		// Only possible when the monotonic entropy overflows within one millisecond.
		panic(err)
	}
	return id.String()
}

var defaultGenerator = NewGenerator(0)

// New returns a ULID string from the package generator.
func New() string {
	return defaultGenerator.Next()
}

// Valid reports whether s is a well-formed ULID.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
