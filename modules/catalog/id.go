package catalog

import (
	"strconv"
	"time"

	gonanoid "github.com/jaevor/go-nanoid"
)

// ID alphabet matches the base36 millisecond prefix so generated ids
// stay lowercase alphanumeric throughout.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idSuffixLength sizes the random tail. 11 characters of base36 on top
// of the millisecond prefix makes collisions vanishingly unlikely even
// across independently running instances whose documents later merge.
const idSuffixLength = 11

var newIDSuffix = mustIDGenerator()

func mustIDGenerator() func() string {
	gen, err := gonanoid.CustomASCII(idAlphabet, idSuffixLength)
	if err != nil {
		panic(err)
	}
	return gen
}

// NewID returns a collision-resistant identifier for new products and
// reviews: the current Unix milliseconds in base36 followed by a random
// suffix. The monotonic-time prefix keeps ids from concurrent instances
// roughly sortable by creation time.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + newIDSuffix()
}
