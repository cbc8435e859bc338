package identifier

import (
	"strconv"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	alphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixSize = 11
)

// New returns a collision-resistant-enough record identifier: the current
// millisecond epoch in base36 followed by a random base36 suffix. The time
// prefix keeps ids roughly sortable by creation.
func New() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return prefix + gonanoid.MustGenerate(alphabet, suffixSize)
}
