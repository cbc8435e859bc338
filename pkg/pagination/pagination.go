package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Bounds for the page window of list endpoints. Every listing walks the
// in-memory collections, so the cap keeps a single response from returning
// the whole dataset.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params is the normalized page window a listing call asked for.
type Params struct {
	Page  int
	Limit int
}

// Parse reads page and limit from the query string. Missing, non-numeric or
// out-of-range values fall back to the defaults; limit is clamped to
// MaxLimit.
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}
