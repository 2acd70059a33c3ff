package redis

import (
	"fmt"
	"time"

	"github.com/meterex/goapi/base/ctx"
)

var (
	// ErrNotFound is returned on cache miss
	ErrNotFound = fmt.Errorf("key not found")
)

// Forever marks a key without expiry
const Forever = time.Duration(-1)

// Service provides the redis operations used by the cache middleware
// and the healthcheck probe
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Delete(context ctx.Ctx, key string) error
}
