package height

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

// Clock supplies the platform's logical time. Production reads the
// block height from the chain; tests inject a fixed height.
type Clock interface {
	Height(ctx ctx.Ctx) (domain.BlockHeight, error)
}
