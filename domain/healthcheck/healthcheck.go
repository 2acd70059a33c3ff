package healthcheck

import (
	"github.com/meterex/goapi/base/ctx"
)

// HealthCheckRepo probes the storage dependencies
type HealthCheckRepo interface {
	PingDB(ctx ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck's usecase
type HealthCheckUsecase interface {
	Check(ctx ctx.Ctx) error
}
