package marketplace

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

// SettingsKey identifies the single settings document
const SettingsKey = "marketplace"

// Settings is the operational state of the marketplace. Paused gates
// listing creation and settlement, never cancellation.
type Settings struct {
	Key          string         `json:"-" bson:"key"`
	Paused       bool           `json:"paused" bson:"paused"`
	FeeCollector domain.Address `json:"feeCollector" bson:"feeCollector"`
}

type SettingsPatchable struct {
	Paused       *bool           `bson:"paused,omitempty"`
	FeeCollector *domain.Address `bson:"feeCollector,omitempty"`
}

type Repo interface {
	Get(ctx ctx.Ctx) (*Settings, error)
	Patch(ctx ctx.Ctx, patchable SettingsPatchable) error
}

type UseCase interface {
	GetStatus(ctx ctx.Ctx) (*Settings, error)
	SetPaused(ctx ctx.Ctx, actor domain.Address, paused bool) error
	SetFeeCollector(ctx ctx.Ctx, actor domain.Address, collector domain.Address) error
}
