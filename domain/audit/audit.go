package audit

import (
	"time"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

type Kind string

const (
	KindContractAuthorized  Kind = "contractAuthorized"
	KindContractRevoked     Kind = "contractRevoked"
	KindListingCreated      Kind = "listingCreated"
	KindListingCancelled    Kind = "listingCancelled"
	KindListingSold         Kind = "listingSold"
	KindMarketplacePaused   Kind = "marketplacePaused"
	KindMarketplaceUnpaused Kind = "marketplaceUnpaused"
	KindFeeCollectorChanged Kind = "feeCollectorChanged"
	KindDeposit             Kind = "deposit"
)

// Event is one append-only audit record. Subject carries the ids and
// amounts specific to the kind.
type Event struct {
	Id        string                 `json:"id" bson:"id"`
	Kind      Kind                   `json:"kind" bson:"kind"`
	Actor     domain.Address         `json:"actor" bson:"actor"`
	Subject   map[string]interface{} `json:"subject" bson:"subject"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}

type Repo interface {
	Create(ctx ctx.Ctx, event *Event) error
}

// Emitter is a fire-and-forget side channel. Emit never reports
// failure to the caller; a lost event must not fail the mutation that
// produced it.
type Emitter interface {
	Emit(ctx ctx.Ctx, kind Kind, actor domain.Address, subject map[string]interface{})
}
