package listing

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

// Sale is the immutable record of a completed trade. It is never
// updated or deleted after insertion.
type Sale struct {
	Id             uint64             `json:"id" bson:"id"`
	ListingId      uint64             `json:"listingId" bson:"listingId"`
	Seller         domain.Address     `json:"seller" bson:"seller"`
	Buyer          domain.Address     `json:"buyer" bson:"buyer"`
	CreditContract domain.Address     `json:"creditContract" bson:"creditContract"`
	Amount         uint64             `json:"amount" bson:"amount"`
	PricePaid      uint64             `json:"pricePaid" bson:"pricePaid"`
	Fee            uint64             `json:"fee" bson:"fee"`
	CompletedAt    domain.BlockHeight `json:"completedAt" bson:"completedAt"`
}

// SaleRepo owns the append-only sale ledger
type SaleRepo interface {
	Create(ctx ctx.Ctx, sale *Sale) error
	FindOne(ctx ctx.Ctx, id uint64) (*Sale, error)
	Count(ctx ctx.Ctx) (int, error)
}
