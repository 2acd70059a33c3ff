package listing

import (
	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

const (
	// MaxListingAmount bounds the credit quantity of a single listing
	MaxListingAmount uint64 = 1_000_000_000

	// MaxPricePerUnit bounds the unit price of a single listing
	MaxPricePerUnit uint64 = 1_000_000_000

	// MaxListingsPerSeller bounds the outstanding listings of one seller
	MaxListingsPerSeller = 50
)

// Listing is an open offer to sell a quantity of an authorized credit
// token at a fixed unit price. Active turns false exactly once, on
// cancellation or sale, and never turns back.
type Listing struct {
	Id             uint64             `json:"id" bson:"id"`
	Seller         domain.Address     `json:"seller" bson:"seller"`
	CreditContract domain.Address     `json:"creditContract" bson:"creditContract"`
	Amount         uint64             `json:"amount" bson:"amount"`
	PricePerUnit   uint64             `json:"pricePerUnit" bson:"pricePerUnit"`
	TotalPrice     uint64             `json:"totalPrice" bson:"totalPrice"`
	Active         bool               `json:"active" bson:"active"`
	CreatedAt      domain.BlockHeight `json:"createdAt" bson:"createdAt"`
	ExpiresAt      domain.BlockHeight `json:"expiresAt" bson:"expiresAt"`
}

func (l *Listing) LowerCase() {
	l.Seller = l.Seller.ToLower()
	l.CreditContract = l.CreditContract.ToLower()
}

type FindAllOptions struct {
	Ids    *[]uint64
	Seller *domain.Address
	Active *bool
	Offset *int32
	Limit  *int32
	Sort   *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithIds(ids []uint64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Ids = &ids
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithActive(active bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Active = &active
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// Repo owns the mutable listing records
type Repo interface {
	FindOne(ctx ctx.Ctx, id uint64) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Create(ctx ctx.Ctx, listing *Listing) error

	// Deactivate flips active to false through a compare-and-set on the
	// active flag. It returns domain.ErrNotFound when no active listing
	// matched, which makes it the single-winner guard for settlement.
	Deactivate(ctx ctx.Ctx, id uint64) error
}

// SellerIndexRepo holds non-owning listing id back-references per
// seller, in insertion order, used only for lookup
type SellerIndexRepo interface {
	Append(ctx ctx.Ctx, seller domain.Address, listingId uint64) error
	Remove(ctx ctx.Ctx, seller domain.Address, listingId uint64) error
	ListingIds(ctx ctx.Ctx, seller domain.Address) ([]uint64, error)
	Count(ctx ctx.Ctx, seller domain.Address) (int, error)
}

// SequenceRepo allocates strictly increasing identifiers starting at 1
type SequenceRepo interface {
	Next(ctx ctx.Ctx, name string) (uint64, error)
	Current(ctx ctx.Ctx, name string) (uint64, error)
}

const (
	SequenceListings = "listings"
	SequenceSales    = "sales"
)

type UseCase interface {
	CreateListing(ctx ctx.Ctx, seller domain.Address, creditContract domain.Address, amount, pricePerUnit uint64, durationBlocks uint64) (uint64, error)
	CancelListing(ctx ctx.Ctx, caller domain.Address, listingId uint64) error
	BuyListing(ctx ctx.Ctx, buyer domain.Address, listingId uint64) (uint64, error)

	GetListing(ctx ctx.Ctx, listingId uint64) (*Listing, error)
	ListBySeller(ctx ctx.Ctx, seller domain.Address) ([]*Listing, error)
	GetNextListingId(ctx ctx.Ctx) (uint64, error)
	GetTotalSales(ctx ctx.Ctx) (uint64, error)
	GetSaleDetails(ctx ctx.Ctx, saleId uint64) (*Sale, error)
}
