package usecase

import (
	"github.com/meterex/goapi/base/ctx"
	xctx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/audit"
	"github.com/meterex/goapi/domain/height"
	"github.com/meterex/goapi/domain/ledger"
	"github.com/meterex/goapi/domain/listing"
	"github.com/meterex/goapi/domain/marketplace"
	"github.com/meterex/goapi/domain/registry"
	"github.com/meterex/goapi/service/query"
)

type ListingUseCaseCfg struct {
	ListingRepo     listing.Repo
	SaleRepo        listing.SaleRepo
	SellerIndexRepo listing.SellerIndexRepo
	SequenceRepo    listing.SequenceRepo
	RegistryUC      registry.UseCase
	MarketplaceUC   marketplace.UseCase
	LedgerUC        ledger.UseCase
	HeightClock     height.Clock
	AuditEmitter    audit.Emitter
	Query           query.Mongo

	// PaymentToken denominates every price on the marketplace
	PaymentToken domain.Address

	// DefaultDurationBlocks is applied when a create request carries no
	// duration
	DefaultDurationBlocks uint64
}

type impl struct {
	listingRepo     listing.Repo
	saleRepo        listing.SaleRepo
	sellerIndexRepo listing.SellerIndexRepo
	sequenceRepo    listing.SequenceRepo
	registryUC      registry.UseCase
	marketplaceUC   marketplace.UseCase
	ledgerUC        ledger.UseCase
	heightClock     height.Clock
	auditEmitter    audit.Emitter
	q               query.Mongo

	paymentToken          domain.Address
	defaultDurationBlocks uint64
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:           cfg.ListingRepo,
		saleRepo:              cfg.SaleRepo,
		sellerIndexRepo:       cfg.SellerIndexRepo,
		sequenceRepo:          cfg.SequenceRepo,
		registryUC:            cfg.RegistryUC,
		marketplaceUC:         cfg.MarketplaceUC,
		ledgerUC:              cfg.LedgerUC,
		heightClock:           cfg.HeightClock,
		auditEmitter:          cfg.AuditEmitter,
		q:                     cfg.Query,
		paymentToken:          cfg.PaymentToken.ToLower(),
		defaultDurationBlocks: cfg.DefaultDurationBlocks,
	}
}

// CreateListing validates in a fixed order so the first violated
// precondition wins, and allocates the listing id only after every
// check passed. A failed create never advances the counter.
func (im *impl) CreateListing(ctx ctx.Ctx, seller, creditContract domain.Address, amount, pricePerUnit, durationBlocks uint64) (uint64, error) {
	seller = seller.ToLower()
	creditContract = creditContract.ToLower()

	settings, err := im.marketplaceUC.GetStatus(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceUC.GetStatus")
		return 0, err
	}
	if settings.Paused {
		return 0, domain.ErrMarketplacePaused
	}

	authorized, err := im.registryUC.IsAuthorized(ctx, creditContract)
	if err != nil {
		ctx.WithField("err", err).Error("failed to registryUC.IsAuthorized")
		return 0, err
	}
	if !authorized {
		return 0, domain.ErrInvalidCreditContract
	}

	if amount == 0 || amount > listing.MaxListingAmount {
		return 0, domain.ErrInvalidAmount
	}
	if pricePerUnit == 0 || pricePerUnit > listing.MaxPricePerUnit {
		return 0, domain.ErrInvalidPrice
	}

	cnt, err := im.sellerIndexRepo.Count(ctx, seller)
	if err != nil {
		ctx.WithField("err", err).Error("failed to sellerIndexRepo.Count")
		return 0, err
	}
	if cnt >= listing.MaxListingsPerSeller {
		return 0, domain.ErrTooManyListings
	}

	h, err := im.heightClock.Height(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to heightClock.Height")
		return 0, err
	}

	if durationBlocks == 0 {
		durationBlocks = im.defaultDurationBlocks
	}

	var id uint64
	err = im.q.RunWithTransaction(ctx, func(c xctx.Ctx) error {
		// the pre-transaction count can be stale under concurrent
		// creates, re-check through the transactional session
		cnt, err := im.sellerIndexRepo.Count(c, seller)
		if err != nil {
			return err
		}
		if cnt >= listing.MaxListingsPerSeller {
			return domain.ErrTooManyListings
		}

		id, err = im.sequenceRepo.Next(c, listing.SequenceListings)
		if err != nil {
			return err
		}

		l := &listing.Listing{
			Id:             id,
			Seller:         seller,
			CreditContract: creditContract,
			Amount:         amount,
			PricePerUnit:   pricePerUnit,
			TotalPrice:     amount * pricePerUnit,
			Active:         true,
			CreatedAt:      h,
			ExpiresAt:      h + domain.BlockHeight(durationBlocks),
		}
		if err := im.listingRepo.Create(c, l); err != nil {
			return err
		}

		return im.sellerIndexRepo.Append(c, seller, id)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"seller": seller,
		}).Error("create listing transaction failed")
		return 0, err
	}

	im.auditEmitter.Emit(ctx, audit.KindListingCreated, seller, map[string]interface{}{
		"listingId":      id,
		"creditContract": creditContract,
		"amount":         amount,
		"pricePerUnit":   pricePerUnit,
		"expiresAt":      h + domain.BlockHeight(durationBlocks),
	})

	return id, nil
}

// CancelListing succeeds for expired listings; expiry only blocks
// settlement. Pause state is not consulted, sellers can always back
// out.
func (im *impl) CancelListing(ctx ctx.Ctx, caller domain.Address, listingId uint64) error {
	caller = caller.ToLower()

	l, err := im.listingRepo.FindOne(ctx, listingId)
	if err != nil {
		return err
	}

	if !l.Seller.Equals(caller) {
		return domain.ErrUnauthorized
	}

	if !l.Active {
		return domain.ErrListingInactive
	}

	err = im.q.RunWithTransaction(ctx, func(c xctx.Ctx) error {
		if err := im.listingRepo.Deactivate(c, listingId); err != nil {
			if err == domain.ErrNotFound {
				return domain.ErrListingInactive
			}
			return err
		}
		return im.sellerIndexRepo.Remove(c, l.Seller, listingId)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("cancel listing transaction failed")
		return err
	}

	im.auditEmitter.Emit(ctx, audit.KindListingCancelled, caller, map[string]interface{}{
		"listingId": listingId,
	})

	return nil
}

// BuyListing settles a listing in one storage transaction: the
// compare-and-set deactivation runs first so of n concurrent buyers
// exactly one proceeds to move value, and an aborted transaction
// leaves no partial payment behind.
func (im *impl) BuyListing(ctx ctx.Ctx, buyer domain.Address, listingId uint64) (uint64, error) {
	buyer = buyer.ToLower()

	l, err := im.listingRepo.FindOne(ctx, listingId)
	if err != nil {
		return 0, err
	}

	settings, err := im.marketplaceUC.GetStatus(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to marketplaceUC.GetStatus")
		return 0, err
	}
	if settings.Paused {
		return 0, domain.ErrMarketplacePaused
	}

	if !l.Active {
		return 0, domain.ErrListingInactive
	}

	h, err := im.heightClock.Height(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("failed to heightClock.Height")
		return 0, err
	}
	if h > l.ExpiresAt {
		// lazy expiry, the stored flag stays untouched; a buy at
		// exactly expiresAt still settles
		return 0, domain.ErrListingInactive
	}

	if l.Seller.Equals(buyer) {
		return 0, domain.ErrCannotBuyOwnListing
	}

	sellerAmount, fee := listing.SplitPrice(l.TotalPrice)
	feeCollector := settings.FeeCollector.ToLower()
	if fee > 0 && feeCollector.IsEmpty() {
		return 0, domain.ErrFeeCollectorUnset
	}

	var saleId uint64
	err = im.q.RunWithTransaction(ctx, func(c xctx.Ctx) error {
		if err := im.listingRepo.Deactivate(c, listingId); err != nil {
			if err == domain.ErrNotFound {
				return domain.ErrListingInactive
			}
			return err
		}

		if err := im.ledgerUC.Transfer(c, im.paymentToken, buyer, l.Seller, sellerAmount); err != nil {
			return err
		}
		if fee > 0 {
			if err := im.ledgerUC.Transfer(c, im.paymentToken, buyer, feeCollector, fee); err != nil {
				return err
			}
		}
		if err := im.ledgerUC.Transfer(c, l.CreditContract, l.Seller, buyer, l.Amount); err != nil {
			return err
		}

		if err := im.sellerIndexRepo.Remove(c, l.Seller, listingId); err != nil {
			return err
		}

		var err error
		saleId, err = im.sequenceRepo.Next(c, listing.SequenceSales)
		if err != nil {
			return err
		}

		return im.saleRepo.Create(c, &listing.Sale{
			Id:             saleId,
			ListingId:      listingId,
			Seller:         l.Seller,
			Buyer:          buyer,
			CreditContract: l.CreditContract,
			Amount:         l.Amount,
			PricePaid:      l.TotalPrice,
			Fee:            fee,
			CompletedAt:    h,
		})
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"buyer":     buyer,
		}).Error("settlement transaction failed")
		return 0, err
	}

	im.auditEmitter.Emit(ctx, audit.KindListingSold, buyer, map[string]interface{}{
		"listingId": listingId,
		"saleId":    saleId,
		"seller":    l.Seller,
		"pricePaid": l.TotalPrice,
		"fee":       fee,
	})

	return saleId, nil
}

func (im *impl) GetListing(ctx ctx.Ctx, listingId uint64) (*listing.Listing, error) {
	return im.listingRepo.FindOne(ctx, listingId)
}

// ListBySeller resolves through the seller index so results come back
// in insertion order.
func (im *impl) ListBySeller(ctx ctx.Ctx, seller domain.Address) ([]*listing.Listing, error) {
	seller = seller.ToLower()

	ids, err := im.sellerIndexRepo.ListingIds(ctx, seller)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*listing.Listing{}, nil
	}

	ls, err := im.listingRepo.FindAll(ctx, listing.WithIds(ids))
	if err != nil {
		return nil, err
	}

	byId := make(map[uint64]*listing.Listing, len(ls))
	for _, l := range ls {
		byId[l.Id] = l
	}

	res := make([]*listing.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byId[id]; ok {
			res = append(res, l)
		}
	}
	return res, nil
}

func (im *impl) GetNextListingId(ctx ctx.Ctx) (uint64, error) {
	cur, err := im.sequenceRepo.Current(ctx, listing.SequenceListings)
	if err != nil {
		return 0, err
	}
	return cur + 1, nil
}

func (im *impl) GetTotalSales(ctx ctx.Ctx) (uint64, error) {
	cur, err := im.sequenceRepo.Current(ctx, listing.SequenceSales)
	if err != nil {
		return 0, err
	}
	return cur, nil
}

func (im *impl) GetSaleDetails(ctx ctx.Ctx, saleId uint64) (*listing.Sale, error) {
	return im.saleRepo.FindOne(ctx, saleId)
}
