package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
	mAudit "github.com/meterex/goapi/domain/audit/mocks"
	mHeight "github.com/meterex/goapi/domain/height/mocks"
	mLedger "github.com/meterex/goapi/domain/ledger/mocks"
	"github.com/meterex/goapi/domain/listing"
	mListing "github.com/meterex/goapi/domain/listing/mocks"
	"github.com/meterex/goapi/domain/marketplace"
	mMarketplace "github.com/meterex/goapi/domain/marketplace/mocks"
	mRegistry "github.com/meterex/goapi/domain/registry/mocks"
	mQuery "github.com/meterex/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

const (
	paymentToken = domain.Address("0x00000000000000000000000000000000000000aa")
	feeCollector = domain.Address("0x00000000000000000000000000000000000000fc")
	seller       = domain.Address("0x0000000000000000000000000000000000000001")
	buyer        = domain.Address("0x0000000000000000000000000000000000000002")
	creditToken  = domain.Address("0x00000000000000000000000000000000000000cc")
)

type listingUseCaseSuite struct {
	suite.Suite

	listingRepo     *mListing.Repo
	saleRepo        *mListing.SaleRepo
	sellerIndexRepo *mListing.SellerIndexRepo
	sequenceRepo    *mListing.SequenceRepo
	registryUC      *mRegistry.UseCase
	marketplaceUC   *mMarketplace.UseCase
	ledgerUC        *mLedger.UseCase
	heightClock     *mHeight.Clock
	auditEmitter    *mAudit.Emitter
	query           *mQuery.Mongo

	im *impl
}

func TestListingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(listingUseCaseSuite))
}

func (s *listingUseCaseSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.saleRepo = &mListing.SaleRepo{}
	s.sellerIndexRepo = &mListing.SellerIndexRepo{}
	s.sequenceRepo = &mListing.SequenceRepo{}
	s.registryUC = &mRegistry.UseCase{}
	s.marketplaceUC = &mMarketplace.UseCase{}
	s.ledgerUC = &mLedger.UseCase{}
	s.heightClock = &mHeight.Clock{}
	s.auditEmitter = &mAudit.Emitter{}
	s.query = &mQuery.Mongo{}

	// transactions run the body directly
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) },
	)
	s.auditEmitter.On("Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	s.im = &impl{
		listingRepo:           s.listingRepo,
		saleRepo:              s.saleRepo,
		sellerIndexRepo:       s.sellerIndexRepo,
		sequenceRepo:          s.sequenceRepo,
		registryUC:            s.registryUC,
		marketplaceUC:         s.marketplaceUC,
		ledgerUC:              s.ledgerUC,
		heightClock:           s.heightClock,
		auditEmitter:          s.auditEmitter,
		q:                     s.query,
		paymentToken:          paymentToken,
		defaultDurationBlocks: 1000,
	}
}

func (s *listingUseCaseSuite) settings(paused bool) *marketplace.Settings {
	return &marketplace.Settings{
		Key:          marketplace.SettingsKey,
		Paused:       paused,
		FeeCollector: feeCollector,
	}
}

func (s *listingUseCaseSuite) activeListing() *listing.Listing {
	return &listing.Listing{
		Id:             1,
		Seller:         seller,
		CreditContract: creditToken,
		Amount:         1_000_000,
		PricePerUnit:   100,
		TotalPrice:     100_000_000,
		Active:         true,
		CreatedAt:      10,
		ExpiresAt:      1010,
	}
}

func (s *listingUseCaseSuite) TestCreateListing() {
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.registryUC.On("IsAuthorized", mockCtx, creditToken).Return(true, nil)
	s.sellerIndexRepo.On("Count", mockCtx, seller).Return(0, nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(10), nil)
	s.sequenceRepo.On("Next", mockCtx, listing.SequenceListings).Return(uint64(1), nil)
	s.listingRepo.On("Create", mockCtx, &listing.Listing{
		Id:             1,
		Seller:         seller,
		CreditContract: creditToken,
		Amount:         1_000_000,
		PricePerUnit:   100,
		TotalPrice:     100_000_000,
		Active:         true,
		CreatedAt:      10,
		ExpiresAt:      1010,
	}).Return(nil)
	s.sellerIndexRepo.On("Append", mockCtx, seller, uint64(1)).Return(nil)

	id, err := s.im.CreateListing(mockCtx, seller, creditToken, 1_000_000, 100, 1000)
	s.NoError(err)
	s.Equal(uint64(1), id)
}

func (s *listingUseCaseSuite) TestCreateListingPreconditionOrder() {
	cases := []struct {
		name       string
		paused     bool
		authorized bool
		amount     uint64
		price      uint64
		count      int
		wantErr    error
	}{
		{
			name:    "paused wins first",
			paused:  true,
			amount:  100,
			price:   1,
			wantErr: domain.ErrMarketplacePaused,
		},
		{
			name:       "unauthorized contract",
			authorized: false,
			amount:     100,
			price:      1,
			wantErr:    domain.ErrInvalidCreditContract,
		},
		{
			name:       "zero amount",
			authorized: true,
			amount:     0,
			price:      1,
			wantErr:    domain.ErrInvalidAmount,
		},
		{
			name:       "amount over cap",
			authorized: true,
			amount:     listing.MaxListingAmount + 1,
			price:      1,
			wantErr:    domain.ErrInvalidAmount,
		},
		{
			name:       "zero price",
			authorized: true,
			amount:     100,
			price:      0,
			wantErr:    domain.ErrInvalidPrice,
		},
		{
			name:       "price over cap",
			authorized: true,
			amount:     100,
			price:      listing.MaxPricePerUnit + 1,
			wantErr:    domain.ErrInvalidPrice,
		},
		{
			name:       "seller index full",
			authorized: true,
			amount:     100,
			price:      1,
			count:      listing.MaxListingsPerSeller,
			wantErr:    domain.ErrTooManyListings,
		},
	}

	for _, c := range cases {
		s.SetupTest()
		s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(c.paused), nil)
		s.registryUC.On("IsAuthorized", mockCtx, creditToken).Return(c.authorized, nil)
		s.sellerIndexRepo.On("Count", mockCtx, seller).Return(c.count, nil)

		_, err := s.im.CreateListing(mockCtx, seller, creditToken, c.amount, c.price, 0)
		s.ErrorIs(err, c.wantErr, c.name)

		// id counter must not advance on failure
		s.sequenceRepo.AssertNotCalled(s.T(), "Next", mock.Anything, mock.Anything)
	}
}

func (s *listingUseCaseSuite) TestCreateListingIndexFilledConcurrently() {
	// the first count passes but another create by the same seller
	// lands before our transaction, so the transactional re-check sees
	// a full index
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.registryUC.On("IsAuthorized", mockCtx, creditToken).Return(true, nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(10), nil)
	s.sellerIndexRepo.On("Count", mockCtx, seller).Return(listing.MaxListingsPerSeller-1, nil).Once()
	s.sellerIndexRepo.On("Count", mockCtx, seller).Return(listing.MaxListingsPerSeller, nil).Once()

	_, err := s.im.CreateListing(mockCtx, seller, creditToken, 100, 1, 0)
	s.ErrorIs(err, domain.ErrTooManyListings)

	s.sequenceRepo.AssertNotCalled(s.T(), "Next", mock.Anything, mock.Anything)
	s.listingRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestBuyListing() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(500), nil)
	s.listingRepo.On("Deactivate", mockCtx, uint64(1)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, paymentToken, buyer, seller, uint64(97_500_000)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, paymentToken, buyer, feeCollector, uint64(2_500_000)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, creditToken, seller, buyer, uint64(1_000_000)).Return(nil)
	s.sellerIndexRepo.On("Remove", mockCtx, seller, uint64(1)).Return(nil)
	s.sequenceRepo.On("Next", mockCtx, listing.SequenceSales).Return(uint64(1), nil)
	s.saleRepo.On("Create", mockCtx, &listing.Sale{
		Id:             1,
		ListingId:      1,
		Seller:         seller,
		Buyer:          buyer,
		CreditContract: creditToken,
		Amount:         1_000_000,
		PricePaid:      100_000_000,
		Fee:            2_500_000,
		CompletedAt:    500,
	}).Return(nil)

	saleId, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.NoError(err)
	s.Equal(uint64(1), saleId)
	s.ledgerUC.AssertExpectations(s.T())
	s.saleRepo.AssertExpectations(s.T())
}

func (s *listingUseCaseSuite) TestBuyListingNotFound() {
	s.listingRepo.On("FindOne", mockCtx, uint64(7)).Return(nil, domain.ErrNotFound)

	_, err := s.im.BuyListing(mockCtx, buyer, 7)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingUseCaseSuite) TestBuyListingPaused() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(true), nil)

	_, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrMarketplacePaused)
	s.ledgerUC.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestBuyListingInactive() {
	l := s.activeListing()
	l.Active = false
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(l, nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)

	_, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrListingInactive)
}

func (s *listingUseCaseSuite) TestBuyListingExpired() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(1011), nil)

	_, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrListingInactive)

	// lazy expiry, the stored record is not rewritten
	s.listingRepo.AssertNotCalled(s.T(), "Deactivate", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestBuyListingAtExpiryHeightStillSettles() {
	// expiry is exclusive, a buy at exactly expiresAt goes through
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(1010), nil)
	s.listingRepo.On("Deactivate", mockCtx, uint64(1)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, paymentToken, buyer, seller, uint64(97_500_000)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, paymentToken, buyer, feeCollector, uint64(2_500_000)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, creditToken, seller, buyer, uint64(1_000_000)).Return(nil)
	s.sellerIndexRepo.On("Remove", mockCtx, seller, uint64(1)).Return(nil)
	s.sequenceRepo.On("Next", mockCtx, listing.SequenceSales).Return(uint64(1), nil)
	s.saleRepo.On("Create", mockCtx, mock.MatchedBy(func(sale *listing.Sale) bool {
		return sale.CompletedAt == 1010
	})).Return(nil)

	saleId, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.NoError(err)
	s.Equal(uint64(1), saleId)
}

func (s *listingUseCaseSuite) TestBuyListingFeeCollectorUnset() {
	st := s.settings(false)
	st.FeeCollector = ""
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(st, nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(500), nil)

	_, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrFeeCollectorUnset)

	// settlement is rejected before anything is written
	s.listingRepo.AssertNotCalled(s.T(), "Deactivate", mock.Anything, mock.Anything)
	s.ledgerUC.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestBuyListingSelfBuy() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(500), nil)

	_, err := s.im.BuyListing(mockCtx, seller, 1)
	s.ErrorIs(err, domain.ErrCannotBuyOwnListing)
}

func (s *listingUseCaseSuite) TestBuyListingConcurrentLoser() {
	// the listing still read active but another settlement won the
	// compare-and-set before our transaction
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(500), nil)
	s.listingRepo.On("Deactivate", mockCtx, uint64(1)).Return(domain.ErrNotFound)

	_, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrListingInactive)

	s.ledgerUC.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.sequenceRepo.AssertNotCalled(s.T(), "Next", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestBuyListingInsufficientBalance() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.marketplaceUC.On("GetStatus", mockCtx).Return(s.settings(false), nil)
	s.heightClock.On("Height", mockCtx).Return(domain.BlockHeight(500), nil)
	s.listingRepo.On("Deactivate", mockCtx, uint64(1)).Return(nil)
	s.ledgerUC.On("Transfer", mockCtx, paymentToken, buyer, seller, uint64(97_500_000)).Return(domain.ErrInsufficientBalance)

	_, err := s.im.BuyListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrInsufficientBalance)

	// sale counter must not advance on an aborted settlement
	s.sequenceRepo.AssertNotCalled(s.T(), "Next", mock.Anything, mock.Anything)
	s.saleRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestCancelListing() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)
	s.listingRepo.On("Deactivate", mockCtx, uint64(1)).Return(nil)
	s.sellerIndexRepo.On("Remove", mockCtx, seller, uint64(1)).Return(nil)

	s.NoError(s.im.CancelListing(mockCtx, seller, 1))
}

func (s *listingUseCaseSuite) TestCancelListingExpiredStillWorks() {
	l := s.activeListing()
	l.ExpiresAt = 1 // long past
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(l, nil)
	s.listingRepo.On("Deactivate", mockCtx, uint64(1)).Return(nil)
	s.sellerIndexRepo.On("Remove", mockCtx, seller, uint64(1)).Return(nil)

	s.NoError(s.im.CancelListing(mockCtx, seller, 1))

	// expiry is never consulted on cancellation
	s.heightClock.AssertNotCalled(s.T(), "Height", mock.Anything)
}

func (s *listingUseCaseSuite) TestCancelListingNotSeller() {
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(s.activeListing(), nil)

	err := s.im.CancelListing(mockCtx, buyer, 1)
	s.ErrorIs(err, domain.ErrUnauthorized)
}

func (s *listingUseCaseSuite) TestCancelListingInactive() {
	l := s.activeListing()
	l.Active = false
	s.listingRepo.On("FindOne", mockCtx, uint64(1)).Return(l, nil)

	err := s.im.CancelListing(mockCtx, seller, 1)
	s.ErrorIs(err, domain.ErrListingInactive)
}

func (s *listingUseCaseSuite) TestCancelListingNotFound() {
	s.listingRepo.On("FindOne", mockCtx, uint64(9)).Return(nil, domain.ErrNotFound)

	err := s.im.CancelListing(mockCtx, seller, 9)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *listingUseCaseSuite) TestListBySellerKeepsInsertionOrder() {
	s.sellerIndexRepo.On("ListingIds", mockCtx, seller).Return([]uint64{3, 1}, nil)

	l1 := &listing.Listing{Id: 1, Seller: seller}
	l3 := &listing.Listing{Id: 3, Seller: seller}
	s.listingRepo.On("FindAll", mockCtx, mock.Anything).Return([]*listing.Listing{l1, l3}, nil)

	res, err := s.im.ListBySeller(mockCtx, seller)
	s.NoError(err)
	s.Equal([]*listing.Listing{l3, l1}, res)
}

func (s *listingUseCaseSuite) TestGetNextListingId() {
	s.sequenceRepo.On("Current", mockCtx, listing.SequenceListings).Return(uint64(0), nil)

	id, err := s.im.GetNextListingId(mockCtx)
	s.NoError(err)
	s.Equal(uint64(1), id)
}

func (s *listingUseCaseSuite) TestGetTotalSales() {
	s.sequenceRepo.On("Current", mockCtx, listing.SequenceSales).Return(uint64(5), nil)

	total, err := s.im.GetTotalSales(mockCtx)
	s.NoError(err)
	s.Equal(uint64(5), total)
}
