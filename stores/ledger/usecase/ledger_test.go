package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
	mAudit "github.com/meterex/goapi/domain/audit/mocks"
	"github.com/meterex/goapi/domain/ledger"
	mLedger "github.com/meterex/goapi/domain/ledger/mocks"
)

var mockCtx = ctx.Background()

type ledgerUseCaseSuite struct {
	suite.Suite

	repo    *mLedger.Repo
	emitter *mAudit.Emitter
	im      ledger.UseCase
}

func TestLedgerUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ledgerUseCaseSuite))
}

func (s *ledgerUseCaseSuite) SetupTest() {
	s.repo = &mLedger.Repo{}
	s.emitter = &mAudit.Emitter{}
	s.emitter.On("Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	s.im = New(&LedgerUseCaseCfg{
		BalanceRepo:  s.repo,
		AuditEmitter: s.emitter,
	})
}

func (s *ledgerUseCaseSuite) TestTransfer() {
	s.repo.On("Debit", mockCtx, domain.Address("0xtoken"), domain.Address("0xa"), uint64(100)).Return(nil)
	s.repo.On("Credit", mockCtx, domain.Address("0xtoken"), domain.Address("0xb"), uint64(100)).Return(nil)

	s.NoError(s.im.Transfer(mockCtx, "0xtoken", "0xa", "0xb", 100))
	s.repo.AssertExpectations(s.T())
}

func (s *ledgerUseCaseSuite) TestTransferInsufficient() {
	s.repo.On("Debit", mockCtx, domain.Address("0xtoken"), domain.Address("0xa"), uint64(100)).Return(domain.ErrInsufficientBalance)

	err := s.im.Transfer(mockCtx, "0xtoken", "0xa", "0xb", 100)
	s.ErrorIs(err, domain.ErrInsufficientBalance)

	// receiver is never credited when the debit failed
	s.repo.AssertNotCalled(s.T(), "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ledgerUseCaseSuite) TestTransferToSelf() {
	err := s.im.Transfer(mockCtx, "0xtoken", "0xa", "0xa", 100)
	s.ErrorIs(err, domain.ErrTransferFailed)
}

func (s *ledgerUseCaseSuite) TestTransferZeroIsNoop() {
	s.NoError(s.im.Transfer(mockCtx, "0xtoken", "0xa", "0xb", 0))
	s.repo.AssertNotCalled(s.T(), "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ledgerUseCaseSuite) TestDeposit() {
	s.repo.On("Credit", mockCtx, domain.Address("0xtoken"), domain.Address("0xa"), uint64(500)).Return(nil)

	s.NoError(s.im.Deposit(mockCtx, "0xowner", "0xtoken", "0xa", 500))
	s.repo.AssertExpectations(s.T())
}

func (s *ledgerUseCaseSuite) TestDepositZero() {
	err := s.im.Deposit(mockCtx, "0xowner", "0xtoken", "0xa", 0)
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *ledgerUseCaseSuite) TestGetBalance() {
	s.repo.On("FindOne", mockCtx, domain.Address("0xtoken"), domain.Address("0xa")).Return(&ledger.Balance{
		Token:  "0xtoken",
		Owner:  "0xa",
		Amount: 42,
	}, nil)
	s.repo.On("FindOne", mockCtx, domain.Address("0xtoken"), domain.Address("0xb")).Return(nil, domain.ErrNotFound)

	amount, err := s.im.GetBalance(mockCtx, "0xtoken", "0xa")
	s.NoError(err)
	s.Equal(uint64(42), amount)

	// absent balances read as zero
	amount, err = s.im.GetBalance(mockCtx, "0xtoken", "0xb")
	s.NoError(err)
	s.Equal(uint64(0), amount)
}
