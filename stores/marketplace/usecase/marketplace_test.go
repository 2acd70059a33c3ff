package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
	mAudit "github.com/meterex/goapi/domain/audit/mocks"
	"github.com/meterex/goapi/domain/marketplace"
	mMarketplace "github.com/meterex/goapi/domain/marketplace/mocks"
)

var mockCtx = ctx.Background()

type marketplaceUseCaseSuite struct {
	suite.Suite

	repo    *mMarketplace.Repo
	emitter *mAudit.Emitter
	im      marketplace.UseCase
}

func TestMarketplaceUseCaseSuite(t *testing.T) {
	suite.Run(t, new(marketplaceUseCaseSuite))
}

func (s *marketplaceUseCaseSuite) SetupTest() {
	s.repo = &mMarketplace.Repo{}
	s.emitter = &mAudit.Emitter{}
	s.emitter.On("Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	s.im = New(&MarketplaceUseCaseCfg{
		SettingsRepo: s.repo,
		AuditEmitter: s.emitter,
	})
}

func (s *marketplaceUseCaseSuite) TestSetPaused() {
	s.repo.On("Patch", mockCtx, mock.MatchedBy(func(p marketplace.SettingsPatchable) bool {
		return p.Paused != nil && *p.Paused && p.FeeCollector == nil
	})).Return(nil)

	s.NoError(s.im.SetPaused(mockCtx, "0xowner", true))
	s.repo.AssertExpectations(s.T())
}

func (s *marketplaceUseCaseSuite) TestSetFeeCollector() {
	s.repo.On("Patch", mockCtx, mock.MatchedBy(func(p marketplace.SettingsPatchable) bool {
		return p.FeeCollector != nil && *p.FeeCollector == "0xfc" && p.Paused == nil
	})).Return(nil)

	s.NoError(s.im.SetFeeCollector(mockCtx, "0xowner", "0xFC"))
	s.repo.AssertExpectations(s.T())
}

func (s *marketplaceUseCaseSuite) TestSetFeeCollectorEmpty() {
	err := s.im.SetFeeCollector(mockCtx, "0xowner", "")
	s.ErrorIs(err, domain.ErrInvalidAddress)
	s.repo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything)
}

func (s *marketplaceUseCaseSuite) TestGetStatus() {
	want := &marketplace.Settings{
		Key:          marketplace.SettingsKey,
		Paused:       true,
		FeeCollector: "0xfc",
	}
	s.repo.On("Get", mockCtx).Return(want, nil)

	got, err := s.im.GetStatus(mockCtx)
	s.NoError(err)
	s.Equal(want, got)
}
