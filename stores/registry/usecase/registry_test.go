package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
	mAudit "github.com/meterex/goapi/domain/audit/mocks"
	"github.com/meterex/goapi/domain/registry"
	mRegistry "github.com/meterex/goapi/domain/registry/mocks"
)

var mockCtx = ctx.Background()

type registryUseCaseSuite struct {
	suite.Suite

	repo    *mRegistry.Repo
	emitter *mAudit.Emitter
	im      registry.UseCase
}

func TestRegistryUseCaseSuite(t *testing.T) {
	suite.Run(t, new(registryUseCaseSuite))
}

func (s *registryUseCaseSuite) SetupTest() {
	s.repo = &mRegistry.Repo{}
	s.emitter = &mAudit.Emitter{}
	s.emitter.On("Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()
	s.im = New(&RegistryUseCaseCfg{
		RegistryRepo: s.repo,
		AuditEmitter: s.emitter,
	})
}

func (s *registryUseCaseSuite) TestAuthorizeThenRevoke() {
	owner := domain.Address("0xowner")
	contract := domain.Address("0xCCC")

	s.repo.On("Upsert", mockCtx, mock.MatchedBy(func(c *registry.CreditContract) bool {
		return c.Address == "0xccc" && c.Authorized
	})).Return(nil).Once()

	s.NoError(s.im.Authorize(mockCtx, owner, contract))

	s.repo.On("Upsert", mockCtx, mock.MatchedBy(func(c *registry.CreditContract) bool {
		return c.Address == "0xccc" && !c.Authorized
	})).Return(nil).Once()

	s.NoError(s.im.Revoke(mockCtx, owner, contract))
	s.repo.AssertExpectations(s.T())
}

func (s *registryUseCaseSuite) TestAuthorizeEmptyAddress() {
	err := s.im.Authorize(mockCtx, "0xowner", "")
	s.ErrorIs(err, domain.ErrInvalidAddress)
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *registryUseCaseSuite) TestIsAuthorized() {
	s.repo.On("FindOne", mockCtx, domain.Address("0xccc")).Return(&registry.CreditContract{
		Address:    "0xccc",
		Authorized: true,
	}, nil)
	s.repo.On("FindOne", mockCtx, domain.Address("0xddd")).Return(&registry.CreditContract{
		Address:    "0xddd",
		Authorized: false,
	}, nil)
	s.repo.On("FindOne", mockCtx, domain.Address("0xeee")).Return(nil, domain.ErrNotFound)

	ok, err := s.im.IsAuthorized(mockCtx, "0xccc")
	s.NoError(err)
	s.True(ok)

	ok, err = s.im.IsAuthorized(mockCtx, "0xddd")
	s.NoError(err)
	s.False(ok)

	// unknown contracts read as unauthorized
	ok, err = s.im.IsAuthorized(mockCtx, "0xeee")
	s.NoError(err)
	s.False(ok)
}
