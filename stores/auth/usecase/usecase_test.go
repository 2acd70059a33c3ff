package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain"
)

type authTestSuite struct {
	suite.Suite

	im domain.AuthUsecase
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(authTestSuite))
}

func (s *authTestSuite) SetupTest() {
	s.im = New("test-secret")
}

func (s *authTestSuite) TestSignAndParse() {
	ctx := ctx.Background()
	address := domain.Address("0x0000000000000000000000000000000000000AbC")

	tkn, err := s.im.SignToken(ctx, address)
	s.NoError(err)
	s.NotEmpty(tkn)

	parsed, err := s.im.ParseToken(ctx, tkn)
	s.NoError(err)
	s.Equal(address.ToLowerStr(), parsed)
}

func (s *authTestSuite) TestParseGarbage() {
	ctx := ctx.Background()

	_, err := s.im.ParseToken(ctx, "not-a-token")
	s.Error(err)
}

func (s *authTestSuite) TestParseWrongSecret() {
	ctx := ctx.Background()

	other := New("other-secret")
	tkn, err := other.SignToken(ctx, "0xabc")
	s.NoError(err)

	_, err = s.im.ParseToken(ctx, tkn)
	s.Error(err)
}
