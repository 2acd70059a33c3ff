package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "hello world",
			expIsValid: false,
		},
		{
			desc:       "checksummed address",
			address:    "0x5AEDA56215b167893e80B4fE645BA6d5Bab767DE",
			expIsValid: true,
		},
		{
			desc:       "lower case address",
			address:    "0x5aeda56215b167893e80b4fe645ba6d5bab767de",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
