package domain

import (
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Address is a lower-cased hex account identifier
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// BlockHeight is the logical time of the platform, supplied by the
// execution context and strictly increasing
type BlockHeight uint64

// Table is a mongo collection name
type Table string

const (
	TableListings            Table = "listings"
	TableSales               Table = "sales"
	TableSellerIndexes       Table = "seller_indexes"
	TableSequences           Table = "sequences"
	TableCreditContracts     Table = "credit_contracts"
	TableMarketplaceSettings Table = "marketplace_settings"
	TableBalances            Table = "balances"
	TableAuditEvents         Table = "audit_events"
)
