package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if the caller is not allowed to perform the mutation
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMarketplacePaused will throw if the marketplace operational flag is off
	ErrMarketplacePaused = errors.New("marketplace is paused")
	// ErrListingInactive covers cancelled, sold and expired listings
	ErrListingInactive = errors.New("listing is inactive")
	// ErrInvalidAmount will throw if a listing amount is out of bounds
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidPrice will throw if a listing unit price is out of bounds
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidCreditContract will throw if the credit contract is not authorized for trading
	ErrInvalidCreditContract = errors.New("credit contract is not authorized")
	// ErrCannotBuyOwnListing will throw if a buyer attempts to settle their own listing
	ErrCannotBuyOwnListing = errors.New("cannot buy own listing")
	// ErrInsufficientBalance will throw if the payer balance cannot cover a transfer
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrTransferFailed will throw if the value transfer rail rejects a transfer
	ErrTransferFailed = errors.New("transfer failed")
	// ErrTooManyListings will throw if a seller exceeds the outstanding listing capacity
	ErrTooManyListings = errors.New("too many outstanding listings")
	// ErrFeeCollectorUnset will throw if settlement would owe a fee but no collector is configured
	ErrFeeCollectorUnset = errors.New("fee collector is not configured")

	// request error
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidNumberFormat = errors.New("invalid number format")
)
