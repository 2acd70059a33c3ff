package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrListingInactive):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrMarketplacePaused):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrFeeCollectorUnset):
			status = http.StatusServiceUnavailable
		case errors.Is(err, domain.ErrBadParamInput),
			errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInvalidPrice),
			errors.Is(err, domain.ErrInvalidCreditContract),
			errors.Is(err, domain.ErrCannotBuyOwnListing),
			errors.Is(err, domain.ErrInsufficientBalance),
			errors.Is(err, domain.ErrTooManyListings),
			errors.Is(err, domain.ErrInvalidAddress):
			status = http.StatusBadRequest
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
