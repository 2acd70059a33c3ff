package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/delivery"
	"github.com/meterex/goapi/base/metrics"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/listing"
	"github.com/meterex/goapi/middleware"
	authMiddleware "github.com/meterex/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	listing              listing.UseCase
	paymentTokenDecimals int32
}

func New(e *echo.Echo, listingUC listing.UseCase, authMiddleware *authMiddleware.AuthMiddleware, paymentTokenDecimals int32) {
	met = metrics.New("listing")

	h := &handler{listingUC, paymentTokenDecimals}

	gs := e.Group("/marketplace")

	gs.POST("/listings", h.create, authMiddleware.Auth())

	gs.GET("/listings", h.listBySeller)

	gs.GET("/next-listing-id", h.getNextListingId)

	gs.GET("/fee-rate", h.getFeeRate, middleware.CacheHttp(10*time.Minute))

	gs.GET("/sales/total", h.getTotalSales)

	gs.GET("/sale/:id", h.getSale)

	g := e.Group("/marketplace/listing/:id")

	g.GET("", h.get)

	g.POST("/buy", h.buy, authMiddleware.Auth())

	g.DELETE("", h.cancel, authMiddleware.Auth())
}

func parseId(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return id, nil
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	defer met.BumpTime("create.time").End()

	type params struct {
		CreditContract domain.Address `json:"creditContract"`
		Amount         uint64         `json:"amount"`
		PricePerUnit   uint64         `json:"pricePerUnit"`
		DurationBlocks uint64         `json:"durationBlocks"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	seller := c.Get("address").(domain.Address)

	id, err := h.listing.CreateListing(ctx, seller, p.CreditContract, p.Amount, p.PricePerUnit, p.DurationBlocks)
	if err != nil {
		met.BumpSum("create.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		ListingId uint64 `json:"listingId"`
	}{id}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	defer met.BumpTime("buy.time").End()

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	buyer := c.Get("address").(domain.Address)

	saleId, err := h.listing.BuyListing(ctx, buyer, id)
	if err != nil {
		met.BumpSum("buy.err", 1)
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		SaleId uint64 `json:"saleId"`
	}{saleId}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	caller := c.Get("address").(domain.Address)

	if err := h.listing.CancelListing(ctx, caller, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		*listing.Listing
		DisplayTotalPrice string `json:"displayTotalPrice"`
	}{l, listing.DisplayPrice(l.TotalPrice, h.paymentTokenDecimals)}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) listBySeller(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	seller := domain.Address(c.QueryParam("seller"))
	if seller.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "seller is required")
	}

	ls, err := h.listing.ListBySeller(ctx, seller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, ls)
}

func (h *handler) getNextListingId(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := h.listing.GetNextListingId(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		NextListingId uint64 `json:"nextListingId"`
	}{id}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getFeeRate(c echo.Context) error {
	res := struct {
		FeeRateBasisPoints uint64 `json:"feeRateBasisPoints"`
	}{listing.FeeRateBasisPoints}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getTotalSales(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	total, err := h.listing.GetTotalSales(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		TotalSales uint64 `json:"totalSales"`
	}{total}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sale, err := h.listing.GetSaleDetails(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, sale)
}
