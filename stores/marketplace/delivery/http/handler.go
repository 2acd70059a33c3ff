package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/delivery"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/marketplace"
	authMiddleware "github.com/meterex/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	marketplace marketplace.UseCase
}

func New(e *echo.Echo, marketplaceUC marketplace.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{marketplaceUC}

	g := e.Group("/marketplace")

	g.GET("/status", h.getStatus)

	g.POST("/status", h.setStatus, authMiddleware.Auth(), authMiddleware.IsOwner())

	g.POST("/fee-collector", h.setFeeCollector, authMiddleware.Auth(), authMiddleware.IsOwner())
}

func (h *handler) getStatus(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	settings, err := h.marketplace.GetStatus(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, settings)
}

func (h *handler) setStatus(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Paused bool `json:"paused"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	actor := c.Get("address").(domain.Address)

	if err := h.marketplace.SetPaused(ctx, actor, p.Paused); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setFeeCollector(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		FeeCollector domain.Address `json:"feeCollector"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	actor := c.Get("address").(domain.Address)

	if err := h.marketplace.SetFeeCollector(ctx, actor, p.FeeCollector); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
