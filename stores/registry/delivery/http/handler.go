package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/delivery"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/registry"
	"github.com/meterex/goapi/middleware"
	authMiddleware "github.com/meterex/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	registry registry.UseCase
}

func New(e *echo.Echo, registryUC registry.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{registryUC}

	g := e.Group("/registry/:contract", middleware.IsValidAddress("contract"))

	g.GET("", h.isAuthorized)

	g.POST("/authorize", h.authorize, authMiddleware.Auth(), authMiddleware.IsOwner())

	g.POST("/revoke", h.revoke, authMiddleware.Auth(), authMiddleware.IsOwner())
}

func (h *handler) authorize(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	actor := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	if err := h.registry.Authorize(ctx, actor, contract); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) revoke(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	actor := c.Get("address").(domain.Address)
	contract := domain.Address(c.Param("contract"))

	if err := h.registry.Revoke(ctx, actor, contract); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) isAuthorized(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	contract := domain.Address(c.Param("contract"))

	authorized, err := h.registry.IsAuthorized(ctx, contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Address    domain.Address `json:"address"`
		Authorized bool           `json:"authorized"`
	}{contract.ToLower(), authorized}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
