package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/delivery"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/ledger"
	"github.com/meterex/goapi/middleware"
	authMiddleware "github.com/meterex/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	ledger ledger.UseCase
}

func New(e *echo.Echo, ledgerUC ledger.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{ledgerUC}

	g := e.Group("/ledger/:token", middleware.IsValidAddress("token"))

	g.GET("/balance/:account", h.getBalance, middleware.IsValidAddress("account"))

	g.POST("/deposit", h.deposit, authMiddleware.Auth(), authMiddleware.IsOwner())
}

func (h *handler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := domain.Address(c.Param("token"))
	account := domain.Address(c.Param("account"))

	amount, err := h.ledger.GetBalance(ctx, token, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Token   domain.Address `json:"token"`
		Account domain.Address `json:"account"`
		Amount  uint64         `json:"amount"`
	}{token.ToLower(), account.ToLower(), amount}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  domain.Address `json:"owner"`
		Amount uint64         `json:"amount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	actor := c.Get("address").(domain.Address)
	token := domain.Address(c.Param("token"))

	if err := h.ledger.Deposit(ctx, actor, token, p.Owner, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
