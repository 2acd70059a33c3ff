package chain

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
)

type ClientCfg struct {
	RpcUrl string
	// CacheTtl bounds how stale a cached height may be. Zero disables caching.
	CacheTtl time.Duration
}

// Client reads the chain head. It satisfies height.Clock.
type Client interface {
	Height(bCtx.Ctx) (domain.BlockHeight, error)
}

type clientImpl struct {
	client   *ethclient.Client
	cacheTtl time.Duration

	mu        sync.Mutex
	cached    domain.BlockHeight
	fetchedAt time.Time
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	if cfg.RpcUrl == "" {
		return nil, xerrors.Errorf("rpc url is required")
	}
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}
	return &clientImpl{
		client:   client,
		cacheTtl: cfg.CacheTtl,
	}, nil
}

func (c *clientImpl) Height(ctx bCtx.Ctx) (domain.BlockHeight, error) {
	c.mu.Lock()
	if c.cacheTtl > 0 && time.Since(c.fetchedAt) < c.cacheTtl {
		h := c.cached
		c.mu.Unlock()
		return h, nil
	}
	c.mu.Unlock()

	n, err := c.client.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return 0, err
	}

	c.mu.Lock()
	c.cached = domain.BlockHeight(n)
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return domain.BlockHeight(n), nil
}
