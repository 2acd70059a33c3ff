package repository

import (
	bCtx "github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/audit"
	"github.com/meterex/goapi/service/query"
)

type auditRepoImpl struct {
	q query.Mongo
}

func NewAuditRepo(q query.Mongo) audit.Repo {
	return &auditRepoImpl{q}
}

func (im *auditRepoImpl) Create(ctx bCtx.Ctx, event *audit.Event) error {
	if err := im.q.Insert(ctx, domain.TableAuditEvents, event); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"event": event,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}
