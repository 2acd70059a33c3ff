package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/base/log"
	"github.com/meterex/goapi/domain"
	"github.com/meterex/goapi/domain/audit"
)

type emitterImpl struct {
	auditRepo  audit.Repo
	workerPool *goroutines.Pool
}

func NewEmitter(auditRepo audit.Repo) audit.Emitter {
	return &emitterImpl{
		auditRepo:  auditRepo,
		workerPool: goroutines.NewPool(32, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
}

// Emit appends the event off the caller's request path. Audit writes
// never fail or delay the mutation that produced them; a full queue or
// a storage error only logs.
func (im *emitterImpl) Emit(context ctx.Ctx, kind audit.Kind, actor domain.Address, subject map[string]interface{}) {
	id, err := uuid.NewRandom()
	if err != nil {
		context.WithField("err", err).Error("failed to uuid.NewRandom")
		return
	}

	event := &audit.Event{
		Id:        id.String(),
		Kind:      kind,
		Actor:     actor.ToLower(),
		Subject:   subject,
		CreatedAt: time.Now(),
	}

	// detach from the request context, the caller may be gone before
	// the write lands
	c := ctx.Background()

	err = im.workerPool.ScheduleWithTimeout(3*time.Second, func() {
		if err := im.auditRepo.Create(c, event); err != nil {
			c.WithFields(log.Fields{
				"event": event,
				"err":   err,
			}).Error("failed to auditRepo.Create")
		}
	})
	if err != nil {
		context.WithFields(log.Fields{
			"event": event,
			"err":   err,
		}).Warn("failed to schedule audit write")
	}
}
