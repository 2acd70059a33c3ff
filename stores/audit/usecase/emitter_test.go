package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meterex/goapi/base/ctx"
	"github.com/meterex/goapi/domain/audit"
	mAudit "github.com/meterex/goapi/domain/audit/mocks"
)

type emitterSuite struct {
	suite.Suite

	repo *mAudit.Repo
	im   audit.Emitter
}

func TestEmitterSuite(t *testing.T) {
	suite.Run(t, new(emitterSuite))
}

func (s *emitterSuite) SetupTest() {
	s.repo = &mAudit.Repo{}
	s.im = NewEmitter(s.repo)
}

func (s *emitterSuite) TestEmitWritesEvent() {
	done := make(chan *audit.Event, 1)
	s.repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		done <- args.Get(1).(*audit.Event)
	}).Return(nil)

	s.im.Emit(ctx.Background(), audit.KindListingCreated, "0xSeller", map[string]interface{}{
		"listingId": uint64(1),
	})

	select {
	case event := <-done:
		s.NotEmpty(event.Id)
		s.Equal(audit.KindListingCreated, event.Kind)
		s.Equal("0xseller", string(event.Actor))
		s.Equal(uint64(1), event.Subject["listingId"])
		s.WithinDuration(time.Now(), event.CreatedAt, time.Minute)
	case <-time.After(3 * time.Second):
		s.Fail("audit event was never written")
	}
}

func (s *emitterSuite) TestEmitSwallowsRepoErrors() {
	done := make(chan struct{}, 1)
	s.repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		done <- struct{}{}
	}).Return(errors.New("boom"))

	// must not panic or block the caller
	s.im.Emit(ctx.Background(), audit.KindDeposit, "0xowner", nil)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		s.Fail("audit event was never attempted")
	}
}
