package featureswitch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"casework/internal/platform/config"
	dErrors "casework/pkg/domain-errors"
)

type failingStore struct{}

func (failingStore) Get(context.Context, Name) (bool, bool, error) {
	return false, false, errors.New("connection refused")
}
func (failingStore) Set(context.Context, Name, bool) error { return errors.New("connection refused") }
func (failingStore) Delete(context.Context, Name) error    { return errors.New("connection refused") }
func (failingStore) All(context.Context) (map[Name]bool, error) {
	return nil, errors.New("connection refused")
}

type FeatureSwitchSuite struct {
	suite.Suite
	ctx     context.Context
	store   *MemoryStore
	service *Service
}

func TestFeatureSwitchSuite(t *testing.T) {
	suite.Run(t, new(FeatureSwitchSuite))
}

func (s *FeatureSwitchSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewMemoryStore()
	svc, err := New(config.Features{CustodyUpdate: true, BookingNumberUpdate: false}, s.store)
	s.Require().NoError(err)
	s.service = svc
}

func (s *FeatureSwitchSuite) TestNewRequiresStore() {
	_, err := New(config.Features{}, nil)
	s.Error(err)
}

func (s *FeatureSwitchSuite) TestDefaultsApplyWithoutOverride() {
	s.True(s.service.CustodyUpdateEnabled(s.ctx))
	s.False(s.service.BookingNumberUpdateEnabled(s.ctx))
	s.False(s.service.MultiEventKeyDateUpdateEnabled(s.ctx))
	s.False(s.service.MultiEventLocationUpdateEnabled(s.ctx))
}

func (s *FeatureSwitchSuite) TestOverrideWinsThenReset() {
	sw, err := s.service.Set(s.ctx, CustodyUpdate, false)
	s.Require().NoError(err)
	s.False(sw.Enabled)
	s.True(sw.Default)
	s.True(sw.Overridden)
	s.False(s.service.CustodyUpdateEnabled(s.ctx))

	sw, err = s.service.Reset(s.ctx, CustodyUpdate)
	s.Require().NoError(err)
	s.True(sw.Enabled)
	s.False(sw.Overridden)
	s.True(s.service.CustodyUpdateEnabled(s.ctx))
}

func (s *FeatureSwitchSuite) TestUnknownSwitch() {
	_, err := s.service.Set(s.ctx, Name("no-such-switch"), true)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.Reset(s.ctx, Name("no-such-switch"))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.Get(s.ctx, Name("no-such-switch"))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *FeatureSwitchSuite) TestListSortedWithOverrides() {
	_, err := s.service.Set(s.ctx, BookingNumberUpdate, true)
	s.Require().NoError(err)

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 4)

	names := make([]Name, len(list))
	for i, sw := range list {
		names[i] = sw.Name
	}
	s.Equal([]Name{BookingNumberUpdate, CustodyUpdate, MultiEventKeyDateUpdate, MultiEventLocationUpdate}, names)
	s.True(list[0].Enabled)
	s.True(list[0].Overridden)
}

func TestStoreFailureFallsBackToDefault(t *testing.T) {
	svc, err := New(config.Features{CustodyUpdate: true}, failingStore{})
	require.NoError(t, err)

	ctx := context.Background()
	assert.True(t, svc.CustodyUpdateEnabled(ctx))
	assert.False(t, svc.BookingNumberUpdateEnabled(ctx))

	_, err = svc.List(ctx)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))

	_, err = svc.Set(ctx, CustodyUpdate, false)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
