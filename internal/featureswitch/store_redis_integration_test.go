//go:build integration

package featureswitch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"casework/internal/featureswitch"
	"casework/internal/platform/config"
	"casework/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *featureswitch.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = featureswitch.NewRedisStore(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()

	_, found, err := s.store.Get(ctx, featureswitch.CustodyUpdate)
	s.Require().NoError(err)
	s.False(found)

	s.Require().NoError(s.store.Set(ctx, featureswitch.CustodyUpdate, true))
	v, found, err := s.store.Get(ctx, featureswitch.CustodyUpdate)
	s.Require().NoError(err)
	s.True(found)
	s.True(v)

	all, err := s.store.All(ctx)
	s.Require().NoError(err)
	s.Equal(map[featureswitch.Name]bool{featureswitch.CustodyUpdate: true}, all)

	s.Require().NoError(s.store.Delete(ctx, featureswitch.CustodyUpdate))
	_, found, err = s.store.Get(ctx, featureswitch.CustodyUpdate)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RedisStoreSuite) TestOverridesSharedAcrossInstances() {
	ctx := context.Background()
	a, err := featureswitch.New(config.Features{}, featureswitch.NewRedisStore(s.redis.Client))
	s.Require().NoError(err)
	b, err := featureswitch.New(config.Features{}, featureswitch.NewRedisStore(s.redis.Client))
	s.Require().NoError(err)

	_, err = a.Set(ctx, featureswitch.BookingNumberUpdate, true)
	s.Require().NoError(err)
	s.True(b.BookingNumberUpdateEnabled(ctx))
}
