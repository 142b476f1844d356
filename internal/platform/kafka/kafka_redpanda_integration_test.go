//go:build integration

package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"casework/internal/platform/config"
	"casework/internal/platform/kafka"
	"casework/pkg/testutil/containers"
)

type RedpandaSuite struct {
	suite.Suite
	broker string
}

func TestRedpandaSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedpandaSuite))
}

func (s *RedpandaSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
}

func (s *RedpandaSuite) TestPublishThenConsume() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.KafkaConfig{Brokers: []string{s.broker}, ClientID: "casework-test"}
	producerClient, err := kafka.NewClient(cfg)
	s.Require().NoError(err)
	defer producerClient.Close()

	s.Require().NoError(kafka.Health(ctx, producerClient))
	s.Require().NoError(kafka.EnsureTopics(ctx, producerClient, 1, 1, "roundtrip"))
	s.Require().NoError(kafka.EnsureTopics(ctx, producerClient, 1, 1, "roundtrip"), "existing topics are accepted")

	err = kafka.NewProducer(producerClient).Publish(ctx, "roundtrip", []byte("k"), []byte(`{"a":1}`),
		map[string]string{"eventType": "test"})
	s.Require().NoError(err)

	consumerClient, err := kafka.NewClient(cfg,
		kgo.ConsumeTopics("roundtrip"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumerClient.Close()

	fetches := consumerClient.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())
	recs := fetches.Records()
	s.Require().Len(recs, 1)
	s.Equal("k", string(recs[0].Key))
	s.Equal(`{"a":1}`, string(recs[0].Value))
	s.Equal("eventType", recs[0].Headers[0].Key)
}
