//go:build integration

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisBackendSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	url       string
}

func TestRedisBackendSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis integration suite in short mode")
	}
	suite.Run(t, new(RedisBackendSuite))
}

func (s *RedisBackendSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	url, err := container.ConnectionString(ctx)
	s.Require().NoError(err)
	s.url = url
}

func (s *RedisBackendSuite) TearDownSuite() {
	s.NoError(testcontainers.TerminateContainer(s.container))
}

func (s *RedisBackendSuite) TestHistoryRoundTrip() {
	ctx := context.Background()
	client, err := DialRedis(ctx, s.url)
	s.Require().NoError(err)
	defer client.Close()

	key := "test_" + s.T().Name()
	backend := NewRedisBackend(client, key)

	data, err := backend.Load(ctx)
	s.Require().NoError(err)
	s.Nil(data)

	NewHistory(backend).Set("ghost-story::2020::Horror", "ghost-story-movie-live-2020")

	id, ok := NewHistory(backend).Get("ghost-story::2020::Horror")
	s.True(ok)
	s.Equal("ghost-story-movie-live-2020", id)
}

func (s *RedisBackendSuite) TestCorruptValueReadsAsEmpty() {
	ctx := context.Background()
	client, err := DialRedis(ctx, s.url)
	s.Require().NoError(err)
	defer client.Close()

	key := "test_corrupt"
	s.Require().NoError(client.Set(ctx, key, "not-json", 0).Err())

	h := NewHistory(NewRedisBackend(client, key))
	_, ok := h.Get("anything")
	s.False(ok)
}
