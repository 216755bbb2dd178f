package redis_test

import (
	"context"
	"testing"
	"time"

	rediscache "logistics/internal/adapters/out/redis"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisCacheTestSuite struct {
	suite.Suite
	container testcontainers.Container
	cache     *rediscache.Cache
}

func (s *RedisCacheTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379")
	s.Require().NoError(err)

	cache, err := rediscache.NewCache(ctx, rediscache.Config{Addr: host + ":" + port.Port()})
	s.Require().NoError(err)
	s.cache = cache
}

func (s *RedisCacheTestSuite) TearDownSuite() {
	if s.cache != nil {
		s.Require().NoError(s.cache.Close())
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *RedisCacheTestSuite) TestMissOnAbsentKey() {
	_, err := s.cache.Get(context.Background(), "tracking:absent")
	s.Require().ErrorIs(err, ports.ErrCacheMiss)
}

func (s *RedisCacheTestSuite) TestSetGetDelete() {
	ctx := context.Background()
	key := ports.TrackingSnapshotKey("trk_01h455vb4pex5vsknk084sn02q")

	s.Require().NoError(s.cache.Set(ctx, key, []byte(`{"status":"pending"}`), time.Minute))
	got, err := s.cache.Get(ctx, key)
	s.Require().NoError(err)
	s.JSONEq(`{"status":"pending"}`, string(got))

	s.Require().NoError(s.cache.Delete(ctx, key, "tracking:other"))
	_, err = s.cache.Get(ctx, key)
	s.Require().ErrorIs(err, ports.ErrCacheMiss)
}

func (s *RedisCacheTestSuite) TestEntryExpires() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, "tracking:short", []byte("x"), 50*time.Millisecond))

	s.Eventually(func() bool {
		_, err := s.cache.Get(ctx, "tracking:short")
		return err == ports.ErrCacheMiss
	}, 2*time.Second, 20*time.Millisecond)
}

func (s *RedisCacheTestSuite) TestDeleteWithoutKeys() {
	s.NoError(s.cache.Delete(context.Background()))
}

func TestRedisCacheTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(RedisCacheTestSuite))
}
