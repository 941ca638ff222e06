package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umbra-platform/localization-service/pkg/redis"
)

func TestHealthcheckOK(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	check := redis.Healthcheck(client)
	require.NoError(t, check(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthcheckFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("connection refused"))

	check := redis.Healthcheck(client)
	err := check(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}

func TestConnectRejectsMalformedURL(t *testing.T) {
	cfg := redis.Config{
		ConnectionURL:  "not-a-redis-url",
		RetryAttempts:  1,
		RetryInterval:  0,
		ConnectTimeout: 100 * time.Millisecond,
	}

	_, err := redis.Connect(context.Background(), cfg)
	assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}
