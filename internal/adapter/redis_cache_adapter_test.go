package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"pylearn/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()
	key := "pylearn:lesson:detail:L1"

	t.Run("Hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`{"id":"L1"}`)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `{"id":"L1"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss maps to ErrCacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis error passes through", func(t *testing.T) {
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Writes(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectSet("k", "v", time.Minute).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, "k", "v", time.Minute))

	mock.ExpectDel("k").SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, "k"), "deleting a missing key is not an error")

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	mock.ExpectSet("k", "v", 0).SetErr(errors.New("OOM"))
	assert.Error(t, adapter.Set(ctx, "k", "v", 0))

	assert.NoError(t, mock.ExpectationsWereMet())
}
