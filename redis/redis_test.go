package redis

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/fleetra/site/config"
)

var _ fiber.Storage = (*Storage)(nil)

func TestNewStorage_NotConfigured(t *testing.T) {
	prev := config.RedisAddress
	config.RedisAddress = ""
	t.Cleanup(func() { config.RedisAddress = prev })

	s, err := NewStorage(context.Background())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "fleetra:limiter:10.0.0.1", key("10.0.0.1"))
}

// Empty keys and values never reach the server.
func TestStorage_EmptyArgsAreNoops(t *testing.T) {
	s := newStorage("127.0.0.1:0", "")
	defer s.Close()

	v, err := s.Get("")
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, s.Set("", []byte("1"), 0))
	assert.NoError(t, s.Set("k", nil, 0))
	assert.NoError(t, s.Delete(""))
}
