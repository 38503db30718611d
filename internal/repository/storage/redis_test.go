package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRedisStorage_Unreachable(t *testing.T) {
	// Given: nothing listens on the address
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// When: connecting
	_, err := NewRedisStorage(ctx, "127.0.0.1:1")

	// Then: the ping failure is reported
	require.ErrorContains(t, err, "failed to connect to Redis")
}
