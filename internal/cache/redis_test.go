package cache

import (
	"testing"

	"github.com/Domenick1991/missioncontrol/config"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisLocker(t *testing.T) {
	locker := NewRedisLocker(config.RedisConfig{Addr: "localhost:6379"})
	assert.NotNil(t, locker)
	assert.NoError(t, locker.Close())
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "lock:launches:schedule", lockKey("launches:schedule"))
}
