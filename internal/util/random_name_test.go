package util

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRoomName(t *testing.T) {
	r := rand.New(rand.NewSource(0)) // nolint:gosec
	first := RandomRoomName(r.Intn)
	second := RandomRoomName(r.Intn)

	r = rand.New(rand.NewSource(0)) // nolint:gosec
	assert.Equal(t, first, RandomRoomName(r.Intn))
	assert.Equal(t, second, RandomRoomName(r.Intn))

	assert.Equal(t, "FastDog", RandomRoomName(func(int) int { return 0 }))
}

func TestGetRandomRoomName(t *testing.T) {
	var wg sync.WaitGroup
	names := make(chan string, 16*50)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				names <- GetRandomRoomName()
			}
		}()
	}

	wg.Wait()
	close(names)

	for name := range names {
		assert.True(t, IsAlphanumeric(name), name)
	}
}
