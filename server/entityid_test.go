package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntityIDGeneratorMonotonicAndNonZero(t *testing.T) {
	g := NewEntityIDGenerator()
	require.NotZero(t, g.Next())

	seen := make(map[int32]struct{})
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, seen, 100)
}
