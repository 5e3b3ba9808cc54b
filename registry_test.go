package mvvm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestManagerFor_SameSourceSameManager(t *testing.T) {
	t.Cleanup(TestResetManagers)
	src := &plainSource{name: "src"}

	assert.Same(t, ManagerFor(src), ManagerFor(src))
}

func TestManagerFor_IdentityNotValue(t *testing.T) {
	t.Cleanup(TestResetManagers)
	a := &plainSource{name: "same"}
	b := &plainSource{name: "same"}

	assert.NotSame(t, ManagerFor(a), ManagerFor(b),
		"equal contents must not share a manager; sources are keyed by identity")
}

func TestManagerFor_ConcurrentCreation(t *testing.T) {
	t.Cleanup(TestResetManagers)
	src := &plainSource{name: "src"}

	var mu sync.Mutex
	seen := make(map[*EventManager]struct{})
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			m := ManagerFor(src)
			mu.Lock()
			seen[m] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Len(t, seen, 1, "concurrent GetOrCreate must yield a single manager")
}

func TestDispatch_NoManagerIsNoOp(t *testing.T) {
	t.Cleanup(TestResetManagers)
	assert.NoError(t, Dispatch(&plainSource{name: "nobody"}, "Changed", nil, nil))
}

func TestUnregister_NoManagerIsNoOp(t *testing.T) {
	t.Cleanup(TestResetManagers)
	Unregister(&plainSource{name: "nobody"}, "Changed", newSubscriber("x"))
}
