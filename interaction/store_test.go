package interaction

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fakeNotifier is a stand-in for the host's global pointer-release signal.
type fakeNotifier struct {
	fns []func()
}

func (fn *fakeNotifier) OnRelease(f func()) (cancel func()) {
	i := len(fn.fns)
	fn.fns = append(fn.fns, f)
	return func() { fn.fns[i] = nil }
}

func (fn *fakeNotifier) fire() {
	for _, f := range fn.fns {
		if f != nil {
			f()
		}
	}
}

func (fn *fakeNotifier) liveCount() int {
	n := 0
	for _, f := range fn.fns {
		if f != nil {
			n++
		}
	}
	return n
}

func TestStateDefaultsFalse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.interaction")
	defer teardown()
	//
	s := NewStore()
	if s.GetState(StateHover, "a") {
		t.Error("expected absent state to read as false, doesn't")
	}
	s.SetState(StateHover, true, "a")
	if !s.GetState(StateHover, "a") {
		t.Error("expected hover state for 'a' to be set, isn't")
	}
	if s.GetState(StateHover, "b") {
		t.Error("expected hover state for 'b' to stay false, doesn't")
	}
	if s.GetState(StateFocus, "a") {
		t.Error("expected state names to be independent, aren't")
	}
}

func TestStoresAreIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.interaction")
	defer teardown()
	//
	s1, s2 := NewStore(), NewStore()
	s1.SetState(StateHover, true, "a")
	if s2.GetState(StateHover, "a") {
		t.Error("expected second owner's store to be unaffected, isn't")
	}
}

func TestActiveReleaseSweep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.interaction")
	defer teardown()
	//
	s := NewStore()
	s.MarkActive("a")
	s.MarkActive("b")
	s.MarkActive("a") // repeated press must not duplicate the entry
	if s.ActiveLen() != 2 {
		t.Errorf("expected 2 keys awaiting release, have %d", s.ActiveLen())
	}
	if !s.GetState(StateActive, "a") || !s.GetState(StateActive, "b") {
		t.Error("expected both keys to be active, aren't")
	}
	s.Release()
	if s.GetState(StateActive, "a") {
		t.Error("expected 'a' to be released, isn't")
	}
	if s.GetState(StateActive, "b") {
		t.Error("expected 'b' to be released, isn't")
	}
	if s.ActiveLen() != 0 {
		t.Errorf("expected empty active-list after sweep, has %d entries", s.ActiveLen())
	}
}

func TestAttachDetachLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "look.interaction")
	defer teardown()
	//
	notifier := &fakeNotifier{}
	s := NewStore()
	s.Attach(notifier)
	s.Attach(notifier) // idempotent
	if notifier.liveCount() != 1 {
		t.Fatalf("expected exactly one release subscription, have %d", notifier.liveCount())
	}
	s.MarkActive("a")
	notifier.fire()
	if s.GetState(StateActive, "a") {
		t.Error("expected host release to sweep active state, didn't")
	}
	s.Detach()
	if notifier.liveCount() != 0 {
		t.Errorf("expected teardown to remove the subscription, %d left", notifier.liveCount())
	}
	s.Detach() // no-op on detached store
}
