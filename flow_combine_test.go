package flow

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// foreign is an Observable implemented outside the package.
type foreign struct {
	subs []Subscriber[int]
	ends []EndSubscriber
}

func (f *foreign) Subscribe(s Subscriber[int]) { f.subs = append(f.subs, s) }

func (f *foreign) Unsubscribe(s Subscriber[int]) {
	for i, sub := range f.subs {
		if sub == s {
			f.subs = append(f.subs[:i], f.subs[i+1:]...)
			return
		}
	}
}

func (f *foreign) OnEnd(s EndSubscriber)  { f.ends = append(f.ends, s) }
func (f *foreign) OffEnd(s EndSubscriber) {}
func (f *foreign) IsEnded() bool          { return false }
func (f *foreign) HasSubscribers() bool   { return len(f.subs) > 0 }

func (f *foreign) emit(v int) {
	for _, s := range append([]Subscriber[int](nil), f.subs...) {
		s.Receive(v)
	}
}

func (f *foreign) end() {
	for _, s := range f.ends {
		s.Ended()
	}
}

// uncomparable is a foreign observable that can't be used as a map key.
type uncomparable struct {
	*foreign
	tags []string
}

func TestMerge(t *testing.T) {
	t.Run("interleaves and ends with the last source", func(t *testing.T) {
		log := []string{}

		a := NewBus[int]()
		b := NewBus[int]()
		record(&log, "m", Merge[int](a, b))

		a.Push(1)
		b.Push(2)
		a.End()
		b.Push(3)
		b.End()

		assert.Equal(t, []string{"m 1", "m 2", "m 3", "m end"}, log)
	})

	t.Run("method form", func(t *testing.T) {
		log := []string{}

		a := NewBus[string]()
		record(&log, "m", a.Merge(Once("x")))
		a.Push("y")

		assert.Equal(t, []string{"m x", "m y"}, log)
	})

	t.Run("of nothing has ended", func(t *testing.T) {
		assert.True(t, Merge[int]().IsEnded())
	})

	t.Run("of ended sources has ended", func(t *testing.T) {
		assert.True(t, Merge[int](Never[int](), Never[int]()).IsEnded())
	})

	t.Run("bridges foreign observables", func(t *testing.T) {
		log := []string{}

		f := &foreign{}
		m := Merge[int](f)
		assert.False(t, f.HasSubscribers())

		s := record(&log, "m", m)
		f.emit(1)
		m.Unsubscribe(s)
		f.emit(2)

		assert.Equal(t, []string{"m 1"}, log)
		assert.False(t, f.HasSubscribers())
	})

	t.Run("nil source", func(t *testing.T) {
		assert.PanicsWithError(t, "flow: type mismatch: nil observable", func() {
			Merge[int](nil)
		})
	})
}

func TestCombine(t *testing.T) {
	sum := func(values []int) int {
		total := 0
		for _, v := range values {
			total += v
		}
		return total
	}

	t.Run("emits once every source has a value", func(t *testing.T) {
		log := []string{}

		a := NewBus[int]()
		b := NewBus[int]()
		record(&log, "c", Combine([]Observable[int]{a, b}, sum))

		a.Push(1)
		b.Push(2)
		a.Push(3)

		assert.Equal(t, []string{"c 3", "c 5"}, log)
	})

	t.Run("properties replay into it", func(t *testing.T) {
		log := []string{}

		a := NewBus[int]()
		c := CombineLatest[int](a.ToProperty(1), Once(2).ToProperty())
		record(&log, "c", c)
		a.Push(3)

		assert.Equal(t, []string{"c [1 2]", "c [3 2]"}, log)
	})

	t.Run("combine two kinds", func(t *testing.T) {
		log := []string{}

		name := NewBus[string]()
		age := NewBus[int]()
		record(&log, "c", Combine2[string, int](name, age, func(n string, a int) string {
			return fmt.Sprintf("%s is %d", n, a)
		}))

		name.Push("ada")
		age.Push(36)
		age.Push(37)

		assert.Equal(t, []string{"c ada is 36", "c ada is 37"}, log)
	})

	t.Run("starved by a source ending silent", func(t *testing.T) {
		log := []string{}

		a := NewBus[int]()
		b := NewBus[int]()
		record(&log, "c", Combine([]Observable[int]{a, b}, sum))

		b.End()
		a.Push(1)
		a.Push(2)
		assert.Empty(t, log)

		a.End()
		assert.Equal(t, []string{"c end"}, log)
	})

	t.Run("the same source twice", func(t *testing.T) {
		log := []string{}

		a := NewBus[int]()
		record(&log, "c", CombineLatest[int](a, a))
		a.Push(1)

		assert.Equal(t, []string{"c [1 1]"}, log)
	})

	t.Run("of nothing has ended", func(t *testing.T) {
		assert.True(t, CombineLatest[int]().IsEnded())
	})

	t.Run("nil func", func(t *testing.T) {
		a := NewBus[int]()

		assert.PanicsWithError(t, "flow: type mismatch: nil combine func", func() {
			Combine[int, int]([]Observable[int]{a}, nil)
		})
		assert.PanicsWithError(t, "flow: type mismatch: nil combine func", func() {
			Combine2[int, int, int](a, a, nil)
		})
	})
}

func TestFlatMap(t *testing.T) {
	t.Run("merges the spawned observables", func(t *testing.T) {
		log := []string{}

		words := NewBus[string]()
		clock := NewVirtualClock()
		s := FlatMap(words, func(w string) Observable[string] {
			return Sequentially(10*time.Millisecond, strings.Split(w, ""), TimerOptions{Timer: clock})
		})
		record(&log, "s", s)

		words.Push("ab")
		clock.Advance(5 * time.Millisecond)
		words.Push("cd")
		words.End()
		clock.Advance(100 * time.Millisecond)

		assert.Equal(t, []string{"s a", "s c", "s b", "s d", "s end"}, log)
	})

	t.Run("outer ending first waits for the children", func(t *testing.T) {
		log := []string{}

		outer := NewBus[int]()
		inner := NewBus[int]()
		record(&log, "s", FlatMap(outer, func(int) Observable[int] { return inner }))

		outer.Push(1)
		outer.End()
		inner.Push(2)
		inner.End()

		assert.Equal(t, []string{"s 2", "s end"}, log)
	})

	t.Run("nil children are skipped", func(t *testing.T) {
		log := []string{}

		outer := NewBus[int]()
		record(&log, "s", FlatMap(outer, func(v int) Observable[int] {
			if v%2 == 0 {
				return nil
			}
			return Once(v)
		}))

		outer.Push(1)
		outer.Push(2)
		outer.Push(3)
		outer.End()

		assert.Equal(t, []string{"s 1", "s 3", "s end"}, log)
	})
}

func TestBus(t *testing.T) {
	t.Run("push, plug, unplug", func(t *testing.T) {
		log := []string{}

		b := NewBus[int]()
		record(&log, "bus", b)

		child := NewBus[int]()
		b.Push(1)
		b.Plug(child)
		assert.Equal(t, 1, b.Plugged())
		child.Push(2)
		b.Unplug(child)
		child.Push(3)
		b.End()
		b.Push(4)

		assert.Equal(t, []string{"bus 1", "bus 2", "bus end"}, log)
	})

	t.Run("does not end with its children", func(t *testing.T) {
		b := NewBus[int]()
		b.OnValue(func(int) {})

		b.Plug(Once(1))
		assert.False(t, b.IsEnded())
		assert.Equal(t, 0, b.Plugged())
	})

	t.Run("foreign children", func(t *testing.T) {
		log := []string{}

		b := NewBus[int]()
		record(&log, "bus", b)

		f := &foreign{}
		b.Plug(f)
		b.Plug(f)
		assert.Equal(t, 1, b.Plugged())

		f.emit(1)
		b.Unplug(f)
		f.emit(2)

		assert.Equal(t, []string{"bus 1"}, log)
		assert.False(t, f.HasSubscribers())
	})

	t.Run("foreign end", func(t *testing.T) {
		b := NewBus[int]()
		b.OnValue(func(int) {})

		f := &foreign{}
		b.Plug(f)
		f.end()

		assert.Equal(t, 0, b.Plugged())
		assert.Empty(t, b.bridges)
	})

	t.Run("foreign unplug releases the bridge", func(t *testing.T) {
		b := NewBus[int]()

		f := &foreign{}
		b.Plug(f)
		b.Unplug(f)

		assert.Empty(t, b.bridges)
		assert.Equal(t, 0, b.Plugged())
	})

	t.Run("foreign observables must be comparable", func(t *testing.T) {
		b := NewBus[int]()

		assert.PanicsWithError(t, "flow: type mismatch: can't plug flow.uncomparable, it isn't comparable", func() {
			b.Plug(uncomparable{foreign: &foreign{}})
		})
		assert.Empty(t, b.bridges)
	})
}
