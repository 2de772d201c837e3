package flow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestTime(t *testing.T) {
	t.Run("interval runs only while subscribed", func(t *testing.T) {
		log := []string{}

		clock := NewVirtualClock()
		s := Interval(10*time.Millisecond, "tick", TimerOptions{Timer: clock})
		assert.Equal(t, 0, clock.Pending())

		sub := record(&log, "s", s)
		assert.Equal(t, 1, clock.Pending())

		clock.Advance(30 * time.Millisecond)
		s.Unsubscribe(sub)
		assert.Equal(t, 0, clock.Pending())

		clock.Advance(30 * time.Millisecond)
		assert.Equal(t, []string{"s tick", "s tick", "s tick"}, log)
	})

	t.Run("sequentially ends with the last value", func(t *testing.T) {
		log := []string{}

		clock := NewVirtualClock()
		record(&log, "s", Sequentially(10*time.Millisecond, []int{1, 2, 3}, TimerOptions{Timer: clock}))

		clock.Advance(25 * time.Millisecond)
		assert.Equal(t, []string{"s 1", "s 2"}, log)

		clock.Advance(5 * time.Millisecond)
		assert.Equal(t, []string{"s 1", "s 2", "s 3", "s end"}, log)
		assert.Equal(t, 0, clock.Pending())
	})

	t.Run("sequentially of nothing ends on its first tick", func(t *testing.T) {
		log := []string{}

		clock := NewVirtualClock()
		record(&log, "s", Sequentially[int](10*time.Millisecond, nil, TimerOptions{Timer: clock}))

		clock.Advance(10 * time.Millisecond)
		assert.Equal(t, []string{"s end"}, log)
	})

	t.Run("repeatedly cycles", func(t *testing.T) {
		log := []string{}

		clock := NewVirtualClock()
		record(&log, "s", Repeatedly(10*time.Millisecond, []string{"a", "b"}, TimerOptions{Timer: clock}))
		clock.Advance(50 * time.Millisecond)

		assert.Equal(t, []string{"s a", "s b", "s a", "s b", "s a"}, log)
	})

	t.Run("repeatedly of nothing has ended", func(t *testing.T) {
		assert.True(t, Repeatedly[int](time.Second, nil).IsEnded())
	})

	t.Run("from poll", func(t *testing.T) {
		log := []string{}

		clock := NewVirtualClock()
		n := 0
		record(&log, "s", FromPoll(time.Second, func() int {
			n++
			return n * n
		}, TimerOptions{Timer: clock, Name: "squares"}))
		clock.Advance(3 * time.Second)

		assert.Equal(t, []string{"s 1", "s 4", "s 9"}, log)
	})

	t.Run("from poll signal", func(t *testing.T) {
		log := []string{}

		clock := NewVirtualClock()
		n := 0
		s := FromPollSignal(time.Second, func() Signal[int] {
			n++
			if n == 3 {
				return End[int]()
			}
			if n == 2 {
				return Absorb[int]()
			}
			return Value(n)
		}, TimerOptions{Timer: clock, Name: "poll"})
		assert.Equal(t, "[Stream | poll]", s.String())

		record(&log, "s", s)
		clock.Advance(5 * time.Second)

		assert.Equal(t, []string{"s 1", "s end"}, log)
	})

	t.Run("on the goroutine loop", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var got []int
		Sequentially(time.Millisecond, []int{1, 2, 3}).
			OnValue(func(v int) {
				got = append(got, v)
				if v == 3 {
					cancel()
				}
			})

		err := Run(ctx)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("post from other goroutines", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		b := NewBus[int]()
		total := 0
		first3 := b.Take(3)
		first3.OnValue(func(int) {})
		first3.OnEndFunc(cancel)
		b.OnValue(func(v int) { total += v })

		loop := CurrentLoop()

		var g errgroup.Group
		for i := 1; i <= 3; i++ {
			g.Go(func() error {
				loop.Post(func() { b.Push(i) })
				return nil
			})
		}
		go func() {
			// keep the fourth push after the other three
			g.Wait()
			loop.Post(func() { b.Push(4) })
		}()

		require.ErrorIs(t, loop.Run(ctx), context.Canceled)
		assert.Equal(t, 10, total)

		timers, tasks := loop.Pending()
		assert.Equal(t, 0, timers)
		assert.Equal(t, 0, tasks)
	})
}
