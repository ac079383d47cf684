package promise

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Run("Results align with input positions, not settlement order", func(t *testing.T) {
		const count = 10

		promises := make([]*Promise[int], count)
		resolvers := make([]ResolveFunc[int], count)
		for i := range promises {
			promises[i], resolvers[i], _ = Deferred[int]()
		}

		aggregate := All(promises)

		// settle in reverse order.
		for i := count - 1; i >= 0; i-- {
			resolvers[i](i * 11)
		}

		waitSettled(t, aggregate)
		require.Equal(t, StateFulfilled, aggregate.State())
		require.Len(t, aggregate.value, count)
		for i, value := range aggregate.value {
			require.Equal(t, i*11, value)
		}
	})

	t.Run("First rejection wins regardless of later settlements", func(t *testing.T) {
		first := errors.New("first failure")
		second := errors.New("second failure")

		promises := make([]*Promise[int], 10)
		resolvers := make([]ResolveFunc[int], 10)
		rejectors := make([]RejectFunc, 10)
		for i := range promises {
			promises[i], resolvers[i], rejectors[i] = Deferred[int]()
		}

		aggregate := All(promises)

		for i := 0; i < 5; i++ {
			resolvers[i](i)
		}
		rejectors[5](first)
		rejectors[6](second)
		for i := 7; i < 10; i++ {
			resolvers[i](i)
		}

		waitSettled(t, aggregate)
		require.Equal(t, StateRejected, aggregate.State())
		require.Same(t, first, aggregate.err)
	})

	t.Run("Empty input fulfills immediately with an empty slice", func(t *testing.T) {
		aggregate := All[int](nil)

		require.Equal(t, StateFulfilled, aggregate.State())
		require.NotNil(t, aggregate.value)
		require.Empty(t, aggregate.value)
	})

	t.Run("Nil input promise panics", func(t *testing.T) {
		require.PanicsWithValue(t, nilPromisePanicMsg, func() {
			All([]*Promise[int]{nil})
		})
	})
}

func TestRace(t *testing.T) {
	t.Run("First settler wins with a fulfillment", func(t *testing.T) {
		p1, _, _ := Deferred[int]()
		p2, resolve2, _ := Deferred[int]()

		winner := Race([]*Promise[int]{p1, p2})
		resolve2(2)

		waitSettled(t, winner)
		require.Equal(t, StateFulfilled, winner.State())
		require.Equal(t, 2, winner.value)
	})

	t.Run("First settler wins with a rejection", func(t *testing.T) {
		reason := errors.New("lost the race")

		p1, _, reject1 := Deferred[int]()
		p2, resolve2, _ := Deferred[int]()

		winner := Race([]*Promise[int]{p1, p2})
		reject1(reason)
		resolve2(2)

		waitSettled(t, winner)
		require.Equal(t, StateRejected, winner.State())
		require.Same(t, reason, winner.err)
	})

	t.Run("Losing inputs settling later are ignored", func(t *testing.T) {
		p1, resolve1, _ := Deferred[int]()
		p2, resolve2, _ := Deferred[int]()
		p3, _, reject3 := Deferred[int]()

		winner := Race([]*Promise[int]{p1, p2, p3})

		resolve1(1)
		resolve2(2)
		reject3(errors.New("too slow"))

		waitSettled(t, winner)
		require.Equal(t, StateFulfilled, winner.State())
		require.Equal(t, 1, winner.value)
		require.Nil(t, winner.err)
	})

	t.Run("Empty input stays pending", func(t *testing.T) {
		winner := Race[int](nil)
		require.Equal(t, StatePending, winner.State())
	})
}

func TestAllSettled(t *testing.T) {
	t.Run("Every outcome is reported positionally", func(t *testing.T) {
		reason := errors.New("middle failure")

		p1, resolve1, _ := Deferred[int]()
		p2, _, reject2 := Deferred[int]()
		p3, resolve3, _ := Deferred[int]()

		aggregate := AllSettled([]*Promise[int]{p1, p2, p3})

		resolve3(3)
		reject2(reason)
		resolve1(1)

		waitSettled(t, aggregate)
		require.Equal(t, StateFulfilled, aggregate.State())

		results := aggregate.value
		require.Len(t, results, 3)

		require.True(t, results[0].Fulfilled())
		require.Equal(t, 1, results[0].Value)

		require.True(t, results[1].Rejected())
		require.Same(t, reason, results[1].Err)

		require.True(t, results[2].Fulfilled())
		require.Equal(t, 3, results[2].Value)
	})

	t.Run("Empty input fulfills immediately", func(t *testing.T) {
		aggregate := AllSettled[int](nil)

		require.Equal(t, StateFulfilled, aggregate.State())
		require.Empty(t, aggregate.value)
	})
}
