package httpx

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircuitBreaker(t *testing.T) {
	tests := []struct {
		name        string
		breakerName string
		timeout     time.Duration
		maxFailures uint32
	}{
		{name: "Valid circuit breaker", breakerName: "embeddings", timeout: 30 * time.Second, maxFailures: 3},
		{name: "Zero timeout", breakerName: "zero-timeout", timeout: 0, maxFailures: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breaker := NewCircuitBreaker(tt.breakerName, tt.timeout, tt.maxFailures)

			wrapper, ok := breaker.(*circuitBreakerWrapper)
			require.True(t, ok)
			assert.Equal(t, tt.breakerName, wrapper.breaker.Name())
			assert.Equal(t, "closed", breaker.State())
		})
	}
}

func TestCircuitBreaker_ExecuteSuccess(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)
	assert.NoError(t, breaker.Execute(func() error { return nil }))
}

func TestCircuitBreaker_ExecuteFailureWrapsError(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("test error")

	err := breaker.Execute(func() error { return testError })

	assert.ErrorIs(t, err, testError)
	assert.Contains(t, err.Error(), "failure-test")
}

func TestCircuitBreaker_RecoversPanics(t *testing.T) {
	for _, v := range []interface{}{"boom", errors.New("panic error"), 42} {
		breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3)

		err := breaker.Execute(func() error { panic(v) })

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "panic recovered:")
	}
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	var transitions []string
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 2, WithStateListener(func(_, from, to string) {
		transitions = append(transitions, from+"->"+to)
	}))

	for i := 0; i < 2; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
	assert.Equal(t, "open", breaker.State())
	assert.Equal(t, []string{"closed->open"}, transitions)
}

func TestCircuitBreaker_Recovers(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	assert.Error(t, breaker.Execute(func() error { return errors.New("trigger failure") }))
	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
	assert.Equal(t, "closed", breaker.State())
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	breaker := NewCircuitBreaker("concurrent-test", 30*time.Second, 100)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = breaker.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, "closed", breaker.State())
}
