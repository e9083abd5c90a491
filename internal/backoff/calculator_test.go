package backoff

import (
	"testing"
	"time"
)

func TestCalculatorSchedule(t *testing.T) {
	calc := NewCalculator(nil, time.Second, 32*time.Second, 0)

	got := calc.Schedule(7)
	want := []time.Duration{
		1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second,
		16 * time.Second, 32 * time.Second, 32 * time.Second,
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Delay(%d) = %v, want %v", i+1, got[i], want[i])
		}
	}
}

func TestCalculatorDefaultsToExponential(t *testing.T) {
	calc := NewCalculator(nil, time.Second, time.Minute, 0)

	if _, ok := calc.Strategy().(ExponentialStrategy); !ok {
		t.Errorf("Strategy() returned wrong type: %T", calc.Strategy())
	}
}

func BenchmarkCalculatorExponential(b *testing.B) {
	calc := NewCalculator(ExponentialStrategy{}, 100*time.Millisecond, 5*time.Second, 0.1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.Delay(i%10 + 1)
	}
}
