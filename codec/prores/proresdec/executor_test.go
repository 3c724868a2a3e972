package proresdec

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestDefaultExecutorRunsAllAndCollectsErrors(t *testing.T) {
	const n = 50
	errOdd := errors.New("odd")

	var calls atomic.Int64
	e := DefaultExecutor{Workers: 4}
	errs := e.Execute(n, func(i, threadIndex int) error {
		calls.Add(1)
		if threadIndex < 0 || threadIndex >= 4 {
			t.Errorf("threadIndex = %d, want in [0,4)", threadIndex)
		}
		if i%2 == 1 {
			return errOdd
		}
		return nil
	})

	if int(calls.Load()) != n {
		t.Fatalf("fn called %d times, want %d", calls.Load(), n)
	}
	if len(errs) != n {
		t.Fatalf("len(errs) = %d, want %d", len(errs), n)
	}
	for i, err := range errs {
		if i%2 == 1 && !errors.Is(err, errOdd) {
			t.Errorf("errs[%d] = %v, want %v", i, err, errOdd)
		}
		if i%2 == 0 && err != nil {
			t.Errorf("errs[%d] = %v, want nil", i, err)
		}
	}
}

func TestDefaultExecutorZeroWork(t *testing.T) {
	e := DefaultExecutor{}
	errs := e.Execute(0, func(i, threadIndex int) error {
		t.Fatal("fn should not be called for n=0")
		return nil
	})
	if len(errs) != 0 {
		t.Errorf("len(errs) = %d, want 0", len(errs))
	}
}
