package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/jcorbin/hullpaint/internal/panicerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recover(t *testing.T) {
	errBang := errors.New("bang")

	for _, tc := range []struct {
		name      string
		err       string
		wraps     error
		fun       func() error
		isPanic   bool
		isExit    bool
		haveStack bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			err:  "bang",
			fun:  func() error { return errBang },
		},
		{
			name:      "panic err",
			err:       "panic err paniced: bang",
			wraps:     errBang,
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic(errBang) },
		},
		{
			name:  "halt err",
			err:   "bang",
			wraps: errBang,
			fun:   func() error { panicerr.Halt(errBang); return nil },
		},
		{
			name: "halt",
			fun:  func() error { panicerr.Halt(nil); return errBang },
		},
		{
			name:  "deep halt",
			err:   "step 3: bang",
			wraps: errBang,
			fun: func() error {
				var step func(n int)
				step = func(n int) {
					if n == 3 {
						panicerr.Halt(fmt.Errorf("step %v: %w", n, errBang))
					}
					step(n + 1)
				}
				step(0)
				return nil
			},
		},
		{
			name:      "wrapped panic",
			err:       "wrapped panic paniced: wrapped: bang",
			wraps:     errBang,
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic(fmt.Errorf("wrapped: %w", errBang)) },
		},
		{
			name:      "",
			err:       "paniced: hello",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { panic("hello") },
		},
		{
			name:   "exit",
			err:    "exit called runtime.Goexit",
			isExit: true,
			fun:    func() error { runtime.Goexit(); return nil },
		},
		{
			name:      "index panic",
			err:       "index panic paniced: runtime error: index out of range [1] with length 0",
			isPanic:   true,
			haveStack: true,
			fun:       func() error { _ = ([]int)(nil)[1]; return nil },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.err)
			}
			if tc.wraps != nil {
				assert.True(t, errors.Is(err, tc.wraps), "expected %v to wrap %v", err, tc.wraps)
			}
			assert.Equal(t, tc.isPanic, panicerr.IsPanic(err), "expected IsPanic")
			assert.Equal(t, tc.isExit, panicerr.IsExit(err), "expected IsExit")

			stack := panicerr.PanicStack(err)
			if tc.haveStack {
				assert.NotEqual(t, "", stack, "expected a stack trace")
			} else {
				assert.Equal(t, "", stack, "expected no stack trace")
			}
		})
	}
}

func Test_Recover_stacktrace(t *testing.T) {
	err := panicerr.Recover("", func() error {
		panic("nope")
	})
	require.Error(t, err, "must have a recovered error")

	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", err), panicerr.PanicStack(err)),
		"expected verbose format to end with a stack trace")
}

func Test_Halt_outside_Recover(t *testing.T) {
	assert.Panics(t, func() { panicerr.Halt(nil) })
}
