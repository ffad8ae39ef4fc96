package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pkgerrors "github.com/agentstation/dexmap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "element",
			ID:       "shadow",
		}
		assert.Equal(t, "element with ID shadow not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("record", "1009")
		wrapped := fmt.Errorf("synthesize: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
		assert.False(t, pkgerrors.IsProviderError(wrapped))
	})
}

func TestProviderError(t *testing.T) {
	t.Run("with id", func(t *testing.T) {
		err := pkgerrors.NewProviderError("pokeapi", 25, errors.New("connection reset"))
		assert.Equal(t, "provider pokeapi failed for id 25: connection reset", err.Error())
		assert.True(t, pkgerrors.IsProviderError(err))
		assert.False(t, pkgerrors.IsNotFound(err))
	})

	t.Run("unwrap reaches cause", func(t *testing.T) {
		cause := pkgerrors.NewTimeoutError("fetch", 0, context.DeadlineExceeded)
		err := pkgerrors.NewProviderError("pokeapi", 1, cause)
		assert.True(t, pkgerrors.IsTimeout(err))
	})

	t.Run("wrap keeps classification", func(t *testing.T) {
		nf := pkgerrors.NewNotFoundError("record", "7")
		assert.Same(t, nf, pkgerrors.WrapProvider("pokeapi", 7, nf))

		api := pkgerrors.NewAPIError("pokeapi", 500, "boom")
		assert.Same(t, api, pkgerrors.WrapProvider("pokeapi", 7, api))

		wrapped := pkgerrors.WrapProvider("pokeapi", 7, errors.New("eof"))
		var pe *pkgerrors.ProviderError
		require.True(t, errors.As(wrapped, &pe))
		assert.Equal(t, 7, pe.ID)

		assert.NoError(t, pkgerrors.WrapProvider("pokeapi", 7, nil))
	})
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		rateLimited bool
		unavailable bool
	}{
		{"too many requests", 429, true, false},
		{"server error", 503, false, true},
		{"bad request", 400, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgerrors.NewAPIError("pokeapi", tt.status, "status")
			assert.Contains(t, err.Error(), "pokeapi")
			assert.True(t, pkgerrors.IsProviderError(err))
			assert.Equal(t, tt.rateLimited, pkgerrors.IsRateLimited(err))
			assert.Equal(t, tt.unavailable, pkgerrors.IsProviderUnavailable(err))
		})
	}
}

func TestPreconditionError(t *testing.T) {
	err := pkgerrors.NewPreconditionError("catalog", 3, "id 4 is not greater than previous id 4")
	assert.Contains(t, err.Error(), "index 3")
	assert.True(t, pkgerrors.IsPreconditionViolation(err))

	err = pkgerrors.NewPreconditionError("catalog", -1, "empty")
	assert.Equal(t, "precondition violated for catalog: empty", err.Error())
}

func TestSynthesisError(t *testing.T) {
	t.Run("nil when no failures", func(t *testing.T) {
		assert.NoError(t, pkgerrors.NewSynthesisError(nil))
	})

	t.Run("lists ids in order", func(t *testing.T) {
		err := pkgerrors.NewSynthesisError(map[int]error{
			9: pkgerrors.NewNotFoundError("record", "9"),
			3: pkgerrors.NewProviderError("pokeapi", 3, errors.New("eof")),
		})
		require.Error(t, err)
		assert.Equal(t, "synthesis failed for 2 id(s): 3, 9", err.Error())
		assert.True(t, pkgerrors.IsSynthesisError(err))
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.True(t, pkgerrors.IsProviderError(err))

		var se *pkgerrors.SynthesisError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, []int{3, 9}, se.IDs())
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("elements", 3, "expected 1 or 2 elements")
		assert.Equal(t, "validation failed for field elements: expected 1 or 2 elements", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapValidation("workers", nil))
		err := pkgerrors.WrapValidation("workers", errors.New("must be positive"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestIOError(t *testing.T) {
	baseErr := errors.New("disk full")
	err := pkgerrors.WrapIO("write", "/data/updated_pokemon.json", baseErr)
	ioErr, ok := err.(*pkgerrors.IOError)
	require.True(t, ok)
	assert.Equal(t, "write", ioErr.Operation)
	assert.Equal(t, baseErr, ioErr.Unwrap())
	assert.Contains(t, err.Error(), "/data/updated_pokemon.json")
	assert.NoError(t, pkgerrors.WrapIO("write", "x", nil))
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.NewParseError("yaml", "types.yaml", "invalid indentation", nil)
		assert.Equal(t, "parse error in yaml file types.yaml: invalid indentation", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		baseErr := errors.New("unexpected EOF")
		err := pkgerrors.WrapParse("json", "", baseErr)
		parseErr, ok := err.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json parse error: unexpected EOF", parseErr.Error())
		assert.Equal(t, baseErr, parseErr.Unwrap())
	})
}

func TestResourceError(t *testing.T) {
	cause := pkgerrors.NewNotFoundError("element", "shadow")
	err := pkgerrors.WrapResource("reconcile", "entry", "25", cause)
	assert.Equal(t, "failed to reconcile entry 25: element with ID shadow not found", err.Error())
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("provider", "unknown provider \"ftp\"", nil)
	assert.Contains(t, err.Error(), "provider")
	assert.Nil(t, err.Unwrap())
}

func TestTimeoutError(t *testing.T) {
	err := pkgerrors.NewTimeoutError("update", 30*time.Second, context.DeadlineExceeded)
	assert.Equal(t, "operation update timed out after 30s: context deadline exceeded", err.Error())
	assert.True(t, pkgerrors.IsTimeout(err))
	assert.False(t, pkgerrors.IsCanceled(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWrapContext(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapContext("fetch", time.Second, nil))

	t.Run("deadline", func(t *testing.T) {
		err := pkgerrors.WrapContext("fetch", 10*time.Millisecond, context.DeadlineExceeded)
		assert.True(t, pkgerrors.IsTimeout(err))
		assert.Equal(t, "operation fetch timed out after 10ms: context deadline exceeded", err.Error())

		wrapped := pkgerrors.NewProviderError("pokeapi", 1, context.DeadlineExceeded)
		assert.True(t, pkgerrors.IsTimeout(pkgerrors.WrapContext("fetch", 0, wrapped)))
	})

	t.Run("canceled", func(t *testing.T) {
		err := pkgerrors.WrapContext("update", 0, context.Canceled)
		assert.True(t, pkgerrors.IsCanceled(err))
		assert.False(t, pkgerrors.IsTimeout(err))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, "operation update canceled", err.Error())
	})

	t.Run("already classified", func(t *testing.T) {
		timeout := pkgerrors.NewTimeoutError("fetch", time.Second, context.DeadlineExceeded)
		assert.Same(t, timeout, pkgerrors.WrapContext("update", 0, timeout))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		nf := pkgerrors.NewNotFoundError("record", "7")
		assert.Same(t, nf, pkgerrors.WrapContext("fetch", 0, nf))
	})
}
