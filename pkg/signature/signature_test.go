package signature_test

import (
	"testing"

	"github.com/arthur-debert/evreg/pkg/errors"
	"github.com/arthur-debert/evreg/pkg/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b signature.Signature
		want bool
	}{
		{"none matches none", signature.None(), signature.None(), true},
		{"zero value is none", signature.Signature{}, signature.None(), true},
		{"none never matches empty list", signature.None(), signature.Of(), false},
		{"empty list never matches none", signature.Of(), signature.None(), false},
		{"empty lists match", signature.Of(), signature.Of(), true},
		{"same single param", signature.Of(signature.Int), signature.Of(signature.Int), true},
		{"different single param", signature.Of(signature.Int), signature.Of(signature.String), false},
		{"order sensitive", signature.Of(signature.Int, signature.String), signature.Of(signature.String, signature.Int), false},
		{"length sensitive", signature.Of(signature.Int), signature.Of(signature.Int, signature.Int), false},
		{"custom tags", signature.Of("geo.Point"), signature.FromStrings([]string{"geo.Point"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "null", signature.None().String())
	assert.Equal(t, "<empty>", signature.Of().String())
	assert.Equal(t, "int", signature.Of(signature.Int).String())
	assert.Equal(t, "int, string", signature.Of(signature.Int, signature.String).String())
}

func TestOfCopiesInput(t *testing.T) {
	params := []signature.ParamType{signature.Int, signature.Bool}
	sig := signature.Of(params...)
	params[0] = signature.String

	assert.Equal(t, []signature.ParamType{signature.Int, signature.Bool}, sig.Params())

	out := sig.Params()
	out[1] = signature.Any
	assert.Equal(t, "int, bool", sig.String())
}

func TestParamsAndLen(t *testing.T) {
	assert.Nil(t, signature.None().Params())
	assert.True(t, signature.None().IsNone())
	assert.Equal(t, 0, signature.None().Len())

	empty := signature.Of()
	assert.False(t, empty.IsNone())
	assert.NotNil(t, empty.Params())
	assert.Equal(t, 0, empty.Len())

	assert.Equal(t, 2, signature.Of(signature.Int, signature.Error).Len())
}

func TestValidate(t *testing.T) {
	t.Run("match returns nil", func(t *testing.T) {
		assert.NoError(t, signature.Validate("Open", signature.Of(signature.Int), signature.Of(signature.Int)))
		assert.NoError(t, signature.Validate("Open", signature.None(), signature.None()))
	})

	t.Run("mismatch carries event and renderings", func(t *testing.T) {
		err := signature.Validate("Open", signature.Of(signature.Int), signature.Of(signature.String))
		require.Error(t, err)
		assert.True(t, errors.IsSignatureMismatch(err))

		details := errors.GetErrorDetails(err)
		assert.Equal(t, "Open", details[errors.DetailEvent])
		assert.Equal(t, "int", details[errors.DetailExpected])
		assert.Equal(t, "string", details[errors.DetailActual])
	})

	t.Run("none placeholder", func(t *testing.T) {
		err := signature.Validate(42, signature.None(), signature.Of())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "event ID 42")
		assert.Contains(t, err.Error(), "Expected: null, Actual: <empty>")
	})
}
