package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvsparse/tensor"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// TestDTypeOf maps every supported element type, half precision included.
func TestDTypeOf(t *testing.T) {
	require.Equal(t, tensor.DTypeFloat32, tensor.DTypeOf[float32]())
	require.Equal(t, tensor.DTypeFloat64, tensor.DTypeOf[float64]())
	require.Equal(t, tensor.DTypeInt64, tensor.DTypeOf[int64]())
	require.Equal(t, tensor.DTypeUint8, tensor.DTypeOf[uint8]())
	require.Equal(t, tensor.DTypeUint16, tensor.DTypeOf[uint16]())
	require.Equal(t, tensor.DTypeFloat16, tensor.DTypeOf[float16.Float16]())
	require.Equal(t, tensor.DTypeInt8, tensor.DTypeOf[int8]())
	require.Equal(t, tensor.DTypeUint64, tensor.DTypeOf[uint64]())
	require.NotEqual(t, tensor.DTypeOf[uint16](), tensor.DTypeOf[float16.Float16]())
	require.Equal(t, tensor.DTypeFloat16.Lib(), tensor.DTypeOf[float16.Float16]().Lib())

	require.Equal(t, "float16", tensor.DTypeFloat16.String())
	require.Equal(t, 2, tensor.DTypeFloat16.Size())
	require.True(t, tensor.DTypeFloat16.IsFloat())
	require.False(t, tensor.DTypeInt32.IsFloat())
	require.False(t, tensor.DTypeUint16.IsFloat())
	require.Equal(t, 8, tensor.DTypeInt64.Size())
	require.Equal(t, "float32", tensor.DTypeFloat32.String())
	require.Equal(t, "uint16", tensor.DTypeUint16.String())
	require.Equal(t, "invalid", tensor.DTypeInvalid.String())
}

// TestAllCloseFloat16 decodes half-precision values before comparing.
func TestAllCloseFloat16(t *testing.T) {
	a := tensor.FromSlice([]float16.Float16{float16.Fromfloat32(1.0), float16.Fromfloat32(2.5)})
	b := tensor.FromSlice([]float16.Float16{float16.Fromfloat32(1.0), float16.Fromfloat32(2.5005)})

	require.True(t, tensor.AllClose(a, b, 1e-3, 1e-3))
	require.Equal(t, tensor.DTypeFloat16, a.DType())

	// +0 and -0 are 0x0000 and 0x8000 as bits but equal as numbers.
	pz := tensor.FromSlice([]float16.Float16{float16.Fromfloat32(0)})
	nz := tensor.FromSlice([]float16.Float16{float16.Fromfloat32(float32(math.Copysign(0, -1)))})
	require.True(t, tensor.AllClose(pz, nz, 0, 0))
	require.False(t, tensor.Equal(pz, nz))
}

// TestParseDevice covers the accepted device spellings.
func TestParseDevice(t *testing.T) {
	cases := []struct {
		in   string
		want tensor.Device
	}{
		{"cpu", tensor.CPU},
		{"CPU:0", tensor.CPU},
		{"cuda", tensor.CUDA(0)},
		{"cuda:3", tensor.CUDA(3)},
		{" gpu:1 ", tensor.CUDA(1)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := tensor.ParseDevice(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}

	for _, bad := range []string{"tpu", "cuda:x", "cuda:-1", ""} {
		_, err := tensor.ParseDevice(bad)
		require.ErrorIs(t, err, tensor.ErrUnknownDevice, bad)
	}
	require.Equal(t, "cuda:3", tensor.CUDA(3).String())
}
