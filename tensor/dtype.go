// SPDX-License-Identifier: MIT

package tensor

import (
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/x448/float16"
)

// Scalar lists the element types a Tensor may hold.
// The set is exact (no ~ terms): every member is one of the types
// dtypes.FromGenericsType resolves, so a named wrapper over uint16 can never be
// mistaken for float16.Float16.
type Scalar interface {
	float16.Float16 | float32 | float64 |
		int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64
}

// DType names the element type of a Tensor. It is a thin wrapper over
// dtypes.DType that prints lower-case names.
type DType dtypes.DType

// Supported element types.
const (
	DTypeInvalid = DType(dtypes.InvalidDType)
	DTypeFloat16 = DType(dtypes.Float16)
	DTypeFloat32 = DType(dtypes.Float32)
	DTypeFloat64 = DType(dtypes.Float64)
	DTypeInt8    = DType(dtypes.Int8)
	DTypeInt16   = DType(dtypes.Int16)
	DTypeInt32   = DType(dtypes.Int32)
	DTypeInt64   = DType(dtypes.Int64)
	DTypeUint8   = DType(dtypes.Uint8)
	DTypeUint16  = DType(dtypes.Uint16)
	DTypeUint32  = DType(dtypes.Uint32)
	DTypeUint64  = DType(dtypes.Uint64)
)

// Lib returns the underlying dtypes.DType.
func (d DType) Lib() dtypes.DType { return dtypes.DType(d) }

// String returns the lower-case dtype name (e.g. "float32"), or "invalid".
func (d DType) String() string {
	if d == DTypeInvalid {
		return "invalid"
	}

	return strings.ToLower(d.Lib().String())
}

// IsFloat reports whether d is a floating-point dtype.
func (d DType) IsFloat() bool { return d.Lib().IsFloat() }

// Size returns the element width in bytes.
func (d DType) Size() int { return d.Lib().Size() }

// DTypeOf returns the DType for element type T.
func DTypeOf[T Scalar]() DType {
	return DType(dtypes.FromGenericsType[T]())
}

// toFloat64 widens v for tolerance comparisons. Half-precision values are
// decoded rather than reinterpreted as their uint16 bit pattern.
func toFloat64[T Scalar](v T) float64 {
	if h, ok := any(v).(float16.Float16); ok {
		return float64(h.Float32())
	}

	return float64(v)
}
