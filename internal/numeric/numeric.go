// Package numeric provides small fixed-size vector value types.
//
// Vectors are plain values: copy them by assignment, compare them with the
// methods below. Ordering comparisons are conjunctive across components, so
// two vectors can be neither less nor greater than each other without being
// equal.
package numeric

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element kinds a vector can hold.
type Scalar interface {
	constraints.Signed | constraints.Float
}

type (
	Float2 = Vec2[float32]
	Int2   = Vec2[int32]
	Float4 = Vec4[float32]
	Int4   = Vec4[int32]
)

func indexPanic(i, n int) {
	panic(fmt.Sprintf("numeric: index %d out of range for %d-component vector", i, n))
}
