package value

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strconv"
)

// Constant represents an integer, floating-point, or string constant value.
type Constant struct {
	intVal   *int
	floatVal *float64
	strVal   *string
}

// NewIntConstant creates a new Constant with an integer value.
func NewIntConstant(val int) *Constant {
	return &Constant{
		intVal: &val,
	}
}

// NewFloatConstant creates a new Constant with a floating-point value.
func NewFloatConstant(val float64) *Constant {
	return &Constant{
		floatVal: &val,
	}
}

// NewStringConstant creates a new Constant with a string value.
func NewStringConstant(val string) *Constant {
	return &Constant{
		strVal: &val,
	}
}

// String returns a stable string representation of the constant.
// The rendering is deterministic and lossless: integers in decimal,
// floats in shortest round-trip form, strings as-is.
func (c *Constant) String() string {
	if c.intVal != nil {
		return strconv.Itoa(*c.intVal)
	}
	if c.floatVal != nil {
		return strconv.FormatFloat(*c.floatVal, 'g', -1, 64)
	}
	return *c.strVal
}

// AsInt returns the integer value of the constant.
func (c *Constant) AsInt() int {
	return *c.intVal
}

// AsFloat returns the floating-point value of the constant.
func (c *Constant) AsFloat() float64 {
	return *c.floatVal
}

// AsString returns the string value of the constant.
func (c *Constant) AsString() string {
	return *c.strVal
}

// Equals checks if the constant is equal to another constant.
// Constants of different types are never equal.
func (c *Constant) Equals(other *Constant) bool {
	if c.intVal != nil && other.intVal != nil {
		return *c.intVal == *other.intVal
	}
	if c.floatVal != nil && other.floatVal != nil {
		return *c.floatVal == *other.floatVal
	}
	if c.strVal != nil && other.strVal != nil {
		return *c.strVal == *other.strVal
	}
	return false
}

// CompareTo returns -1, 0, or 1 if this Constant is less than, equal to, or greater than the other, respectively.
// Returns -1 if types do not match.
func (c *Constant) CompareTo(other *Constant) int {
	if c.intVal != nil && other.intVal != nil {
		if *c.intVal < *other.intVal {
			return -1
		} else if *c.intVal > *other.intVal {
			return 1
		} else {
			return 0
		}
	}
	if c.floatVal != nil && other.floatVal != nil {
		if *c.floatVal < *other.floatVal {
			return -1
		} else if *c.floatVal > *other.floatVal {
			return 1
		} else {
			return 0
		}
	}
	if c.strVal != nil && other.strVal != nil {
		if *c.strVal < *other.strVal {
			return -1
		} else if *c.strVal > *other.strVal {
			return 1
		} else {
			return 0
		}
	}
	return -1 // types don't match
}

// IsInt returns true if the constant holds an integer value.
func (c *Constant) IsInt() bool {
	return c.intVal != nil
}

// IsFloat returns true if the constant holds a floating-point value.
func (c *Constant) IsFloat() bool {
	return c.floatVal != nil
}

// IsString returns true if the constant holds a string value.
func (c *Constant) IsString() bool {
	return c.strVal != nil
}

// Hash returns a hash of the constant.
func (c *Constant) Hash() int {
	hasher := fnv.New64a()

	if c.intVal != nil {
		var buf [9]byte
		buf[0] = 0x01
		binary.LittleEndian.PutUint64(buf[1:], uint64(int64(*c.intVal)))
		_, _ = hasher.Write(buf[:])
	} else if c.floatVal != nil {
		var buf [9]byte
		buf[0] = 0x02
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(*c.floatVal))
		_, _ = hasher.Write(buf[:])
	} else {
		_, _ = hasher.Write([]byte{0x03})
		_, _ = hasher.Write([]byte(*c.strVal))
	}

	return int(hasher.Sum64())
}

// AppendKey appends a boundary-safe encoding of the constant to dst and
// returns the extended slice. The segment is a type tag, the decimal
// length of the rendered value, a '|' separator, and the rendered value
// itself. Two constants produce the same segment iff they are equal, so
// concatenated segments form collision-free composite keys even when
// values contain the separator character.
func (c *Constant) AppendKey(dst []byte) []byte {
	switch {
	case c.intVal != nil:
		dst = append(dst, 'i')
	case c.floatVal != nil:
		dst = append(dst, 'f')
	default:
		dst = append(dst, 's')
	}
	s := c.String()
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, '|')
	dst = append(dst, s...)
	return dst
}
