package decl

import (
	"fmt"
	"strconv"
)

type ValueTag int

const (
	ValueTagInt ValueTag = iota
	ValueTagFloat
)

// Value holds the payload of a literal expression. Only numeric literals
// exist in this language, so the wrapper stays a small tagged pair.
type Value struct {
	Tag      ValueTag
	IntVal   int64
	FloatVal float64
}

func IntValue(v int64) Value {
	return Value{Tag: ValueTagInt, IntVal: v}
}

func FloatValue(v float64) Value {
	return Value{Tag: ValueTagFloat, FloatVal: v}
}

// IsFloat reports whether the literal is in the float class.
func (v Value) IsFloat() bool {
	return v.Tag == ValueTagFloat
}

func (v Value) String() string {
	switch v.Tag {
	case ValueTagInt:
		return strconv.FormatInt(v.IntVal, 10)
	case ValueTagFloat:
		return strconv.FormatFloat(v.FloatVal, 'g', -1, 64)
	}
	return fmt.Sprintf("<invalid value tag %d>", v.Tag)
}
