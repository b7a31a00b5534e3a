// Package ir defines the intermediate representation for vector-graphics
// documents: attribute values that may be constant or animated, the element
// catalogue used as scope payloads, and the flat instruction log produced
// by one authoring pass.
package ir

// animatableState tracks which variant an Animatable holds.
type animatableState uint8

const (
	stateUnset animatableState = iota
	stateConstant
	stateAnimated
)

// Animatable is an attribute value that is either a fixed constant or a
// named reference into an animation register, resolved by the backend at
// compile/execute time.
//
// The zero value is "unset"; owning elements treat unset fields as absent
// attributes. Animatable values are immutable once built; owners replace
// the whole field to change it. Register names are not validated at
// construction; an invalid or unknown name surfaces when a device compiles
// the log.
type Animatable[T any] struct {
	constant T
	register string
	state    animatableState
}

// Constant wraps a plain value.
func Constant[T any](v T) Animatable[T] {
	return Animatable[T]{constant: v, state: stateConstant}
}

// Register references an animation register by name. The name is resolved
// (or rejected) by the device, never here.
func Register[T any](name string) Animatable[T] {
	return Animatable[T]{register: name, state: stateAnimated}
}

// IsSet reports whether the value holds either variant.
func (a Animatable[T]) IsSet() bool {
	return a.state != stateUnset
}

// IsAnimated reports whether the value is an animation-register reference.
func (a Animatable[T]) IsAnimated() bool {
	return a.state == stateAnimated
}

// Value returns the constant payload. The second result is false for unset
// or animated values; an animated value never exposes a constant payload.
func (a Animatable[T]) Value() (T, bool) {
	if a.state != stateConstant {
		var zero T
		return zero, false
	}
	return a.constant, true
}

// RegisterName returns the animation-register name for animated values.
func (a Animatable[T]) RegisterName() (string, bool) {
	if a.state != stateAnimated {
		return "", false
	}
	return a.register, true
}
