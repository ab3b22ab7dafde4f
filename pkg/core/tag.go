// Package core defines the widget contract of the toolkit: the persistent
// state tree and its reconciliation, the type-erased element wrapper, the
// shell widgets talk back to the runtime through, operations, and overlays.
//
// Widgets themselves are ephemeral values rebuilt every frame by view code.
// Anything that must survive across frames lives in a parallel Tree of
// state nodes, matched to widgets by type identity.
package core

import (
	"reflect"

	"github.com/glacier-ui/glacier/pkg/errors"
)

// Tag is the type identity of a widget's persistent state. Two widgets share
// state across frames only when their tags match.
type Tag struct {
	t reflect.Type
}

// TagOf returns the tag of a state type.
func TagOf[T any]() Tag {
	return Tag{t: reflect.TypeFor[T]()}
}

// TagNone is the tag of stateless widgets.
func TagNone() Tag {
	return Tag{}
}

// String returns the tagged type name for debugging.
func (t Tag) String() string {
	if t.t == nil {
		return "none"
	}
	return t.t.String()
}

// State is the type-erased persistent state of one widget.
type State struct {
	value any
}

// EmptyState is the state of stateless widgets.
var EmptyState = State{}

// NewState wraps a widget state value. Pass a pointer so the widget can
// mutate the stored state in place.
func NewState(value any) State {
	return State{value: value}
}

// IsEmpty reports whether the state holds nothing.
func (s State) IsEmpty() bool {
	return s.value == nil
}

// StateAs returns the stored state as *T. It panics with a structured error
// when the stored state has a different type: that means reconciliation
// handed a widget somebody else's state node, which is unrecoverable.
func StateAs[T any](s State) *T {
	if p, ok := s.value.(*T); ok {
		return p
	}

	got := "nothing"
	if s.value != nil {
		got = reflect.TypeOf(s.value).String()
	}
	panic(&errors.Error{
		Op:   "core.StateAs",
		Kind: errors.KindStateMismatch,
		Err: &errors.StateMismatchError{
			Want: reflect.TypeFor[*T]().String(),
			Got:  got,
		},
		StackTrace: errors.CaptureStack(),
	})
}
