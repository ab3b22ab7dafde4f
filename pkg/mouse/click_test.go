package mouse

import (
	"testing"
	"time"

	"github.com/glacier-ui/glacier/pkg/geometry"
)

var clickEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestNewClick_FirstPressIsSingle verifies that a press with no history is a
// single click.
func TestNewClick_FirstPressIsSingle(t *testing.T) {
	click := NewClick(geometry.Pt(10, 10), ButtonLeft, nil, clickEpoch)

	if click.Kind() != ClickSingle {
		t.Errorf("kind = %v, want single", click.Kind())
	}
	if click.Button() != ButtonLeft {
		t.Errorf("button = %v, want left", click.Button())
	}
}

// TestNewClick_ChainsToDoubleAndTriple verifies that quick presses in place
// promote through double to triple.
func TestNewClick_ChainsToDoubleAndTriple(t *testing.T) {
	first := NewClick(geometry.Pt(10, 10), ButtonLeft, nil, clickEpoch)
	second := NewClick(geometry.Pt(11, 10), ButtonLeft, &first, clickEpoch.Add(100*time.Millisecond))
	third := NewClick(geometry.Pt(10, 11), ButtonLeft, &second, clickEpoch.Add(200*time.Millisecond))

	if second.Kind() != ClickDouble {
		t.Errorf("second kind = %v, want double", second.Kind())
	}
	if third.Kind() != ClickTriple {
		t.Errorf("third kind = %v, want triple", third.Kind())
	}
}

// TestNewClick_FourthPressRestartsChain verifies that the chain wraps back to
// a single click after a triple.
func TestNewClick_FourthPressRestartsChain(t *testing.T) {
	click := NewClick(geometry.Pt(10, 10), ButtonLeft, nil, clickEpoch)
	for i := 0; i < 3; i++ {
		at := clickEpoch.Add(time.Duration(i+1) * 50 * time.Millisecond)
		click = NewClick(geometry.Pt(10, 10), ButtonLeft, &click, at)
	}

	if click.Kind() != ClickSingle {
		t.Errorf("fourth press kind = %v, want single", click.Kind())
	}
}

// TestNewClick_SlowPressBreaksChain verifies that a pause longer than the
// chain interval starts over.
func TestNewClick_SlowPressBreaksChain(t *testing.T) {
	first := NewClick(geometry.Pt(10, 10), ButtonLeft, nil, clickEpoch)
	second := NewClick(geometry.Pt(10, 10), ButtonLeft, &first, clickEpoch.Add(301*time.Millisecond))

	if second.Kind() != ClickSingle {
		t.Errorf("kind after slow press = %v, want single", second.Kind())
	}
}

// TestNewClick_DistantPressBreaksChain verifies that moving the cursor too
// far between presses starts over.
func TestNewClick_DistantPressBreaksChain(t *testing.T) {
	first := NewClick(geometry.Pt(10, 10), ButtonLeft, nil, clickEpoch)
	second := NewClick(geometry.Pt(20, 10), ButtonLeft, &first, clickEpoch.Add(50*time.Millisecond))

	if second.Kind() != ClickSingle {
		t.Errorf("kind after distant press = %v, want single", second.Kind())
	}
}

// TestNewClick_DifferentButtonBreaksChain verifies that a press with another
// button never extends the chain.
func TestNewClick_DifferentButtonBreaksChain(t *testing.T) {
	first := NewClick(geometry.Pt(10, 10), ButtonLeft, nil, clickEpoch)
	second := NewClick(geometry.Pt(10, 10), ButtonRight, &first, clickEpoch.Add(50*time.Millisecond))

	if second.Kind() != ClickSingle {
		t.Errorf("kind after other button = %v, want single", second.Kind())
	}
}
