// Package keyboard provides the minimal key model the runtime dispatches.
package keyboard

// Key identifies a logical key. Printable keys carry their rune; named keys
// use the negative range below.
type Key rune

// Named keys.
const (
	KeyEscape Key = -(iota + 1)
	KeyTab
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	// ModShift is the shift key.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the control key.
	ModCtrl
	// ModAlt is the alt/option key.
	ModAlt
	// ModLogo is the platform logo key.
	ModLogo
)

// Contains reports whether all modifiers in other are held.
func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}
