// SPDX-License-Identifier: Unlicense OR MIT

package key

// Keymap is the view of a compiled keyboard layout and its state
// needed to translate hardware key codes. Key codes are XKB key codes,
// that is evdev codes plus 8.
type Keymap interface {
	// LayoutForKey returns the active layout for the key.
	LayoutForKey(kc uint32) uint32
	// NumLevels returns the number of shift levels of the key
	// in layout.
	NumLevels(kc, layout uint32) uint32
	// SymsByLevel returns the keysyms bound to the key at level.
	SymsByLevel(kc, layout, level uint32) []Sym
	// Modifiers returns the currently active modifiers.
	Modifiers() Mod
}

// Event is a translated key event waiting to be polled.
type Event struct {
	State State
	Code  Code
}

// XKBCode converts an evdev key code to an XKB key code. According to
// the xkb_v1 keymap format, clients must add 8 to the key event
// keycode.
func XKBCode(evdev uint32) uint32 {
	return evdev + 8
}

// Translate resolves an evdev key code through km. The symbols bound
// at the last level of the key's active layout are translated one by
// one, so a key resolving to several symbols produces several codes.
func Translate(km Keymap, evdev uint32) []Code {
	kc := XKBCode(evdev)
	layout := km.LayoutForKey(kc)
	levels := km.NumLevels(kc, layout)
	if levels == 0 {
		return nil
	}
	syms := km.SymsByLevel(kc, layout, levels-1)
	codes := make([]Code, 0, len(syms))
	for _, s := range syms {
		codes = append(codes, Lookup(s))
	}
	return codes
}

// Events is like Translate but pairs every code with s.
func Events(km Keymap, evdev uint32, s State) []Event {
	codes := Translate(km, evdev)
	evts := make([]Event, len(codes))
	for i, c := range codes {
		evts[i] = Event{State: s, Code: c}
	}
	return evts
}
