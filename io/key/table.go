// SPDX-License-Identifier: Unlicense OR MIT

package key

// Sym is an XKB keysym.
type Sym uint32

var keysyms = map[Sym]Code{
	0xff08: CodeBackspace,
	0xff09: CodeTab,
	0xfe20: CodeTab, // ISO_Left_Tab
	0xff0b: CodeClear,
	0xff0d: CodeReturn,
	0xff13: CodePause,
	0xff1b: CodeEscape,
	0xffff: CodeDelete,

	0xffb0: CodeKP0,
	0xffb1: CodeKP0 + 1,
	0xffb2: CodeKP0 + 2,
	0xffb3: CodeKP0 + 3,
	0xffb4: CodeKP0 + 4,
	0xffb5: CodeKP0 + 5,
	0xffb6: CodeKP0 + 6,
	0xffb7: CodeKP0 + 7,
	0xffb8: CodeKP0 + 8,
	0xffb9: CodeKP9,
	0xff9e: CodeKP0,     // KP_Insert
	0xff9c: CodeKP0 + 1, // KP_End
	0xff99: CodeKP0 + 2, // KP_Down
	0xff9b: CodeKP0 + 3, // KP_Next
	0xff96: CodeKP0 + 4, // KP_Left
	0xff9d: CodeKP0 + 5, // KP_Begin
	0xff98: CodeKP0 + 6, // KP_Right
	0xff95: CodeKP0 + 7, // KP_Home
	0xff97: CodeKP0 + 8, // KP_Up
	0xff9a: CodeKP9,     // KP_Prior
	0xffae: CodeKPPeriod,
	0xff9f: CodeKPPeriod, // KP_Delete
	0xffaf: CodeKPDivide,
	0xffaa: CodeKPMultiply,
	0xffad: CodeKPMinus,
	0xffab: CodeKPPlus,
	0xff8d: CodeKPEnter,
	0xffbd: CodeKPEquals,

	0xff52: CodeUp,
	0xff54: CodeDown,
	0xff53: CodeRight,
	0xff51: CodeLeft,
	0xff63: CodeInsert,
	0xff50: CodeHome,
	0xff57: CodeEnd,
	0xff55: CodePageUp,
	0xff56: CodePageDown,

	0xff7f: CodeNumLock,
	0xffe5: CodeCapsLock,
	0xff14: CodeScrollLock,
	0xffe2: CodeRShift,
	0xffe1: CodeLShift,
	0xffe4: CodeRCtrl,
	0xffe3: CodeLCtrl,
	0xffea: CodeRAlt,
	0xffe9: CodeLAlt,
	0xfe03: CodeRAlt, // ISO_Level3_Shift
	0xffe8: CodeRMeta,
	0xffe7: CodeLMeta,
	0xffeb: CodeLSuper,
	0xffec: CodeRSuper,
	0xff7e: CodeMode,
	0xff20: CodeCompose,

	0xff6a: CodeHelp,
	0xff61: CodePrint,
	0xff15: CodeSysReq,
	0xff6b: CodeBreak,
	0xff67: CodeMenu,
	0x1008ff2a: CodePower, // XF86PowerOff
	0x20ac:     CodeEuro,
	0xff65:     CodeUndo,
}

// Lookup translates a keysym to a legacy key code. Keysyms without a
// legacy equivalent map to CodeUnknown.
func Lookup(s Sym) Code {
	switch {
	case s >= 'a' && s <= 'z':
		return Code(s)
	case s >= 'A' && s <= 'Z':
		// The legacy enumeration only has lower case letters.
		return Code(s + 0x20)
	case s >= 0x20 && s <= 0x60:
		if s == '%' {
			return CodeUnknown
		}
		return Code(s)
	case s >= 0xa0 && s <= 0xff:
		return CodeWorld0 + Code(s-0xa0)
	case s >= 0xffbe && s <= 0xffcc:
		return CodeF1 + Code(s-0xffbe)
	}
	if c, ok := keysyms[s]; ok {
		return c
	}
	return CodeUnknown
}
