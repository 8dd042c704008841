// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements the legacy keyboard enumeration, the keysym
// translation table and the per-key state table exposed to the hosted
// application.
package key

// Code is a legacy key code. The values are part of the binary
// interface and must not change.
type Code int32

// Mod is a set of legacy modifier flags.
type Mod int32

// State is the state of a key during an event.
type State uint8

// Table is the key-state array indexed by Code. A non-zero entry
// means the key is held down.
type Table [Last]uint8

const (
	// Released is the state of a key that has been released.
	Released State = iota
	// Pressed is the state of a pressed key.
	Pressed
)

const (
	CodeUnknown      Code = 0
	CodeBackspace    Code = 8
	CodeTab          Code = 9
	CodeClear        Code = 12
	CodeReturn       Code = 13
	CodePause        Code = 19
	CodeEscape       Code = 27
	CodeSpace        Code = 32
	CodeExclaim      Code = 33
	CodeQuoteDbl     Code = 34
	CodeHash         Code = 35
	CodeDollar       Code = 36
	CodeAmpersand    Code = 38
	CodeQuote        Code = 39
	CodeLeftParen    Code = 40
	CodeRightParen   Code = 41
	CodeAsterisk     Code = 42
	CodePlus         Code = 43
	CodeComma        Code = 44
	CodeMinus        Code = 45
	CodePeriod       Code = 46
	CodeSlash        Code = 47
	Code0            Code = 48
	Code9            Code = 57
	CodeColon        Code = 58
	CodeSemicolon    Code = 59
	CodeLess         Code = 60
	CodeEquals       Code = 61
	CodeGreater      Code = 62
	CodeQuestion     Code = 63
	CodeAt           Code = 64
	CodeLeftBracket  Code = 91
	CodeBackslash    Code = 92
	CodeRightBracket Code = 93
	CodeCaret        Code = 94
	CodeUnderscore   Code = 95
	CodeBackquote    Code = 96
	CodeA            Code = 97
	CodeZ            Code = 122
	CodeDelete       Code = 127

	// CodeWorld0 is the first of 96 international keys, one per
	// Latin-1 code point from 0xa0 to 0xff.
	CodeWorld0  Code = 160
	CodeWorld95 Code = 255

	CodeKP0        Code = 256
	CodeKP9        Code = 265
	CodeKPPeriod   Code = 266
	CodeKPDivide   Code = 267
	CodeKPMultiply Code = 268
	CodeKPMinus    Code = 269
	CodeKPPlus     Code = 270
	CodeKPEnter    Code = 271
	CodeKPEquals   Code = 272

	CodeUp       Code = 273
	CodeDown     Code = 274
	CodeRight    Code = 275
	CodeLeft     Code = 276
	CodeInsert   Code = 277
	CodeHome     Code = 278
	CodeEnd      Code = 279
	CodePageUp   Code = 280
	CodePageDown Code = 281

	CodeF1  Code = 282
	CodeF15 Code = 296

	CodeNumLock    Code = 300
	CodeCapsLock   Code = 301
	CodeScrollLock Code = 302
	CodeRShift     Code = 303
	CodeLShift     Code = 304
	CodeRCtrl      Code = 305
	CodeLCtrl      Code = 306
	CodeRAlt       Code = 307
	CodeLAlt       Code = 308
	CodeRMeta      Code = 309
	CodeLMeta      Code = 310
	CodeLSuper     Code = 311
	CodeRSuper     Code = 312
	CodeMode       Code = 313
	CodeCompose    Code = 314

	CodeHelp   Code = 315
	CodePrint  Code = 316
	CodeSysReq Code = 317
	CodeBreak  Code = 318
	CodeMenu   Code = 319
	CodePower  Code = 320
	CodeEuro   Code = 321
	CodeUndo   Code = 322
)

// Last is the number of legacy key codes, and the length of the
// key-state array.
const Last = 323

const (
	ModNone   Mod = 0x0000
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModLMeta  Mod = 0x0400
	ModRMeta  Mod = 0x0800
	ModNum    Mod = 0x1000
	ModCaps   Mod = 0x2000
	ModMode   Mod = 0x4000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModMeta  = ModLMeta | ModRMeta
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Mod) Contain(m2 Mod) bool {
	return m&m2 == m2
}

// Valid reports whether c indexes the key-state array.
func (c Code) Valid() bool {
	return c >= 0 && c < Last
}

// Set records the state of c. Codes outside the table are ignored.
func (t *Table) Set(c Code, s State) {
	if !c.Valid() {
		return
	}
	t[c] = uint8(s)
}

// Down reports whether c is held down.
func (t *Table) Down(c Code) bool {
	return c.Valid() && t[c] != 0
}

func (s State) String() string {
	switch s {
	case Released:
		return "Released"
	case Pressed:
		return "Pressed"
	default:
		panic("invalid State")
	}
}
