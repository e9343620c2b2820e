package engine

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind identifies one of the seven piece kinds. Its numeric value is also the
// Cell label the piece leaves in the field.
type Kind uint8

const (
	KindNone Kind = iota
	KindT
	KindJ
	KindL
	KindO
	KindS
	KindZ
	KindI
)

// Kinds lists every spawnable kind in catalog order.
var Kinds = []Kind{KindT, KindJ, KindL, KindO, KindS, KindZ, KindI}

var kindNames = [...]string{"", "T", "J", "L", "O", "S", "Z", "I"}

var kindColors = [...]color.RGBA{
	{},
	{0xa0, 0x00, 0xf0, 0xff},
	{0x00, 0x00, 0xf0, 0xff},
	{0xf0, 0xa0, 0x00, 0xff},
	{0xf0, 0xf0, 0x00, 0xff},
	{0x00, 0xf0, 0x00, 0xff},
	{0xf0, 0x00, 0x00, 0xff},
	{0x00, 0xf0, 0xf0, 0xff},
}

// Valid reports whether k is one of the seven spawnable kinds.
func (k Kind) Valid() bool {
	return k >= KindT && k <= KindI
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Color returns the display color for k. Invalid kinds are transparent.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return color.RGBA{}
	}
	return kindColors[k]
}

// ParseKind accepts a single letter from "TJLOSZI", case-insensitive.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("parse kind %q: %w", s, ErrUnknownKind)
}
