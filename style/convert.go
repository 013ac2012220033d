package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"image/color"
	"strconv"
	"strings"
)

// Color interprets a resolved property value as a color. It understands a
// small set of named colors and hex notation ("#rrggbb"). Unknown values
// yield nil.
//
// TODO use a standard palette, e.g. the X11/CSS color lists.
func (p Property) Color() color.Color {
	v := strings.ToLower(strings.TrimSpace(string(p)))
	switch v {
	case "", "default":
		return nil
	case "black":
		return color.Black
	case "white":
		return color.White
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	if strings.HasPrefix(v, "#") && len(v) == 7 {
		rgb, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return nil
		}
		return color.RGBA{
			R: uint8(rgb >> 16),
			G: uint8(rgb >> 8),
			B: uint8(rgb),
			A: 0xff,
		}
	}
	return nil
}
