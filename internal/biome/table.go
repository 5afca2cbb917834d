// Package biome supplies the 45x45 rainfall/temperature lookup table the
// coloring pipeline indexes into (spec §4.5 step 7) and the fixed RGB band
// baked into the palette for each biome letter (spec §3). Both are
// transcribed verbatim from original_source/src/terrain.rs (the `biomes`
// grid) and original_source/src/color.rs (the `build_color_data` biome
// RGBs), not invented.
package biome

// Size is the table's side length; both axes (rainfall t, temperature r)
// range over 0..Size-1 per spec §4.5 step 7.
const Size = 45

// RGB is a plain 8-bit-per-channel color.
type RGB struct{ R, G, B uint8 }

// Letters lists the eleven biome codes spec §3 names, in the order they
// appear in original_source/src/color.rs's T/G/B/D/S/F/R/W/E/O/I constants.
var Letters = []byte{'T', 'G', 'B', 'D', 'S', 'F', 'R', 'W', 'E', 'O', 'I'}

// Offset returns the palette-index offset (from lowest_land) baked in for
// a biome letter, matching original_source/src/color.rs's
// `'X' as usize - 64` (ASCII '@' is 64).
func Offset(letter byte) int {
	return int(letter) - int('@')
}

// Colors gives each letter's fixed RGB, transcribed from
// original_source/src/color.rs's build_color_data (lines 141-151).
var Colors = map[byte]RGB{
	'T': {210, 210, 210},
	'G': {250, 215, 165},
	'B': {105, 155, 120},
	'D': {220, 195, 175},
	'S': {225, 155, 100},
	'F': {155, 215, 170},
	'R': {170, 195, 200},
	'W': {185, 150, 160},
	'E': {130, 190, 25},
	'O': {110, 160, 170},
	'I': {255, 255, 255},
}

// Table is the fixed biome[t][r] letter grid, t = rainfall index, r =
// temperature index, both 0..44, transcribed verbatim from
// original_source/src/terrain.rs's `biomes` static (lines 8-47).
var Table [Size][Size]byte

var rows = [Size]string{
	"IIITTTTTGGGGGGGGDDDDDDDDDDDDDDDDDDDDDDDDDDDDD",
	"IIITTTTTGGGGGGGGDDDDGGDSDDSDDDDDDDDDDDDDDDDDD",
	"IITTTTTTTTTBGGGGGGGGGGGSSSSSSDDDDDDDDDDDDDDDD",
	"IITTTTTTTTBBBBBBGGGGGGGSSSSSSSSSWWWWWWWDDDDDD",
	"IITTTTTTTTBBBBBBGGGGGGGSSSSSSSSSSWWWWWWWWWWDD",
	"IIITTTTTTTBBBBBBFGGGGGGSSSSSSSSSSSWWWWWWWWWWW",
	"IIIITTTTTTBBBBBBFFGGGGGSSSSSSSSSSSWWWWWWWWWWW",
	"IIIIITTTTTBBBBBBFFFFGGGSSSSSSSSSSSWWWWWWWWWWW",
	"IIIIITTTTTBBBBBBBFFFFGGGSSSSSSSSSSSWWWWWWWWWW",
	"IIIIIITTTTBBBBBBBFFFFFFGGGSSSSSSSSWWWWWWWWWWW",
	"IIIIIIITTTBBBBBBBFFFFFFFFGGGSSSSSSWWWWWWWWWWW",
	"IIIIIIIITTBBBBBBBFFFFFFFFFFGGSSSSSWWWWWWWWWWW",
	"IIIIIIIIITBBBBBBBFFFFFFFFFFFFFSSSSWWWWWWWWWWW",
	"IIIIIIIIIITBBBBBBFFFFFFFFFFFFFFFSSEEEWWWWWWWW",
	"IIIIIIIIIITBBBBBBFFFFFFFFFFFFFFFFFFEEEEEEWWWW",
	"IIIIIIIIIIIBBBBBBFFFFFFFFFFFFFFFFFFEEEEEEEEWW",
	"IIIIIIIIIIIBBBBBBRFFFFFFFFFFFFFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIBBBBBBRFFFFFFFFFFFFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIIBBBBBRRRFFFFFFFFFFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIIIIBBBRRRRRFFFFFFFFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIIIIIIBRRRRRRRFFFFFFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIIIIIIRRRRRRRRRRFFFFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIIIIIIIRRRRRRRRRRRRFFFFFEEEEEEEEEE",
	"IIIIIIIIIIIIIIIIIIIRRRRRRRRRRRRRFRREEEEEEEEEE",
	"IIIIIIIIIIIIIIIIIIIIIRRRRRRRRRRRRRRRREEEEEEEE",
	"IIIIIIIIIIIIIIIIIIIIIIIRRRRRRRRRRRRRROOEEEEEE",
	"IIIIIIIIIIIIIIIIIIIIIIIIRRRRRRRRRRRROOOOOEEEE",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIRRRRRRRRRROOOOOOEEE",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIRRRRRRRRROOOOOOOEE",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIRRRRRRRROOOOOOOEE",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIRRRRRRROOOOOOOOE",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIRRRRROOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIRROOOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIROOOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIROOOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOO",
	"IIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIIOOOOOOO",
}

func init() {
	for t, row := range rows {
		for r := 0; r < Size; r++ {
			Table[t][r] = row[r]
		}
	}
}
