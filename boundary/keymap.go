package boundary

import (
	"github.com/gopet/pet4032/pia"
	"github.com/veandco/go-sdl2/sdl"
)

// cell is a (row, col) coordinate in the PET's 10x8 keyboard matrix.
type cell struct{ row, col int }

// keyMatrix maps host keycodes onto the PET 4032's keyboard matrix
// positions, following the same layout original_source's keycode table
// uses.
var keyMatrix = map[sdl.Keycode]cell{
	sdl.K_q: {2, 0}, sdl.K_e: {2, 1}, sdl.K_t: {2, 2}, sdl.K_u: {2, 3},
	sdl.K_o: {2, 4}, sdl.K_7: {2, 6}, sdl.K_9: {2, 7},

	sdl.K_w: {3, 0}, sdl.K_r: {3, 1}, sdl.K_y: {3, 2}, sdl.K_i: {3, 3},
	sdl.K_p: {3, 4}, sdl.K_8: {3, 6}, sdl.K_SLASH: {3, 7},

	sdl.K_a: {4, 0}, sdl.K_d: {4, 1}, sdl.K_g: {4, 2}, sdl.K_j: {4, 3},
	sdl.K_l: {4, 4}, sdl.K_4: {4, 6}, sdl.K_6: {4, 7},

	sdl.K_s: {5, 0}, sdl.K_f: {5, 1}, sdl.K_h: {5, 2}, sdl.K_k: {5, 3},
	sdl.K_SEMICOLON: {5, 4}, sdl.K_5: {5, 6}, sdl.K_KP_MULTIPLY: {5, 7},

	sdl.K_z: {6, 0}, sdl.K_c: {6, 1}, sdl.K_b: {6, 2}, sdl.K_m: {6, 3},
	sdl.K_RETURN: {6, 5}, sdl.K_1: {6, 6}, sdl.K_3: {6, 7},

	sdl.K_x: {7, 0}, sdl.K_v: {7, 1}, sdl.K_n: {7, 2}, sdl.K_COMMA: {7, 3},
	sdl.K_2: {7, 6}, sdl.K_EQUALS: {7, 7},

	sdl.K_MINUS: {8, 7}, sdl.K_0: {8, 6}, sdl.K_RSHIFT: {8, 5},
	sdl.K_RIGHTBRACKET: {8, 2}, sdl.K_LSHIFT: {8, 0},

	sdl.K_PERIOD: {9, 6}, sdl.K_SPACE: {9, 2}, sdl.K_LEFTBRACKET: {9, 1},

	sdl.K_BACKSPACE: {1, 7}, sdl.K_DOWN: {1, 6}, sdl.K_BACKSLASH: {1, 3},
	sdl.K_QUOTE: {1, 2}, sdl.K_BACKQUOTE: {1, 0},

	sdl.K_RIGHT: {0, 7}, sdl.K_HOME: {0, 6},
}

// SetKey applies a host key event to the PIA's keyboard matrix. Keys
// with no PET equivalent are silently ignored, matching
// keycode_to_pet_matrix's None case.
func SetKey(p *pia.PIA, key sdl.Keycode, pressed bool) {
	c, ok := keyMatrix[key]
	if !ok {
		return
	}
	p.SetKey(c.row, c.col, pressed)
}
