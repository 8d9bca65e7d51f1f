package penman

// Built-in stroke font table. Each glyph is an advance width followed by
// its outline program; glyphs are drawn on a 64x64 grid with the baseline
// at y=0 and ink extending to negative y.
var defaultOutlines = []float64{
	// 0x0 '\0'
	36,
	opMove, 0, 0,
	opLine, 0, -42,
	opLine, 24, -42,
	opLine, 24, 0,
	opLine, 0, 0,
	opEnd,
	// 0x20 ' '
	16,
	opEnd,
	// 0x21 '!'
	16,
	opMove, 2, -42,
	opLine, 2, -14,
	opMove, 2, -4,
	opCurve, 1, -4, 0, -3, 0, -2,
	opCurve, 0, -1, 1, 0, 2, 0,
	opCurve, 3, 0, 4, -1, 4, -2,
	opCurve, 4, -3, 3, -4, 2, -4,
	opEnd,
	// 0x22 '"'
	28,
	opMove, 0, -42,
	opLine, 0, -28,
	opMove, 16, -42,
	opLine, 16, -28,
	opEnd,
	// 0x23 '#'
	42,
	opMove, 16, -50,
	opLine, 2, 14,
	opMove, 28, -50,
	opLine, 14, 14,
	opMove, 2, -24,
	opLine, 30, -24,
	opMove, 0, -12,
	opLine, 28, -12,
	opEnd,
	// 0x24 '$'
	40,
	opMove, 10, -50,
	opLine, 10, 8,
	opMove, 18, -50,
	opLine, 18, 8,
	opMove, 28, -36,
	opCurve, 24, -42, 18, -42, 14, -42,
	opCurve, 10, -42, 0, -42, 0, -34,
	opCurve, 0, -25, 8, -24, 14, -22,
	opCurve, 20, -20, 28, -19, 28, -9,
	opCurve, 28, 0, 18, 0, 14, 0,
	opCurve, 10, 0, 4, 0, 0, -6,
	opEnd,
	// 0x25 '%'
	48,
	opMove, 36, -42,
	opLine, 0, 0,
	opMove, 10, -42,
	opCurve, 12, -41, 14, -40, 14, -36,
	opCurve, 14, -30, 11, -28, 6, -28,
	opCurve, 2, -28, 0, -30, 0, -34,
	opCurve, 0, -39, 3, -42, 8, -42,
	opLine, 10, -42,
	opCurve, 18, -37, 28, -37, 36, -42,
	opMove, 28, -14,
	opCurve, 24, -14, 22, -11, 22, -6,
	opCurve, 22, -2, 24, 0, 28, 0,
	opCurve, 33, 0, 36, -2, 36, -8,
	opCurve, 36, -12, 34, -14, 30, -14,
	opLine, 28, -14,
	opEnd,
	// 0x26 '&'
	52,
	opMove, 40, -24,
	opCurve, 40, -27, 39, -28, 37, -28,
	opCurve, 29, -28, 32, 0, 12, 0,
	opCurve, 0, 0, 0, -8, 0, -10,
	opCurve, 0, -24, 22, -20, 22, -34,
	opCurve, 22, -45, 10, -45, 10, -34,
	opCurve, 10, -27, 25, 0, 36, 0,
	opCurve, 39, 0, 40, -1, 40, -4,
	opEnd,
	// 0x27 '''
	16,
	opMove, 2, -38,
	opCurve, -1, -38, -1, -42, 2, -42,
	opCurve, 6, -42, 5, -33, 0, -30,
	opEnd,
	// 0x28 '('
	26,
	opMove, 14, -50,
	opCurve, -5, -32, -5, -5, 14, 14,
	opEnd,
	// 0x29 ')'
	26,
	opMove, 0, -50,
	opCurve, 19, -34, 19, -2, 0, 14,
	opEnd,
	// 0x2a '*'
	32,
	opMove, 10, -30,
	opLine, 10, -6,
	opMove, 0, -24,
	opLine, 20, -12,
	opMove, 20, -24,
	opLine, 0, -12,
	opEnd,
	// 0x2b '+'
	48,
	opMove, 18, -36,
	opLine, 18, 0,
	opMove, 0, -18,
	opLine, 36, -18,
	opEnd,
	// 0x2c ','
	16,
	opMove, 4, -2,
	opCurve, 4, 1, 0, 1, 0, -2,
	opCurve, 0, -5, 4, -5, 4, -2,
	opCurve, 4, 4, 2, 6, 0, 8,
	opEnd,
	// 0x2d '-'
	48,
	opMove, 0, -18,
	opLine, 36, -18,
	opEnd,
	// 0x2e '.'
	16,
	opMove, 2, -4,
	opCurve, -1, -4, -1, 0, 2, 0,
	opCurve, 5, 0, 5, -4, 2, -4,
	opEnd,
	// 0x2f '/'
	48,
	opMove, 36, -50,
	opLine, 0, 14,
	opEnd,
	// 0x30 '0'
	40,
	opMove, 14, -42,
	opCurve, 9, -42, 0, -42, 0, -21,
	opCurve, 0, 0, 9, 0, 14, 0,
	opCurve, 19, 0, 28, 0, 28, -21,
	opCurve, 28, -42, 19, -42, 14, -42,
	opEnd,
	// 0x31 '1'
	40,
	opMove, 7, -34,
	opCurve, 11, -35, 15, -38, 17, -42,
	opLine, 17, 0,
	opEnd,
	// 0x32 '2'
	40,
	opMove, 2, -32,
	opCurve, 2, -34, 2, -42, 14, -42,
	opCurve, 26, -42, 26, -34, 26, -32,
	opCurve, 26, -30, 25, -25, 10, -10,
	opLine, 0, 0,
	opLine, 28, 0,
	opEnd,
	// 0x33 '3'
	40,
	opMove, 4, -42,
	opLine, 26, -42,
	opLine, 14, -26,
	opCurve, 21, -26, 28, -26, 28, -14,
	opCurve, 28, 0, 17, 0, 13, 0,
	opCurve, 8, 0, 3, -1, 0, -8,
	opEnd,
	// 0x34 '4'
	40,
	opMove, 20, -42,
	opLine, 0, -14,
	opLine, 30, -14,
	opMove, 20, -42,
	opLine, 20, 0,
	opEnd,
	// 0x35 '5'
	40,
	opMove, 24, -42,
	opLine, 4, -42,
	opLine, 2, -24,
	opCurve, 5, -27, 10, -28, 13, -28,
	opCurve, 16, -28, 28, -28, 28, -14,
	opCurve, 28, 0, 16, 0, 13, 0,
	opCurve, 10, 0, 3, 0, 0, -8,
	opEnd,
	// 0x36 '6'
	40,
	opMove, 24, -36,
	opCurve, 22, -41, 19, -42, 14, -42,
	opCurve, 9, -42, 0, -41, 0, -19,
	opCurve, 0, -1, 9, 0, 13, 0,
	opCurve, 18, 0, 26, -3, 26, -13,
	opCurve, 26, -18, 23, -26, 13, -26,
	opCurve, 10, -26, 1, -24, 0, -14,
	opEnd,
	// 0x37 '7'
	40,
	opMove, 28, -42,
	opLine, 8, 0,
	opMove, 0, -42,
	opLine, 28, -42,
	opEnd,
	// 0x38 '8'
	40,
	opMove, 14, -42,
	opCurve, 5, -42, 2, -40, 2, -34,
	opCurve, 2, -18, 28, -32, 28, -11,
	opCurve, 28, 0, 18, 0, 14, 0,
	opCurve, 10, 0, 0, 0, 0, -11,
	opCurve, 0, -32, 26, -18, 26, -34,
	opCurve, 26, -40, 23, -42, 14, -42,
	opEnd,
	// 0x39 '9'
	40,
	opMove, 26, -28,
	opCurve, 25, -16, 13, -16, 13, -16,
	opCurve, 8, -16, 0, -19, 0, -29,
	opCurve, 0, -34, 3, -42, 13, -42,
	opCurve, 24, -42, 26, -32, 26, -23,
	opCurve, 26, -14, 24, 0, 12, 0,
	opCurve, 7, 0, 4, -2, 2, -6,
	opEnd,
	// 0x3a ':'
	16,
	opMove, 2, -28,
	opCurve, -1, -28, -1, -24, 2, -24,
	opCurve, 5, -24, 5, -28, 2, -28,
	opMove, 2, -4,
	opCurve, -1, -4, -1, 0, 2, 0,
	opCurve, 5, 0, 5, -4, 2, -4,
	opEnd,
	// 0x3b ';'
	16,
	opMove, 2, -28,
	opCurve, -1, -28, -1, -24, 2, -24,
	opCurve, 5, -24, 5, -28, 2, -28,
	opMove, 4, -2,
	opCurve, 4, 1, 0, 1, 0, -2,
	opCurve, 0, -5, 4, -5, 4, -2,
	opCurve, 4, 3, 2, 6, 0, 8,
	opEnd,
	// 0x3c '<'
	44,
	opMove, 32, -36,
	opLine, 0, -18,
	opLine, 32, 0,
	opEnd,
	// 0x3d '='
	48,
	opMove, 0, -24,
	opLine, 36, -24,
	opMove, 0, -12,
	opLine, 36, -12,
	opEnd,
	// 0x3e '>'
	44,
	opMove, 0, -36,
	opLine, 32, -18,
	opLine, 0, 0,
	opEnd,
	// 0x3f '?'
	36,
	opMove, 0, -32,
	opCurve, 0, -34, 0, -42, 12, -42,
	opCurve, 24, -42, 24, -34, 24, -32,
	opCurve, 24, -29, 24, -24, 12, -20,
	opLine, 12, -14,
	opMove, 12, -4,
	opCurve, 9, -4, 9, 0, 12, 0,
	opCurve, 15, 0, 15, -4, 12, -4,
	opEnd,
	// 0x40 '@'
	54,
	opMove, 30, -26,
	opCurve, 28, -31, 24, -32, 21, -32,
	opCurve, 10, -32, 10, -23, 10, -19,
	opCurve, 10, -13, 11, -10, 19, -10,
	opCurve, 30, -10, 28, -21, 30, -32,
	opCurve, 27, -10, 30, -10, 34, -10,
	opCurve, 41, -10, 42, -19, 42, -22,
	opCurve, 42, -34, 34, -42, 21, -42,
	opCurve, 9, -42, 0, -34, 0, -21,
	opCurve, 0, -9, 8, 0, 21, 0,
	opCurve, 30, 0, 34, -3, 36, -6,
	opEnd,
	// 0x41 'A'
	44,
	opMove, 16, -42,
	opLine, 0, 0,
	opMove, 16, -42,
	opLine, 32, 0,
	opMove, 6, -14,
	opLine, 26, -14,
	opEnd,
	// 0x42 'B'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 18, -42,
	opCurve, 32, -42, 32, -22, 18, -22,
	opMove, 0, -22,
	opLine, 18, -22,
	opCurve, 32, -22, 32, 0, 18, 0,
	opLine, 0, 0,
	opEnd,
	// 0x43 'C'
	42,
	opMove, 30, -32,
	opCurve, 26, -42, 21, -42, 16, -42,
	opCurve, 2, -42, 0, -29, 0, -21,
	opCurve, 0, -13, 2, 0, 16, 0,
	opCurve, 21, 0, 26, 0, 30, -10,
	opEnd,
	// 0x44 'D'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 14, -42,
	opCurve, 33, -42, 33, 0, 14, 0,
	opLine, 0, 0,
	opEnd,
	// 0x45 'E'
	38,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 26, -42,
	opMove, 0, -22,
	opLine, 16, -22,
	opMove, 0, 0,
	opLine, 26, 0,
	opEnd,
	// 0x46 'F'
	38,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 26, -42,
	opMove, 0, -22,
	opLine, 16, -22,
	opEnd,
	// 0x47 'G'
	42,
	opMove, 30, -32,
	opCurve, 26, -42, 21, -42, 16, -42,
	opCurve, 2, -42, 0, -29, 0, -21,
	opCurve, 0, -13, 2, 0, 16, 0,
	opCurve, 28, 0, 30, -7, 30, -16,
	opMove, 20, -16,
	opLine, 30, -16,
	opEnd,
	// 0x48 'H'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 28, -42,
	opLine, 28, 0,
	opMove, 0, -22,
	opLine, 28, -22,
	opEnd,
	// 0x49 'I'
	12,
	opMove, 0, -42,
	opLine, 0, 0,
	opEnd,
	// 0x4a 'J'
	32,
	opMove, 20, -42,
	opLine, 20, -10,
	opCurve, 20, 3, 0, 3, 0, -10,
	opLine, 0, -14,
	opEnd,
	// 0x4b 'K'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 28, -42,
	opLine, 0, -14,
	opMove, 10, -24,
	opLine, 28, 0,
	opEnd,
	// 0x4c 'L'
	36,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, 0,
	opLine, 24, 0,
	opEnd,
	// 0x4d 'M'
	44,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 16, 0,
	opMove, 32, -42,
	opLine, 16, 0,
	opMove, 32, -42,
	opLine, 32, 0,
	opEnd,
	// 0x4e 'N'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 28, 0,
	opMove, 28, -42,
	opLine, 28, 0,
	opEnd,
	// 0x4f 'O'
	44,
	opMove, 16, -42,
	opCurve, 2, -42, 0, -29, 0, -21,
	opCurve, 0, -13, 2, 0, 16, 0,
	opCurve, 30, 0, 32, -13, 32, -21,
	opCurve, 32, -29, 30, -42, 16, -42,
	opEnd,
	// 0x50 'P'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 18, -42,
	opCurve, 32, -42, 32, -20, 18, -20,
	opLine, 0, -20,
	opEnd,
	// 0x51 'Q'
	44,
	opMove, 16, -42,
	opCurve, 2, -42, 0, -29, 0, -21,
	opCurve, 0, -13, 2, 0, 16, 0,
	opCurve, 30, 0, 32, -13, 32, -21,
	opCurve, 32, -29, 30, -42, 16, -42,
	opMove, 18, -8,
	opLine, 30, 4,
	opEnd,
	// 0x52 'R'
	40,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 18, -42,
	opCurve, 32, -42, 31, -22, 18, -22,
	opLine, 0, -22,
	opMove, 14, -22,
	opLine, 28, 0,
	opEnd,
	// 0x53 'S'
	40,
	opMove, 28, -36,
	opCurve, 25, -41, 21, -42, 14, -42,
	opCurve, 10, -42, 0, -42, 0, -34,
	opCurve, 0, -17, 28, -28, 28, -9,
	opCurve, 28, 0, 19, 0, 14, 0,
	opCurve, 7, 0, 3, -1, 0, -6,
	opEnd,
	// 0x54 'T'
	40,
	opMove, 14, -42,
	opLine, 14, 0,
	opMove, 0, -42,
	opLine, 28, -42,
	opEnd,
	// 0x55 'U'
	40,
	opMove, 0, -42,
	opLine, 0, -12,
	opCurve, 0, 4, 28, 4, 28, -12,
	opLine, 28, -42,
	opEnd,
	// 0x56 'V'
	44,
	opMove, 0, -42,
	opLine, 16, 0,
	opMove, 32, -42,
	opLine, 16, 0,
	opEnd,
	// 0x57 'W'
	52,
	opMove, 0, -42,
	opLine, 10, 0,
	opMove, 20, -42,
	opLine, 10, 0,
	opMove, 20, -42,
	opLine, 30, 0,
	opMove, 40, -42,
	opLine, 30, 0,
	opEnd,
	// 0x58 'X'
	40,
	opMove, 0, -42,
	opLine, 28, 0,
	opMove, 28, -42,
	opLine, 0, 0,
	opEnd,
	// 0x59 'Y'
	44,
	opMove, 0, -42,
	opLine, 16, -22,
	opLine, 16, 0,
	opMove, 32, -42,
	opLine, 16, -22,
	opEnd,
	// 0x5a 'Z'
	40,
	opMove, 28, -42,
	opLine, 0, 0,
	opMove, 0, -42,
	opLine, 28, -42,
	opMove, 0, 0,
	opLine, 28, 0,
	opEnd,
	// 0x5b '['
	26,
	opMove, 14, -44,
	opLine, 0, -44,
	opLine, 0, 0,
	opLine, 14, 0,
	opEnd,
	// 0x5c '\'
	48,
	opMove, 0, -50,
	opLine, 36, 14,
	opEnd,
	// 0x5d ']'
	26,
	opMove, 0, -44,
	opLine, 14, -44,
	opLine, 14, 0,
	opLine, 0, 0,
	opEnd,
	// 0x5e '^'
	44,
	opMove, 16, -46,
	opLine, 0, -18,
	opMove, 16, -46,
	opLine, 32, -18,
	opEnd,
	// 0x5f '_'
	48,
	opMove, 0, 0,
	opLine, 36, 0,
	opEnd,
	// 0x60 '`'
	16,
	opMove, 4, -42,
	opCurve, 2, -40, 0, -39, 0, -32,
	opCurve, 0, -31, 1, -30, 2, -30,
	opCurve, 5, -30, 5, -34, 2, -34,
	opEnd,
	// 0x61 'a'
	36,
	opMove, 24, -28,
	opLine, 24, 0,
	opMove, 24, -22,
	opCurve, 21, -27, 18, -28, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 18, 0, 21, -1, 24, -6,
	opEnd,
	// 0x62 'b'
	36,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -22,
	opCurve, 3, -26, 6, -28, 11, -28,
	opCurve, 22, -28, 24, -19, 24, -14,
	opCurve, 24, -9, 22, 0, 11, 0,
	opCurve, 6, 0, 3, -2, 0, -6,
	opEnd,
	// 0x63 'c'
	36,
	opMove, 24, -22,
	opCurve, 21, -26, 18, -28, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 18, 0, 21, -2, 24, -6,
	opEnd,
	// 0x64 'd'
	36,
	opMove, 24, -42,
	opLine, 24, 0,
	opMove, 24, -22,
	opCurve, 21, -26, 18, -28, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 18, 0, 21, -2, 24, -6,
	opEnd,
	// 0x65 'e'
	36,
	opMove, 0, -16,
	opLine, 24, -16,
	opCurve, 24, -20, 24, -28, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 18, 0, 21, -2, 24, -6,
	opEnd,
	// 0x66 'f'
	28,
	opMove, 16, -42,
	opCurve, 8, -42, 6, -40, 6, -34,
	opLine, 6, 0,
	opMove, 0, -28,
	opLine, 14, -28,
	opEnd,
	// 0x67 'g'
	36,
	opMove, 24, -28,
	opLine, 24, 4,
	opCurve, 23, 14, 16, 14, 13, 14,
	opCurve, 10, 14, 8, 14, 6, 12,
	opMove, 24, -22,
	opCurve, 21, -26, 18, -28, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 18, 0, 21, -2, 24, -6,
	opEnd,
	// 0x68 'h'
	34,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 0, -20,
	opCurve, 8, -32, 22, -31, 22, -20,
	opLine, 22, 0,
	opEnd,
	// 0x69 'i'
	16,
	opMove, 0, -42,
	opCurve, 0, -39, 4, -39, 4, -42,
	opCurve, 4, -45, 0, -45, 0, -42,
	opMove, 2, -28,
	opLine, 2, 0,
	opEnd,
	// 0x6a 'j'
	16,
	opMove, 0, -42,
	opCurve, 0, -39, 4, -39, 4, -42,
	opCurve, 4, -45, 0, -45, 0, -42,
	opMove, 2, -28,
	opLine, 2, 6,
	opCurve, 2, 13, -1, 14, -8, 14,
	opEnd,
	// 0x6b 'k'
	34,
	opMove, 0, -42,
	opLine, 0, 0,
	opMove, 20, -28,
	opLine, 0, -8,
	opMove, 8, -16,
	opLine, 22, 0,
	opEnd,
	// 0x6c 'l'
	12,
	opMove, 0, -42,
	opLine, 0, 0,
	opEnd,
	// 0x6d 'm'
	56,
	opMove, 0, -28,
	opLine, 0, 0,
	opMove, 0, -20,
	opCurve, 5, -29, 22, -33, 22, -20,
	opLine, 22, 0,
	opMove, 22, -20,
	opCurve, 27, -29, 44, -33, 44, -20,
	opLine, 44, 0,
	opEnd,
	// 0x6e 'n'
	34,
	opMove, 0, -28,
	opLine, 0, 0,
	opMove, 0, -20,
	opCurve, 4, -28, 22, -34, 22, -20,
	opLine, 22, 0,
	opEnd,
	// 0x6f 'o'
	38,
	opMove, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 24, 0, 26, -9, 26, -14,
	opCurve, 26, -19, 24, -28, 13, -28,
	opEnd,
	// 0x70 'p'
	36,
	opMove, 0, -28,
	opLine, 0, 14,
	opMove, 0, -22,
	opCurve, 3, -26, 6, -28, 11, -28,
	opCurve, 22, -28, 24, -19, 24, -14,
	opCurve, 24, -9, 22, 0, 11, 0,
	opCurve, 6, 0, 3, -2, 0, -6,
	opEnd,
	// 0x71 'q'
	36,
	opMove, 24, -28,
	opLine, 24, 14,
	opMove, 24, -22,
	opCurve, 21, -26, 18, -28, 13, -28,
	opCurve, 2, -28, 0, -19, 0, -14,
	opCurve, 0, -9, 2, 0, 13, 0,
	opCurve, 18, 0, 21, -2, 24, -6,
	opEnd,
	// 0x72 'r'
	28,
	opMove, 0, -28,
	opLine, 0, 0,
	opMove, 0, -16,
	opCurve, 2, -27, 7, -28, 16, -28,
	opEnd,
	// 0x73 's'
	34,
	opMove, 22, -22,
	opCurve, 22, -27, 16, -28, 11, -28,
	opCurve, 4, -28, 0, -26, 0, -22,
	opCurve, 0, -11, 22, -20, 22, -7,
	opCurve, 22, 0, 17, 0, 11, 0,
	opCurve, 6, 0, 0, -1, 0, -6,
	opEnd,
	// 0x74 't'
	28,
	opMove, 6, -42,
	opLine, 6, -8,
	opCurve, 6, -2, 8, 0, 16, 0,
	opMove, 0, -28,
	opLine, 14, -28,
	opEnd,
	// 0x75 'u'
	34,
	opMove, 0, -28,
	opLine, 0, -8,
	opCurve, 0, 6, 18, 0, 22, -8,
	opMove, 22, -28,
	opLine, 22, 0,
	opEnd,
	// 0x76 'v'
	36,
	opMove, 0, -28,
	opLine, 12, 0,
	opMove, 24, -28,
	opLine, 12, 0,
	opEnd,
	// 0x77 'w'
	44,
	opMove, 0, -28,
	opLine, 8, 0,
	opMove, 16, -28,
	opLine, 8, 0,
	opMove, 16, -28,
	opLine, 24, 0,
	opMove, 32, -28,
	opLine, 24, 0,
	opEnd,
	// 0x78 'x'
	34,
	opMove, 0, -28,
	opLine, 22, 0,
	opMove, 22, -28,
	opLine, 0, 0,
	opEnd,
	// 0x79 'y'
	36,
	opMove, 0, -28,
	opLine, 12, 0,
	opMove, 24, -28,
	opLine, 12, 0,
	opCurve, 6, 13, 0, 14, -2, 14,
	opEnd,
	// 0x7a 'z'
	34,
	opMove, 22, -28,
	opLine, 0, 0,
	opMove, 0, -28,
	opLine, 22, -28,
	opMove, 0, 0,
	opLine, 22, 0,
	opEnd,
	// 0x7b '{'
	28,
	opMove, 16, -44,
	opCurve, 10, -44, 6, -42, 6, -36,
	opLine, 6, -24,
	opLine, 0, -24,
	opLine, 6, -24,
	opLine, 6, -8,
	opCurve, 6, -2, 10, 0, 16, 0,
	opEnd,
	// 0x7c '|'
	12,
	opMove, 0, -50,
	opLine, 0, 14,
	opEnd,
	// 0x7d '}'
	28,
	opMove, 0, -44,
	opCurve, 6, -44, 10, -42, 10, -36,
	opLine, 10, -24,
	opLine, 16, -24,
	opLine, 10, -24,
	opLine, 10, -8,
	opCurve, 10, -2, 6, 0, 0, 0,
	opEnd,
	// 0x7e '~'
	48,
	opMove, 0, -14,
	opCurve, 1, -21, 4, -24, 8, -24,
	opCurve, 18, -24, 18, -12, 28, -12,
	opCurve, 32, -12, 35, -15, 36, -22,
	opEnd,
}

var defaultOffsets = []uint32{
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	17, 19, 58, 72, 98, 157, 240, 294,
	313, 325, 337, 357, 371, 397, 405, 424,
	432, 465, 480, 512, 544, 561, 600, 647,
	661, 708, 755, 791, 834, 845, 859, 870,
	916, 991, 1011, 1048, 1081, 1105, 1131, 1151,
	1190, 1210, 1218, 1236, 1256, 1270, 1296, 1316,
	1349, 1373, 1412, 1442, 1482, 1496, 1514, 1528,
	1554, 1568, 1585, 1605, 1619, 1627, 1641, 1655,
	1663, 1689, 1728, 1767, 1800, 1839, 1875, 1896,
	1949, 1970, 1995, 2027, 2047, 2055, 2089, 2110,
	2143, 2182, 2221, 2239, 2279, 2300, 2321, 2335,
	2361, 2375, 2396, 2416, 2447, 2455, 2486, 0,
}

