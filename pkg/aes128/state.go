package aes128

// state is a block viewed as a 4x4 grid indexed [row][column].
// Byte i of a block lives at row i%4, column i/4.
type state [4][4]byte

func loadState(src []byte) state {
	var s state
	for i := 0; i < BlockSize; i++ {
		s[i%4][i/4] = src[i]
	}
	return s
}

func (s *state) store(dst []byte) {
	for i := 0; i < BlockSize; i++ {
		dst[i] = s[i%4][i/4]
	}
}

func (s *state) addRoundKey(k *state) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] ^= k[r][c]
		}
	}
}

func (s *state) subBytes(box *[256]byte) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = box[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := 0; c < 4; c++ {
			s[r][c] = row[(c+r)%4]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		row := s[r]
		for c := 0; c < 4; c++ {
			s[r][(c+r)%4] = row[c]
		}
	}
}

// mixColumns replaces every column with its product by m in GF(2⁸).
func (s *state) mixColumns(m *[4][4]byte) {
	for c := 0; c < 4; c++ {
		col := [4]byte{s[0][c], s[1][c], s[2][c], s[3][c]}
		for r := 0; r < 4; r++ {
			s[r][c] = Multiply(m[r][0], col[0]) ^
				Multiply(m[r][1], col[1]) ^
				Multiply(m[r][2], col[2]) ^
				Multiply(m[r][3], col[3])
		}
	}
}
