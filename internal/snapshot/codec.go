package snapshot

import (
	"bytes"
	"fmt"
)

// Delimiter separates cell flags in a snapshot file.
const Delimiter = ';'

// Encode writes cells in row-major order as "1"/"0" flags joined by ';'.
// Any non-zero cell is written as "1".
func Encode(cells []uint8) []byte {
	if len(cells) == 0 {
		return nil
	}
	buf := make([]byte, 0, 2*len(cells)-1)
	for i, c := range cells {
		if i > 0 {
			buf = append(buf, Delimiter)
		}
		if c != 0 {
			buf = append(buf, '1')
		} else {
			buf = append(buf, '0')
		}
	}
	return buf
}

// Decode parses a snapshot into want cells. A "1" token is alive and any
// other token is dead. Surrounding whitespace of the whole file and of each
// token is ignored. A token count other than want is ErrMalformedData.
func Decode(data []byte, want int) ([]uint8, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		if want == 0 {
			return []uint8{}, nil
		}
		return nil, fmt.Errorf("%w: empty snapshot, expected %d cells", ErrMalformedData, want)
	}
	tokens := bytes.Split(data, []byte{Delimiter})
	if len(tokens) != want {
		return nil, fmt.Errorf("%w: %d cells, expected %d", ErrMalformedData, len(tokens), want)
	}
	cells := make([]uint8, want)
	for i, tok := range tokens {
		if string(bytes.TrimSpace(tok)) == "1" {
			cells[i] = 1
		}
	}
	return cells, nil
}
