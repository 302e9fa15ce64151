// Package hexview renders byte and word buffers as offset-labeled hex dumps
// for inspecting intermediate computation buffers.
package hexview

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/brevis-network/bbp-sdk/common/utils"
)

const (
	// RowSize is the number of elements rendered per row.
	RowSize = 16
	// GroupSize is the number of elements between double-space separators.
	GroupSize = 4
)

// View is a read-only projection of a buffer of 8-bit or 16-bit elements.
// Start is the absolute position of Buffer[0] and only affects the offset
// labels. The buffer is never copied or modified.
type View[T ~uint8 | ~uint16] struct {
	Lower  bool
	Start  uint64
	Buffer []T
}

// Bytes returns a view over 8-bit elements.
func Bytes(buf []byte, start uint64, lower bool) View[byte] {
	return View[byte]{Lower: lower, Start: start, Buffer: buf}
}

// Words returns a view over 16-bit elements.
func Words(buf []uint16, start uint64, lower bool) View[uint16] {
	return View[uint16]{Lower: lower, Start: start, Buffer: buf}
}

// Uint16s packs b into 16-bit words using order. An odd trailing byte is
// zero-extended into the last word as if followed by a 0x00 byte.
func Uint16s(b []byte, order binary.ByteOrder) []uint16 {
	words := make([]uint16, (len(b)+1)/2)
	for i := range words {
		if 2*i+1 < len(b) {
			words[i] = order.Uint16(b[2*i:])
		} else {
			words[i] = order.Uint16([]byte{b[2*i], 0})
		}
	}
	return words
}

// digits returns the number of hex digits of one element.
func digits[T ~uint8 | ~uint16]() int {
	if uint64(^T(0)) > 0xff {
		return 4
	}
	return 2
}

func (v View[T]) verb() string {
	if v.Lower {
		return "%0*x"
	}
	return "%0*X"
}

// element formats a single element zero-padded to the element width.
func (v View[T]) element(el T) string {
	return fmt.Sprintf(v.verb(), digits[T](), uint64(el))
}

// offset returns the label of element i. Labels saturate at MaxUint64.
func (v View[T]) offset(i int) uint64 {
	sum, carry := bits.Add64(v.Start, uint64(i), 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// offsetWidth is the column width of the largest offset label.
func (v View[T]) offsetWidth() int {
	return utils.DigitLength(v.offset(len(v.Buffer)))
}

// Lines renders one newline-terminated row per RowSize chunk of the buffer.
// An empty buffer yields no rows.
func (v View[T]) Lines() []string {
	if len(v.Buffer) == 0 {
		return nil
	}
	width := v.offsetWidth()
	lines := make([]string, 0, (len(v.Buffer)+RowSize-1)/RowSize)
	for i := 0; i < len(v.Buffer); i += RowSize {
		chunk := v.Buffer[i:min(i+RowSize, len(v.Buffer))]
		offset := v.offset(i)

		var b strings.Builder
		b.WriteString(strconv.FormatUint(offset, 10))
		b.WriteString(strings.Repeat(" ", max(width-utils.DigitLength(offset), 0)))
		b.WriteString("│ ")
		for j, el := range chunk {
			if j > 0 {
				b.WriteByte(' ')
				if j%GroupSize == 0 {
					b.WriteByte(' ')
				}
			}
			b.WriteString(v.element(el))
		}
		b.WriteByte('\n')
		lines = append(lines, b.String())
	}
	return lines
}

// WriteTo writes all rows to w.
func (v View[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range v.Lines() {
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write hex view err: %w", err)
		}
	}
	return total, nil
}

func (v View[T]) String() string {
	return strings.Join(v.Lines(), "")
}
