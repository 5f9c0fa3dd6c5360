package maze

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Binary maze format, little-endian:
//
//	offset 0:  u64 width
//	offset 8:  u64 height
//	offset 16: ceil(width*height*6/8) packed bytes
//
// Each cell occupies exactly 6 bits, row-major, least-significant bits
// filled first. The final partial byte is zero-padded high.

const (
	headerSize = 16
	cellBits   = 6
	cellMask   = 1<<cellBits - 1
)

// Packed cell bit layout. The Start flag conceptually sits at bit 6, but
// the stream's 6-bit cell width is the authoritative contract, so Start is
// never persisted; the decoder still tests it to keep the documented
// End-then-Start tie-break intact.
const (
	packTop     = 1 << 0
	packBottom  = 1 << 1
	packLeft    = 1 << 2
	packRight   = 1 << 3
	packVisited = 1 << 4
	packEnd     = 1 << 5
	packStart   = 1 << 6
)

// maxCells bounds decoded grids so a corrupt header cannot make Decode
// allocate unbounded memory.
const maxCells = 1 << 26

var (
	// ErrUnexpectedEOF reports a byte stream that ended before all
	// width*height cells were produced.
	ErrUnexpectedEOF = errors.New("maze: unexpected end of data")

	// ErrBadDimensions reports a header with zero or implausibly large
	// dimensions.
	ErrBadDimensions = errors.New("maze: invalid grid dimensions in header")
)

// EncodedSize returns the exact byte length of an encoded w×h grid.
func EncodedSize(w, h int) int {
	return headerSize + (w*h*cellBits+7)/8
}

// packCell folds a cell into its packed bit representation.
func packCell(c Cell) byte {
	var v byte
	if c.Top {
		v |= packTop
	}
	if c.Bottom {
		v |= packBottom
	}
	if c.Left {
		v |= packLeft
	}
	if c.Right {
		v |= packRight
	}
	if c.Visited {
		v |= packVisited
	}
	switch c.Role {
	case RoleEnd:
		v |= packEnd
	case RoleStart:
		v |= packStart
	}
	return v
}

// unpackCell is the inverse of packCell. The two high bits of the
// conceptual byte are not validated; if both role flags were somehow set,
// End wins.
func unpackCell(v byte) Cell {
	c := Cell{
		Top:     v&packTop != 0,
		Bottom:  v&packBottom != 0,
		Left:    v&packLeft != 0,
		Right:   v&packRight != 0,
		Visited: v&packVisited != 0,
	}
	switch {
	case v&packEnd != 0:
		c.Role = RoleEnd
	case v&packStart != 0:
		c.Role = RoleStart
	default:
		c.Role = RoleNormal
	}
	return c
}

// Encode writes the grid to w in the binary maze format. The grid is not
// modified. Write failures are surfaced to the caller unchanged apart from
// context wrapping.
func Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)

	var header [headerSize]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(g.W))
	binary.LittleEndian.PutUint64(header[8:16], uint64(g.H))
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("maze: write header: %w", err)
	}

	// Rolling bit buffer, LSB-first. Full bytes are flushed as they fill;
	// a final partial byte goes out zero-padded.
	var bits uint32
	var nbits uint
	for i := range g.Cells {
		bits |= uint32(packCell(g.Cells[i])&cellMask) << nbits
		nbits += cellBits
		for nbits >= 8 {
			if err := bw.WriteByte(byte(bits)); err != nil {
				return fmt.Errorf("maze: write cells: %w", err)
			}
			bits >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 {
		if err := bw.WriteByte(byte(bits)); err != nil {
			return fmt.Errorf("maze: write cells: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("maze: write cells: %w", err)
	}
	return nil
}

// Decode reads a grid from r using the mirror bit-buffer math of Encode.
// It returns ErrUnexpectedEOF if the stream ends before width*height cells
// have been produced. A failed decode never touches any existing grid; the
// caller only swaps in the returned one on success.
func Decode(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)

	var header [headerSize]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("maze: read header: %w", err)
	}
	w := binary.LittleEndian.Uint64(header[0:8])
	h := binary.LittleEndian.Uint64(header[8:16])
	if w == 0 || h == 0 || w > maxCells || h > maxCells || w*h > maxCells {
		return nil, ErrBadDimensions
	}

	g := NewGrid(int(w), int(h))

	var bits uint32
	var nbits uint
	for i := range g.Cells {
		// Refill whenever fewer than 6 valid bits remain.
		for nbits < cellBits {
			b, err := br.ReadByte()
			if err != nil {
				if err == io.EOF {
					return nil, ErrUnexpectedEOF
				}
				return nil, fmt.Errorf("maze: read cells: %w", err)
			}
			bits |= uint32(b) << nbits
			nbits += 8
		}
		g.Cells[i] = unpackCell(byte(bits & cellMask))
		bits >>= cellBits
		nbits -= cellBits
	}

	return g, nil
}
