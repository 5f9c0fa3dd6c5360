package maze

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestEncodedSize(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{1, 1, 17}, // 6 bits fit in one byte with 2 bits padding
		{2, 2, 19}, // 4 cells pack into ceil(24/8)=3 bytes
		{4, 1, 19},
		{8, 3, 34}, // 144 bits = 18 bytes exactly
		{32, 32, 16 + 768},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			if got := EncodedSize(tc.w, tc.h); got != tc.want {
				t.Errorf("EncodedSize(%d, %d) = %d, expected %d", tc.w, tc.h, got, tc.want)
			}

			var buf bytes.Buffer
			if err := Encode(&buf, NewGrid(tc.w, tc.h)); err != nil {
				t.Fatalf("Encode() failed: %v", err)
			}
			if buf.Len() != tc.want {
				t.Errorf("Encoded %dx%d grid to %d bytes, expected %d", tc.w, tc.h, buf.Len(), tc.want)
			}
		})
	}
}

func TestPackUnpackAllValues(t *testing.T) {
	// Every legal 6-bit packed value must survive the pack/unpack pair.
	for v := byte(0); v < 64; v++ {
		got := packCell(unpackCell(v)) & cellMask
		if got != v {
			t.Errorf("packCell(unpackCell(%#02x)) = %#02x", v, got)
		}
	}
}

func TestRoundTripAllCellValues(t *testing.T) {
	// An 8x8 grid covers all 64 packed values once.
	g := NewGrid(8, 8)
	for i := range g.Cells {
		g.Cells[i] = unpackCell(byte(i))
	}

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !decoded.Equal(g) {
		t.Error("Round trip should reproduce every cell bit-for-bit")
	}
}

func TestRoundTripGeneratedMaze(t *testing.T) {
	g := NewGrid(9, 7)
	Generate(C(0, 0), g, rand.New(rand.NewSource(77)))
	g.At(C(6, 8)).Role = RoleEnd

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	// The Start role lives outside the 6-bit stream window, so the start
	// cell comes back RoleNormal; everything else must match exactly.
	want := g.Clone()
	want.At(C(0, 0)).Role = RoleNormal
	if !decoded.Equal(want) {
		t.Error("Decoded maze differs from encoded maze")
	}
	if decoded.At(C(6, 8)).Role != RoleEnd {
		t.Error("End role should survive the round trip")
	}
}

func TestStartRoleNotPersisted(t *testing.T) {
	g := NewGrid(2, 2)
	g.At(C(0, 0)).Role = RoleStart

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got := decoded.At(C(0, 0)).Role; got != RoleNormal {
		t.Errorf("Start role decoded as %v; the wire format only carries 6 bits per cell", got)
	}
}

func TestExactBytes(t *testing.T) {
	// 2x2 grid with hand-picked packed values 0x0F, 0x1F, 0x2F, 0x3F in
	// row-major order, LSB-first within the rolling buffer.
	g := NewGrid(2, 2)
	g.Cells[0] = unpackCell(0x0F)
	g.Cells[1] = unpackCell(0x1F)
	g.Cells[2] = unpackCell(0x2F)
	g.Cells[3] = unpackCell(0x3F)

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	want := []byte{
		2, 0, 0, 0, 0, 0, 0, 0, // width
		2, 0, 0, 0, 0, 0, 0, 0, // height
		0xCF, 0xF7, 0xFE, // packed cells
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Encoded bytes = %x, expected %x", buf.Bytes(), want)
	}
}

func TestPartialBytePadding(t *testing.T) {
	// One cell, all walls + visited + End = 0x3F: high 2 bits of the
	// single packed byte must be zero.
	g := NewGrid(1, 1)
	g.Cells[0] = unpackCell(0x3F)

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	data := buf.Bytes()
	if len(data) != 17 {
		t.Fatalf("Expected 17 bytes, got %d", len(data))
	}
	if data[16] != 0x3F {
		t.Errorf("Packed byte = %#02x, expected 0x3f", data[16])
	}
}

func TestTruncatedInput(t *testing.T) {
	g := NewGrid(6, 5)
	Generate(C(0, 0), g, rand.New(rand.NewSource(3)))

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	full := buf.Bytes()

	tests := []struct {
		name string
		data []byte
	}{
		{"one packed byte short", full[:len(full)-1]},
		{"half the packed section", full[:headerSize+5]},
		{"header only", full[:headerSize]},
		{"truncated header", full[:7]},
		{"empty stream", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tc.data))
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("Decode() error = %v, expected ErrUnexpectedEOF", err)
			}
		})
	}
}

func TestDecodeBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h uint64
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"absurd area", 1 << 40, 1 << 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			header := make([]byte, headerSize)
			for i := 0; i < 8; i++ {
				header[i] = byte(tc.w >> (8 * i))
				header[8+i] = byte(tc.h >> (8 * i))
			}
			_, err := Decode(bytes.NewReader(header))
			if !errors.Is(err, ErrBadDimensions) {
				t.Errorf("Decode() error = %v, expected ErrBadDimensions", err)
			}
		})
	}
}

func TestDecodeIgnoresPaddingBits(t *testing.T) {
	// The unused high bits of the final partial byte must be ignored on
	// decode, not validated.
	g := NewGrid(1, 1)
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	data := buf.Bytes()
	data[16] |= 0xC0 // Dirty the two padding bits

	decoded, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !decoded.Equal(g) {
		t.Error("Padding bits should not affect the decoded grid")
	}
}
