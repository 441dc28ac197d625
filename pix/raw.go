package pix

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/exp/mmap"

	"github.com/softrender/miptex/colors"
)

// Raw snapshot layout: a 12-byte header (magic, width, height as
// little-endian uint32) followed by W*H texels of three float32
// channels each, row-major. It is a memory dump for caching big HDR
// buffers between runs, not an interchange image format.

var rawMagic = [4]byte{'M', 'X', 'S', '1'}

// ErrBadRawHeader reports that a file is not a raw pixel snapshot.
var ErrBadRawHeader = errors.New("pix: invalid raw snapshot header")

const rawHeaderSize = 12

// SaveRaw writes the buffer to path as a raw snapshot.
func (m *Image) SaveRaw(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var hdr [rawHeaderSize]byte
	copy(hdr[0:4], rawMagic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(m.W))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(m.H))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	var texel [12]byte
	for _, c := range m.data {
		binary.LittleEndian.PutUint32(texel[0:4], math.Float32bits(float32(c.R)))
		binary.LittleEndian.PutUint32(texel[4:8], math.Float32bits(float32(c.G)))
		binary.LittleEndian.PutUint32(texel[8:12], math.Float32bits(float32(c.B)))
		if _, err := w.Write(texel[:]); err != nil {
			return err
		}
	}
	return w.Flush()
}

// OpenRaw memory-maps a raw snapshot and materializes it as an
// Image. Returns ErrBadRawHeader when the file does not start with a
// snapshot header.
func OpenRaw(path string) (*Image, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	read := func(offset int64, size int) ([]byte, error) {
		buf := make([]byte, size)
		_, err := reader.ReadAt(buf, offset)
		return buf, err
	}

	if reader.Len() < rawHeaderSize {
		return nil, ErrBadRawHeader
	}
	hdr, err := read(0, rawHeaderSize)
	if err != nil {
		return nil, err
	}
	if [4]byte(hdr[0:4]) != rawMagic {
		return nil, ErrBadRawHeader
	}

	w := int(binary.LittleEndian.Uint32(hdr[4:8]))
	h := int(binary.LittleEndian.Uint32(hdr[8:12]))
	want := rawHeaderSize + w*h*12
	if reader.Len() != want {
		return nil, fmt.Errorf("pix: raw snapshot %dx%d needs %d bytes, file has %d", w, h, want, reader.Len())
	}

	img := New(w, h)
	if w*h == 0 {
		return img, nil
	}

	payload, err := read(rawHeaderSize, w*h*12)
	if err != nil {
		return nil, err
	}
	for i := range img.data {
		off := i * 12
		img.data[i] = colors.Color3{
			R: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off : off+4]))),
			G: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+4 : off+8]))),
			B: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+8 : off+12]))),
		}
	}
	return img, nil
}
