package codec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// containerSignature is the fixed 11-byte signature prefixing a mixed
// output container, modelled on the PNG file signature but tagged
// "MIXPNG" to mark the mixed nature of the stream that follows.
var containerSignature = [11]byte{0x89, 'M', 'I', 'X', 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// ContainerHeaderLen is the total size in bytes of a mixed-output
// container header: signature + offset + width + height.
const ContainerHeaderLen = len(containerSignature) + 8 + 4 + 4

// ContainerHeader carries the metadata an image-codec split output needs
// to locate and decode its two back-to-back compressed streams, per
// spec.md §6. Byte-oriented codecs (gzip, bzip2, xz/lzma) never need this:
// concatenation of two self-delimited streams is itself a valid stream.
type ContainerHeader struct {
	// SecondStreamOffset is the byte offset, within the output, where the
	// second codec's compressed stream begins.
	SecondStreamOffset uint64
	// Width and Height are the original image's dimensions.
	Width, Height uint32
}

// WriteContainerHeader writes the fixed signature, SecondStreamOffset, and
// Width/Height to w in the order spec.md §6 lays out: 11-byte signature, an
// 8-byte big-endian offset, then two 4-byte big-endian dimensions.
func WriteContainerHeader(w io.Writer, h ContainerHeader) error {
	buf := make([]byte, ContainerHeaderLen)
	copy(buf, containerSignature[:])
	binary.BigEndian.PutUint64(buf[11:19], h.SecondStreamOffset)
	binary.BigEndian.PutUint32(buf[19:23], h.Width)
	binary.BigEndian.PutUint32(buf[23:27], h.Height)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("codec: write container header: %w", err)
	}
	return nil
}

// ParseContainerHeader reads and validates a mixed-output container header
// from the front of data, returning the header and the offset immediately
// following it (where the first codec's stream begins).
func ParseContainerHeader(data []byte) (ContainerHeader, int, error) {
	if len(data) < ContainerHeaderLen {
		return ContainerHeader{}, 0, fmt.Errorf("%w: %d bytes, need %d", ErrNotMixedContainer, len(data), ContainerHeaderLen)
	}
	for i, b := range containerSignature {
		if data[i] != b {
			return ContainerHeader{}, 0, ErrNotMixedContainer
		}
	}

	h := ContainerHeader{
		SecondStreamOffset: binary.BigEndian.Uint64(data[11:19]),
		Width:              binary.BigEndian.Uint32(data[19:23]),
		Height:             binary.BigEndian.Uint32(data[23:27]),
	}
	return h, ContainerHeaderLen, nil
}
