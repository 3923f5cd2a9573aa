package wavexport

import (
	"errors"
	"fmt"
)

// AudioFormat is the WAVE format tag stored in the fmt chunk.
type AudioFormat uint16

const (
	// FormatPCM stores linearly quantized signed integers.
	FormatPCM AudioFormat = 1
	// FormatIEEEFloat stores IEEE 754 floats as-is or narrowed.
	FormatIEEEFloat AudioFormat = 3
)

func (f AudioFormat) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	default:
		return fmt.Sprintf("AudioFormat(%d)", uint16(f))
	}
}

var (
	// ErrInvalidSampleFormat indicates an unsupported format tag and bit depth pair.
	ErrInvalidSampleFormat = errors.New("invalid bits per sample")
	// ErrInvalidChannelCount indicates a descriptor without channels.
	ErrInvalidChannelCount = errors.New("invalid channel count")
	// ErrDataTooLarge indicates a data chunk that doesn't fit the 32-bit RIFF size fields.
	ErrDataTooLarge = errors.New("data chunk too large for RIFF")
	// ErrSampleCountMismatch indicates a buffer whose length disagrees with frames × channels.
	ErrSampleCountMismatch = errors.New("sample count doesn't match frame count")
	// ErrAlreadyWritten is returned when an Encoder is used for a second write.
	ErrAlreadyWritten = errors.New("encoder already wrote its file")
	// ErrBufferFormatMismatch is returned when a buffer's format disagrees with the encoder's.
	ErrBufferFormatMismatch = errors.New("buffer format doesn't match descriptor")
	// ErrNotMono is returned when a stereo projection is requested for a non-mono buffer.
	ErrNotMono = errors.New("buffer is not mono")

	errNilBuffer = errors.New("can't encode a nil buffer")
	errNilWriter = errors.New("can't write to a nil writer")
)
