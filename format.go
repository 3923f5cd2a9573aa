package wavexport

import (
	"fmt"
	"math"
	"time"
)

const (
	// HeaderSize is the length of the RIFF, fmt and data chunk headers.
	HeaderSize = 44

	fmtChunkSize    = 16
	// riffSizeOffset is what the RIFF size field omits: the RIFF id and the field itself.
	riffSizeOffset  = 8
	riffHeaderExtra = HeaderSize - riffSizeOffset
)

// Descriptor holds the parameters of a single export. It is built by the
// caller, consumed once and never mutated by the encoder.
type Descriptor struct {
	SampleRate  uint32
	NumChans    uint16
	BitDepth    uint16
	// Frames is the number of samples per channel.
	Frames      uint32
	AudioFormat AudioFormat
}

// FmtChunk is the 16 byte fmt chunk body derived from a Descriptor.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// supportedBitDepth reports if the (format, depth) pair can be encoded.
func supportedBitDepth(format AudioFormat, bitDepth uint16) bool {
	switch format {
	case FormatPCM:
		switch bitDepth {
		case 8, 16, 32, 64:
			return true
		}
	case FormatIEEEFloat:
		switch bitDepth {
		case 32, 64:
			return true
		}
	}

	return false
}

// Validate checks the descriptor before anything gets written.
func (d Descriptor) Validate() error {
	if !supportedBitDepth(d.AudioFormat, d.BitDepth) {
		return fmt.Errorf("%w: %d-bit %s", ErrInvalidSampleFormat, d.BitDepth, d.AudioFormat)
	}

	blockAlign := uint64(d.NumChans) * uint64(d.BitDepth/8)
	if d.NumChans == 0 || blockAlign > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, d.NumChans)
	}

	if d.dataLen() > math.MaxUint32-riffHeaderExtra {
		return fmt.Errorf("%w: %d bytes", ErrDataTooLarge, d.dataLen())
	}

	// the byte rate field is 32 bits too
	if uint64(d.SampleRate)*blockAlign > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate of %d Hz x %d bytes", ErrDataTooLarge, d.SampleRate, blockAlign)
	}

	return nil
}

// BytesPerSample returns the width of a single quantized sample.
func (d Descriptor) BytesPerSample() int {
	return int(d.BitDepth) / 8
}

// BlockAlign returns the bytes used by one frame across all channels.
func (d Descriptor) BlockAlign() uint16 {
	return d.NumChans * (d.BitDepth / 8)
}

// ByteRate returns the number of data bytes per second of audio.
func (d Descriptor) ByteRate() uint32 {
	return d.SampleRate * uint32(d.BlockAlign())
}

// SampleCount returns the number of interleaved samples the data chunk holds.
func (d Descriptor) SampleCount() int {
	return int(d.Frames) * int(d.NumChans)
}

func (d Descriptor) dataLen() uint64 {
	return uint64(d.Frames) * uint64(d.NumChans) * uint64(d.BitDepth/8)
}

// DataLen returns the size of the data chunk payload.
func (d Descriptor) DataLen() uint32 {
	return uint32(d.dataLen())
}

// RIFFSize returns the value of the RIFF chunk size field, the file size minus 8.
func (d Descriptor) RIFFSize() uint32 {
	return d.DataLen() + riffHeaderExtra
}

// FileSize returns the number of bytes of the encoded file.
func (d Descriptor) FileSize() int {
	return HeaderSize + int(d.DataLen())
}

// FmtChunk returns the fmt chunk fields. Byte rate and block align are
// always derived, never taken from the caller.
func (d Descriptor) FmtChunk() *FmtChunk {
	return &FmtChunk{
		FormatTag:      uint16(d.AudioFormat),
		NumChannels:    d.NumChans,
		SampleRate:     d.SampleRate,
		AvgBytesPerSec: d.ByteRate(),
		BlockAlign:     d.BlockAlign(),
		BitsPerSample:  d.BitDepth,
	}
}

// Duration returns the playing time of the described audio.
func (d Descriptor) Duration() time.Duration {
	if d.SampleRate == 0 {
		return 0
	}

	return time.Duration(d.Frames) * time.Second / time.Duration(d.SampleRate)
}
