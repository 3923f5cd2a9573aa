package wavexport

import (
	"encoding/binary"

	"github.com/go-audio/riff"
)

// BuildHeader returns the 44 byte RIFF/WAVE prefix describing d.
//
// Layout, all integers little endian:
//
//	 0 "RIFF"         4 RIFF size (data length + 36)
//	 8 "WAVEfmt "    16 fmt size (16)
//	20 format tag    22 channels
//	24 sample rate   28 byte rate
//	32 block align   34 bits per sample
//	36 "data"        40 data length
func BuildHeader(d Descriptor) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return appendHeader(make([]byte, 0, HeaderSize), d), nil
}

func appendHeader(dst []byte, d Descriptor) []byte {
	chunk := d.FmtChunk()

	dst = append(dst, riff.RiffID[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, d.RIFFSize())
	dst = append(dst, riff.WavFormatID[:]...)
	dst = append(dst, riff.FmtID[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, fmtChunkSize)
	dst = binary.LittleEndian.AppendUint16(dst, chunk.FormatTag)
	dst = binary.LittleEndian.AppendUint16(dst, chunk.NumChannels)
	dst = binary.LittleEndian.AppendUint32(dst, chunk.SampleRate)
	dst = binary.LittleEndian.AppendUint32(dst, chunk.AvgBytesPerSec)
	dst = binary.LittleEndian.AppendUint16(dst, chunk.BlockAlign)
	dst = binary.LittleEndian.AppendUint16(dst, chunk.BitsPerSample)
	dst = append(dst, riff.DataFormatID[:]...)

	return binary.LittleEndian.AppendUint32(dst, d.DataLen())
}
