package wavexport

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Sample is a normalized floating point sample, nominally in [-1, 1].
// Values outside that range are accepted everywhere.
type Sample interface {
	~float32 | ~float64
}

// pcmLayout describes a signed integer target: the multiplier applied to a
// normalized sample, the representable range and the stored width.
type pcmLayout struct {
	scale  float64
	lo, hi int64
	size   int
}

const (
	scalePCMInt8  = 127.0
	scalePCMInt16 = 32767.0
	scalePCMInt32 = 2147483647.0
	// rounds to 2^63 as a float, so 1.0 saturates rather than hitting the maximum exactly.
	scalePCMInt64 = 9223372036854775807.0
)

func pcmLayoutFor(bitDepth uint16) (pcmLayout, bool) {
	switch bitDepth {
	case 8:
		return pcmLayout{scale: scalePCMInt8, lo: math.MinInt8, hi: math.MaxInt8, size: 1}, true
	case 16:
		return pcmLayout{scale: scalePCMInt16, lo: math.MinInt16, hi: math.MaxInt16, size: 2}, true
	case 32:
		return pcmLayout{scale: scalePCMInt32, lo: math.MinInt32, hi: math.MaxInt32, size: 4}, true
	case 64:
		return pcmLayout{scale: scalePCMInt64, lo: math.MinInt64, hi: math.MaxInt64, size: 8}, true
	default:
		return pcmLayout{}, false
	}
}

// quantize scales sample in its own float width, truncates toward zero and
// saturates to the layout range. NaN maps to 0.
func quantize[F Sample](sample F, layout pcmLayout) int64 {
	scaled := float64(F(sample * F(layout.scale)))

	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= float64(layout.hi):
		return layout.hi
	case scaled <= float64(layout.lo):
		return layout.lo
	}

	return int64(scaled)
}

// QuantizePCM converts one sample to a signed PCM integer of the given bit
// depth (8, 16, 32 or 64). The multiplier is the positive maximum, so
// -1.0 maps to -max rather than the type minimum.
func QuantizePCM[F Sample](sample F, bitDepth uint16) (int64, error) {
	layout, ok := pcmLayoutFor(bitDepth)
	if !ok {
		return 0, fmt.Errorf("%w: %d-bit %s", ErrInvalidSampleFormat, bitDepth, FormatPCM)
	}

	return quantize(sample, layout), nil
}

func appendPCM[F Sample](dst []byte, samples []F, layout pcmLayout) []byte {
	for _, s := range samples {
		v := quantize(s, layout)
		for i := 0; i < layout.size; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
	}

	return dst
}

func appendFloat32[F Sample](dst []byte, samples []F) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(s)))
	}

	return dst
}

func appendFloat64[F Sample](dst []byte, samples []F) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(s)))
	}

	return dst
}
