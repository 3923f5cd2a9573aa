package wavexport

import "github.com/go-audio/audio"

// DuplicateToStereo returns a buffer twice as long where every sample is
// repeated into an adjacent left/right pair. No mixing is performed.
func DuplicateToStereo[F Sample](samples []F) []F {
	out := make([]F, 0, 2*len(samples))
	for _, s := range samples {
		out = append(out, s, s)
	}

	return out
}

// NarrowToFloat32 casts every sample to float32. Precision may be lost;
// the range is not checked.
func NarrowToFloat32(samples []float64) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = float32(s)
	}

	return out
}

// WidenToFloat64 casts every sample to float64.
func WidenToFloat64(samples []float32) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}

	return out
}

// StereoBuffer projects a mono go-audio buffer onto two interleaved channels.
func StereoBuffer(buf *audio.Float32Buffer) (*audio.Float32Buffer, error) {
	if buf == nil {
		return nil, errNilBuffer
	}

	if buf.Format == nil || buf.Format.NumChannels != 1 {
		return nil, ErrNotMono
	}

	return &audio.Float32Buffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: buf.Format.SampleRate},
		Data:           DuplicateToStereo(buf.Data),
		SourceBitDepth: buf.SourceBitDepth,
	}, nil
}

// WidenBuffer returns a float64 copy of buf.
func WidenBuffer(buf *audio.Float32Buffer) *audio.FloatBuffer {
	if buf == nil {
		return nil
	}

	return &audio.FloatBuffer{Format: cloneFormat(buf.Format), Data: WidenToFloat64(buf.Data)}
}

// NarrowBuffer returns a float32 copy of buf.
func NarrowBuffer(buf *audio.FloatBuffer) *audio.Float32Buffer {
	if buf == nil {
		return nil
	}

	return &audio.Float32Buffer{Format: cloneFormat(buf.Format), Data: NarrowToFloat32(buf.Data)}
}

func cloneFormat(f *audio.Format) *audio.Format {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}
