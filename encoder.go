package wavexport

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
)

// AppendSamples encodes samples for the (format, bitDepth) target and
// appends them to dst in sample order. Unsupported targets fail with
// ErrInvalidSampleFormat and leave dst untouched.
func AppendSamples[F Sample](dst []byte, samples []F, format AudioFormat, bitDepth uint16) ([]byte, error) {
	switch format {
	case FormatPCM:
		if layout, ok := pcmLayoutFor(bitDepth); ok {
			return appendPCM(dst, samples, layout), nil
		}
	case FormatIEEEFloat:
		switch bitDepth {
		case 32:
			return appendFloat32(dst, samples), nil
		case 64:
			return appendFloat64(dst, samples), nil
		}
	}

	return dst, fmt.Errorf("%w: %d-bit %s", ErrInvalidSampleFormat, bitDepth, format)
}

// Marshal returns the complete WAVE file for samples described by d.
// The buffer must hold exactly d.Frames × d.NumChans interleaved samples.
func Marshal[F Sample](d Descriptor, samples []F) ([]byte, error) {
	err := d.Validate()
	if err != nil {
		return nil, err
	}

	if len(samples) != d.SampleCount() {
		return nil, fmt.Errorf("%w: %d samples for %d frames x %d channels",
			ErrSampleCountMismatch, len(samples), d.Frames, d.NumChans)
	}

	out := appendHeader(make([]byte, 0, d.FileSize()), d)

	return AppendSamples(out, samples, d.AudioFormat, d.BitDepth)
}

// Encoder writes a single WAVE file to an io.Writer.
// The whole file is assembled before the first byte reaches the writer.
type Encoder struct {
	w io.Writer

	Descriptor

	WrittenBytes int
	wrote        bool
}

// NewEncoder creates an encoder for one export described by d.
func NewEncoder(w io.Writer, d Descriptor) *Encoder {
	return &Encoder{w: w, Descriptor: d}
}

// BufferDescriptor builds the descriptor for exporting buf at the given
// bit depth and format.
func BufferDescriptor(buf *audio.Float32Buffer, bitDepth uint16, format AudioFormat) Descriptor {
	if buf == nil || buf.Format == nil {
		return Descriptor{BitDepth: bitDepth, AudioFormat: format}
	}

	return bufferDescriptor(buf.Format, len(buf.Data), bitDepth, format)
}

// FloatBufferDescriptor is the float64 counterpart of BufferDescriptor.
func FloatBufferDescriptor(buf *audio.FloatBuffer, bitDepth uint16, format AudioFormat) Descriptor {
	if buf == nil || buf.Format == nil {
		return Descriptor{BitDepth: bitDepth, AudioFormat: format}
	}

	return bufferDescriptor(buf.Format, len(buf.Data), bitDepth, format)
}

func bufferDescriptor(f *audio.Format, samples int, bitDepth uint16, format AudioFormat) Descriptor {
	d := Descriptor{
		SampleRate:  uint32(f.SampleRate),
		NumChans:    uint16(f.NumChannels),
		BitDepth:    bitDepth,
		AudioFormat: format,
	}
	if f.NumChannels > 0 {
		d.Frames = uint32(samples / f.NumChannels)
	}

	return d
}

// WriteFloat32 encodes a float32 buffer.
func (e *Encoder) WriteFloat32(samples []float32) error {
	return encodeTo(e, samples)
}

// WriteFloat64 encodes a float64 buffer.
func (e *Encoder) WriteFloat64(samples []float64) error {
	return encodeTo(e, samples)
}

// WriteBuffer encodes a go-audio float32 buffer. When the buffer carries a
// format it must match the encoder's sample rate and channel count.
func (e *Encoder) WriteBuffer(buf *audio.Float32Buffer) error {
	if buf == nil {
		return errNilBuffer
	}

	if err := e.checkFormat(buf.Format); err != nil {
		return err
	}

	return encodeTo(e, buf.Data)
}

// WriteFloatBuffer encodes a go-audio float64 buffer.
func (e *Encoder) WriteFloatBuffer(buf *audio.FloatBuffer) error {
	if buf == nil {
		return errNilBuffer
	}

	if err := e.checkFormat(buf.Format); err != nil {
		return err
	}

	return encodeTo(e, buf.Data)
}

func (e *Encoder) checkFormat(f *audio.Format) error {
	if f == nil {
		return nil
	}

	if f.NumChannels != int(e.NumChans) || f.SampleRate != int(e.SampleRate) {
		return fmt.Errorf("%w: buffer %d Hz x %d ch, encoder %d Hz x %d ch",
			ErrBufferFormatMismatch, f.SampleRate, f.NumChannels, e.SampleRate, e.NumChans)
	}

	return nil
}

func encodeTo[F Sample](e *Encoder, samples []F) error {
	if e.w == nil {
		return errNilWriter
	}

	if e.wrote {
		return ErrAlreadyWritten
	}

	data, err := Marshal(e.Descriptor, samples)
	if err != nil {
		return err
	}

	e.wrote = true

	n, err := e.w.Write(data)
	e.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write wav data: %w", err)
	}

	return nil
}
