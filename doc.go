// Package wavexport encodes in-memory floating point audio into canonical
// RIFF/WAVE files.
//
// The package writes a single fmt chunk and a single data chunk. Supported
// sample layouts are PCM integer (8/16/32/64-bit) and IEEE float
// (32/64-bit), from either float32 or float64 source buffers.
//
// A small conversion layer prepares buffers before encoding:
//
//   - DuplicateToStereo projects a mono buffer onto two interleaved channels
//   - NarrowToFloat32 and WidenToFloat64 change the float width
//   - ApplyVolume and ApplyClip implement the two trivial effects
//
// WriteFileFloat32 and WriteFileFloat64 are the file entry points. Parameters
// are validated before the destination is opened, so an unsupported format
// never leaves a file behind.
package wavexport
