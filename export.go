package wavexport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultFilePerm fs.FileMode = 0o644

// Exporter writes encoded WAVE files to disk.
//
// With Atomic set the file is written to a temporary sibling, synced and
// renamed over the destination, so a failed write never leaves a partial
// file at path. Otherwise the destination is created or truncated in place.
type Exporter struct {
	Atomic bool
	// Perm is the mode of newly created files, 0o644 when zero.
	Perm fs.FileMode
}

// Export32 writes a float32 buffer to path.
func (x Exporter) Export32(path string, d Descriptor, samples []float32) error {
	return export(x, path, d, samples)
}

// Export64 writes a float64 buffer to path.
func (x Exporter) Export64(path string, d Descriptor, samples []float64) error {
	return export(x, path, d, samples)
}

// WriteFileFloat32 encodes a float32 buffer and writes it to path.
// The parent directory must exist. Invalid parameters are reported before
// the file is opened.
func WriteFileFloat32(path string, samples []float32, sampleRate uint32, channels, bitsPerSample uint16, frames uint32, format AudioFormat) error {
	return Exporter{}.Export32(path, Descriptor{
		SampleRate:  sampleRate,
		NumChans:    channels,
		BitDepth:    bitsPerSample,
		Frames:      frames,
		AudioFormat: format,
	}, samples)
}

// WriteFileFloat64 encodes a float64 buffer and writes it to path.
func WriteFileFloat64(path string, samples []float64, sampleRate uint32, channels, bitsPerSample uint16, frames uint32, format AudioFormat) error {
	return Exporter{}.Export64(path, Descriptor{
		SampleRate:  sampleRate,
		NumChans:    channels,
		BitDepth:    bitsPerSample,
		Frames:      frames,
		AudioFormat: format,
	}, samples)
}

func export[F Sample](x Exporter, path string, d Descriptor, samples []F) error {
	data, err := Marshal(d, samples)
	if err != nil {
		return err
	}

	if x.Atomic {
		return x.writeAtomic(path, data)
	}

	return x.write(path, data)
}

func (x Exporter) perm() fs.FileMode {
	if x.Perm == 0 {
		return defaultFilePerm
	}

	return x.Perm
}

func (x Exporter) write(path string, data []byte) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, x.perm())
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", path, cerr))
		}
	}()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func (x Exporter) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}

	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)

		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("failed to write %s: %w", tmpName, err))
	}

	if err := tmp.Chmod(x.perm()); err != nil {
		return fail(fmt.Errorf("failed to chmod %s: %w", tmpName, err))
	}

	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("failed to sync %s: %w", tmpName, err))
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to rename %s to %s: %w", tmpName, path, err)
	}

	return nil
}
