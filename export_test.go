package wavexport

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileFloat32(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := []float32{0, 0.5, -0.5, 1}

	err := WriteFileFloat32(path, samples, 44100, 2, 16, 2, FormatPCM)
	if err != nil {
		t.Fatalf("WriteFileFloat32 failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want, err := Marshal(Descriptor{SampleRate: 44100, NumChans: 2, BitDepth: 16, Frames: 2, AudioFormat: FormatPCM}, samples)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(got, want) {
		t.Fatal("file content differs from Marshal output")
	}
}

func TestWriteFileFloat64AllTargets(t *testing.T) {
	dir := t.TempDir()
	samples := []float64{0.1, -0.9, 0.3}

	for _, tt := range []struct {
		format   AudioFormat
		bitDepth uint16
	}{
		{FormatPCM, 8}, {FormatPCM, 16}, {FormatPCM, 32}, {FormatPCM, 64},
		{FormatIEEEFloat, 32}, {FormatIEEEFloat, 64},
	} {
		path := filepath.Join(dir, fmt.Sprintf("%d-%d.wav", tt.format, tt.bitDepth))

		err := WriteFileFloat64(path, samples, 8000, 1, tt.bitDepth, 3, tt.format)
		if err != nil {
			t.Fatalf("WriteFileFloat64(%s, %d) failed: %v", tt.format, tt.bitDepth, err)
		}

		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat output: %v", err)
		}

		if want := int64(HeaderSize + 3*int(tt.bitDepth)/8); fi.Size() != want {
			t.Fatalf("%s %d-bit size=%d, want %d", tt.format, tt.bitDepth, fi.Size(), want)
		}
	}
}

func TestWriteFileRejectsUnsupportedWithoutCreatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pcm24.wav")

	err := WriteFileFloat32(path, []float32{0, 0}, 44100, 1, 24, 2, FormatPCM)
	if !errors.Is(err, ErrInvalidSampleFormat) {
		t.Fatalf("err=%v, want %v", err, ErrInvalidSampleFormat)
	}

	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no file, stat err=%v", err)
	}
}

func TestWriteFileLeavesExistingFileOnInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.wav")

	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteFileFloat64(path, []float64{0}, 44100, 1, 16, 1, FormatIEEEFloat)
	if !errors.Is(err, ErrInvalidSampleFormat) {
		t.Fatalf("err=%v, want %v", err, ErrInvalidSampleFormat)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "previous" {
		t.Fatalf("existing file changed to %q", got)
	}
}

func TestWriteFileTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.wav")

	if err := os.WriteFile(path, bytes.Repeat([]byte{0xAA}, 1024), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileFloat32(path, []float32{0}, 8000, 1, 8, 1, FormatPCM); err != nil {
		t.Fatalf("WriteFileFloat32 failed: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if fi.Size() != HeaderSize+1 {
		t.Fatalf("size=%d, want %d", fi.Size(), HeaderSize+1)
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.wav")

	for name, x := range map[string]Exporter{"direct": {}, "atomic": {Atomic: true}} {
		t.Run(name, func(t *testing.T) {
			err := x.Export32(path, Descriptor{SampleRate: 8000, NumChans: 1, BitDepth: 16, Frames: 1, AudioFormat: FormatPCM}, []float32{0})
			if !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("err=%v, want %v", err, fs.ErrNotExist)
			}
		})
	}
}

func TestExporterAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atomic.wav")
	desc := Descriptor{SampleRate: 8000, NumChans: 2, BitDepth: 32, Frames: 1, AudioFormat: FormatIEEEFloat}

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Exporter{Atomic: true, Perm: 0o600}.Export64(path, desc, []float64{0.5, -0.5})
	if err != nil {
		t.Fatalf("Export64 failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want, _ := Marshal(desc, []float64{0.5, -0.5})
	if !bytes.Equal(got, want) {
		t.Fatal("atomic export content differs from Marshal output")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected only the destination file, found %d entries", len(entries))
	}
}
