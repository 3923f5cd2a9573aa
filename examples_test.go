package wavexport

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func ExampleBuildHeader() {
	hdr, err := BuildHeader(Descriptor{
		SampleRate:  44100,
		NumChans:    2,
		BitDepth:    16,
		Frames:      1,
		AudioFormat: FormatPCM,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d bytes: %s % x\n", len(hdr), hdr[:4], hdr[4:8])
	// Output: 44 bytes: RIFF 28 00 00 00
}

func ExampleDuplicateToStereo() {
	fmt.Println(DuplicateToStereo([]float64{0.5, -0.25}))
	// Output: [0.5 0.5 -0.25 -0.25]
}

func ExampleEncoder_WriteFloat32() {
	var out bytes.Buffer

	enc := NewEncoder(&out, Descriptor{
		SampleRate:  8000,
		NumChans:    1,
		BitDepth:    16,
		Frames:      2,
		AudioFormat: FormatPCM,
	})
	if err := enc.WriteFloat32([]float32{1, -1}); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", out.Bytes()[HeaderSize:])
	// Output: ff 7f 01 80
}

func ExampleWriteFileFloat64() {
	dir, err := os.MkdirTemp("", "wavexport")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	mono := []float64{0, 0.5, 1, 0.5}
	stereo := DuplicateToStereo(mono)

	err = WriteFileFloat64(path, stereo, 44100, 2, 32, uint32(len(mono)), FormatIEEEFloat)
	if err != nil {
		log.Fatal(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(fi.Size())
	// Output: 76
}
