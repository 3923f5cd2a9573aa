// This tool generates a sine tone and exports it as a WAV or AIFF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavexport"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var (
	errUnknownContainer = errors.New("unknown container")
	errInvalidLength    = errors.New("length must be positive")
	errAIFFFloat        = errors.New("aiff export only supports PCM")
	errAIFFBitDepth     = errors.New("aiff export supports up to 32 bits")
)

type options struct {
	output    string
	frequency float64
	length    float64
	rate      uint
	bits      uint
	float     bool
	stereo    bool
	volume    float64
	clip      float64
	container string
	atomic    bool
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	var opts options

	flagSet.StringVar(&opts.output, "output", "output.wav", "filename to write to")
	flagSet.Float64Var(&opts.frequency, "frequency", 440, "frequency in hertz to generate")
	flagSet.Float64Var(&opts.length, "length", 1, "length in seconds of output file")
	flagSet.UintVar(&opts.rate, "rate", 44100, "sample rate in hertz")
	flagSet.UintVar(&opts.bits, "bits", 16, "bits per sample (PCM 8/16/32/64, float 32/64)")
	flagSet.BoolVar(&opts.float, "float", false, "store IEEE float samples instead of PCM")
	flagSet.BoolVar(&opts.stereo, "stereo", false, "duplicate the tone onto two channels")
	flagSet.Float64Var(&opts.volume, "volume", 1, "volume multiplier")
	flagSet.Float64Var(&opts.clip, "clip", 0, "hard clip threshold, 0 disables clipping")
	flagSet.StringVar(&opts.container, "container", "wav", "output container: wav or aiff")
	flagSet.BoolVar(&opts.atomic, "atomic", false, "write to a temp file and rename it into place")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if opts.length <= 0 {
		return fmt.Errorf("%w: %f", errInvalidLength, opts.length)
	}

	log.Printf("generating a %f sec sine at %f hz", opts.length, opts.frequency)

	samples := sine(opts.frequency, int(opts.rate), int(float64(opts.rate)*opts.length))

	wavexport.ApplyVolume(samples, opts.volume)

	if opts.clip > 0 {
		wavexport.ApplyClip(samples, opts.clip)
	}

	channels := uint16(1)
	if opts.stereo {
		samples = wavexport.DuplicateToStereo(samples)
		channels = 2
	}

	format := wavexport.FormatPCM
	if opts.float {
		format = wavexport.FormatIEEEFloat
	}

	desc := wavexport.Descriptor{
		SampleRate:  uint32(opts.rate),
		NumChans:    channels,
		BitDepth:    uint16(opts.bits),
		Frames:      uint32(len(samples) / int(channels)),
		AudioFormat: format,
	}

	switch opts.container {
	case "wav":
		err = wavexport.Exporter{Atomic: opts.atomic}.Export64(opts.output, desc, samples)
	case "aiff":
		err = writeAIFF(opts.output, desc, samples)
	default:
		err = fmt.Errorf("%w: %q", errUnknownContainer, opts.container)
	}

	if err != nil {
		return err
	}

	log.Printf("wrote %s (%d Hz, %d ch, %d-bit %s)", opts.output, desc.SampleRate, desc.NumChans, desc.BitDepth, desc.AudioFormat)

	return nil
}

// sine returns n samples of a full scale sine wave.
func sine(frequency float64, sampleRate, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * frequency * float64(i) / float64(sampleRate))
	}

	return out
}

func writeAIFF(path string, desc wavexport.Descriptor, samples []float64) error {
	if desc.AudioFormat != wavexport.FormatPCM {
		return errAIFFFloat
	}

	if desc.BitDepth > 32 {
		return fmt.Errorf("%w: %d", errAIFFBitDepth, desc.BitDepth)
	}

	if err := desc.Validate(); err != nil {
		return err
	}

	intBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: int(desc.NumChans), SampleRate: int(desc.SampleRate)},
		SourceBitDepth: int(desc.BitDepth),
		Data:           make([]int, len(samples)),
	}

	for i, s := range samples {
		v, err := wavexport.QuantizePCM(s, desc.BitDepth)
		if err != nil {
			return err
		}

		intBuf.Data[i] = int(v)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	encoder := aiff.NewEncoder(file, int(desc.SampleRate), int(desc.BitDepth), int(desc.NumChans))

	if err := encoder.Write(intBuf); err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}

	return encoder.Close()
}
