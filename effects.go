package wavexport

// Volume scales a sample by volume.
func Volume(volume, sample float64) float64 {
	return sample * volume
}

// Clip hard clips a sample to [-threshold, threshold].
func Clip(threshold, sample float64) float64 {
	switch {
	case sample > threshold:
		return threshold
	case sample < -threshold:
		return -threshold
	default:
		return sample
	}
}

// ApplyVolume scales samples in place.
func ApplyVolume[F Sample](samples []F, volume float64) {
	for i, s := range samples {
		samples[i] = F(Volume(volume, float64(s)))
	}
}

// ApplyClip hard clips samples in place.
func ApplyClip[F Sample](samples []F, threshold float64) {
	for i, s := range samples {
		samples[i] = F(Clip(threshold, float64(s)))
	}
}
