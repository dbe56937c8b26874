package gen

// Climate is the (temperature, moisture) pair of one world column, each in [0, 1].
type Climate struct {
	Temperature float64
	Moisture    float64
}

// ClimateSampler reads two independent noise fields at a regional scale.
type ClimateSampler struct {
	temperature Noise
	moisture    Noise
	scale       float64
}

func NewClimateSampler(temperature, moisture Noise, scale float64) *ClimateSampler {
	return &ClimateSampler{
		temperature: temperature,
		moisture:    moisture,
		scale:       scale,
	}
}

// Sample computes the climate at world column (x, z).
func (s *ClimateSampler) Sample(x, z int) Climate {
	fx, fz := float64(x)*s.scale, float64(z)*s.scale
	return Climate{
		Temperature: unit(s.temperature.Eval2(fx, fz)),
		Moisture:    unit(s.moisture.Eval2(fx, fz)),
	}
}

// unit remaps [-1, 1] to [0, 1].
func unit(n float64) float64 {
	return clamp((n+1)*0.5, 0, 1)
}
