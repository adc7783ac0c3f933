//go:build ebiten

package scene

// NoiseUniforms mirrors the uniform variables of noiseShaderSrc below. The
// two must stay in sync name for name; that is the whole layout contract.
// Enum-valued uniforms travel as whole-number floats.
type NoiseUniforms struct {
	Resolution        [2]float32
	CellSpacing       float32
	SignalOrigin      [2]float32
	SignalStrength    float32
	SignalWidth       float32
	SignalShape       float32
	NoiseSeed         float32
	NoiseFloor        float32
	NoiseDeviation    float32
	NoiseDeviationCap float32
	NoiseDistribution float32
	ParetoParameter   float32
	Dimensions        float32
}

// Pack writes the record into the named-uniform map.
func (u *NoiseUniforms) Pack(dst map[string]any) {
	dst["Resolution"] = []float32{u.Resolution[0], u.Resolution[1]}
	dst["CellSpacing"] = u.CellSpacing
	dst["SignalOrigin"] = []float32{u.SignalOrigin[0], u.SignalOrigin[1]}
	dst["SignalStrength"] = u.SignalStrength
	dst["SignalWidth"] = u.SignalWidth
	dst["SignalShape"] = u.SignalShape
	dst["NoiseSeed"] = u.NoiseSeed
	dst["NoiseFloor"] = u.NoiseFloor
	dst["NoiseDeviation"] = u.NoiseDeviation
	dst["NoiseDeviationCap"] = u.NoiseDeviationCap
	dst["NoiseDistribution"] = u.NoiseDistribution
	dst["ParetoParameter"] = u.ParetoParameter
	dst["Dimensions"] = u.Dimensions
}

// noiseShaderSrc renders the noise field: the screen is quantized into cells
// (vertical strips in 1D, squares in 2D), each cell draws a brightness
// sampled from the configured distribution around the noise floor, and the
// signal blob is added on top scaled by its current strength. NoiseSeed is
// the discrete noise-frame index, so the field is static within a frame and
// jumps when the frame advances.
const noiseShaderSrc = `//kage:unit pixels

package main

var Resolution vec2
var CellSpacing float
var SignalOrigin vec2
var SignalStrength float
var SignalWidth float
var SignalShape float
var NoiseSeed float
var NoiseFloor float
var NoiseDeviation float
var NoiseDeviationCap float
var NoiseDistribution float
var ParetoParameter float
var Dimensions float

func hash(p vec2) float {
	return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123)
}

// deviation turns two per-cell uniforms into a sample with zero mean and
// unit variance under the selected distribution, capped at
// NoiseDeviationCap deviations.
func deviation(cell vec2) float {
	u1 := hash(cell + vec2(NoiseSeed*0.913, NoiseSeed*0.271))
	u2 := hash(cell + vec2(NoiseSeed*0.367, NoiseSeed*0.557))
	u1 = clamp(u1, 0.0001, 0.9999)

	z := 0.0
	if NoiseDistribution < 0.5 {
		// Gaussian via Box-Muller.
		z = sqrt(-2.0*log(u1)) * cos(6.28318530718*u2)
	} else if NoiseDistribution < 1.5 {
		// Pareto via inverse CDF, recentred on its mean.
		k := max(ParetoParameter, 1.0001)
		z = pow(u1, -1.0/k) - k/(k-1.0)
	} else if NoiseDistribution < 2.5 {
		// Triangle on [-1,1] (sum of two uniforms), scaled to unit variance.
		z = (u1 + u2 - 1.0) * 2.44948974968
	} else {
		// Uniform on [-0.5,0.5], scaled to unit variance.
		z = (u1 - 0.5) * 3.46410161514
	}
	return clamp(z, -NoiseDeviationCap, NoiseDeviationCap)
}

// signal returns the blob intensity in [0,1] at the normalized position.
func signal(pos vec2) float {
	d := 0.0
	if Dimensions < 1.5 {
		d = abs(pos.x - SignalOrigin.x)
	} else {
		d = distance(pos, SignalOrigin)
	}
	w := max(SignalWidth*0.5, 0.0001)

	s := 0.0
	if SignalShape < 0.5 {
		s = exp(-(d * d) / (2.0 * w * w))
	} else if SignalShape < 1.5 {
		s = max(1.0-d/w, 0.0)
	} else {
		if d <= w {
			s = 1.0
		}
	}
	return s
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	pos := dst.xy / Resolution
	cellSize := max(CellSpacing*min(Resolution.x, Resolution.y), 1.0)
	cell := floor(dst.xy / cellSize)
	if Dimensions < 1.5 {
		cell = vec2(cell.x, 0.0)
	}

	v := NoiseFloor + deviation(cell)*NoiseDeviation
	v += signal(pos) * SignalStrength
	v = clamp(v, 0.0, 1.0)
	return vec4(v, v, v, 1.0)
}
`
