package is456

import "math"

// IS 456:2000 limit-state constants

const (
	// Partial safety factors (Section 36.4.2)
	GammaConcrete = 1.5
	GammaSteel    = 1.15

	// Design stress in steel, fy/γs (Section 38.1)
	SteelStressFactor = 0.87

	// Rectangular-parabolic stress block (Section 38.1)
	StressBlockFactor = 0.36  // compressive force = 0.36·fck·b·xu
	CentroidFactor    = 0.416 // depth of force from compression face = 0.416·xu

	// Ultimate concrete strain and the yield strain offset of HYSD bars,
	// εs = 0.87·fy/Es + 0.002 (Section 38.1)
	ConcreteStrainLimit = 0.0035
	YieldStrainOffset   = 0.002

	// Limiting neutral axis depth ratio. 0.48 reproduces the 0.138 coefficient
	// of the limiting moment and is used for every steel grade.
	XuMaxRatio = 0.48

	// Limiting moment of resistance coefficient, Mu,lim = 0.138·fck·b·d²
	LimitingMomentFactor = 0.138

	// Compression steel stress allowance, fsc − 0.447·fck (Section 38.1 / SP 16)
	CompressionConcreteFactor = 0.447

	// Default cover to compression steel centroid (mm)
	CompressionCover = 50.0

	// Tension steel limits (Section 26.5.1.1)
	MinTensionFactor = 0.85 // As,min = 0.85·b·d/fy
	MaxTensionRatio  = 0.04 // As,max = 0.04·b·D

	// Compression steel limit (Section 26.5.1.2)
	MaxCompressionRatio = 0.04 // Asc,max = 0.04·b·D

	// Slab / wall minimum steel (Section 26.5.2.1)
	MinSlabRatioHYSD = 0.0012
	MinSlabRatioMild = 0.0015

	// Column steel limits (Section 26.5.3.1)
	ColumnMinSteel = 0.008
	ColumnMaxSteel = 0.04

	// Column slenderness (Section 25.1.2 / 25.3.1)
	ShortColumnLimit = 12.0
	SlendernessLimit = 50.0

	// Serviceability (Section 23.2 (a))
	DeflectionRatio = 250.0

	// Load factor for DL + LL (Table 18)
	LoadFactor = 1.5

	// Unit weight of reinforced concrete (kN/m³)
	ConcreteUnitWeight = 25.0
)

// ElasticModulus is the short-term static modulus of concrete (Section 6.2.3.1)
func ElasticModulus(fck float64) float64 {
	return 5000 * math.Sqrt(fck)
}

// ShearStrength is the design shear strength of concrete used by every
// solver: a constant τc = 0.25·√fck independent of the tension steel
// percentage.
func ShearStrength(fck float64) float64 {
	return 0.25 * math.Sqrt(fck)
}

// MinTensionSteel is the minimum beam tension reinforcement (mm²)
func MinTensionSteel(b, d, fy float64) float64 {
	return MinTensionFactor * b * d / fy
}

// MinSlabSteel is the minimum slab reinforcement for a gross area b·D (mm²)
func MinSlabSteel(b, D, fy float64) float64 {
	if fy <= 250 {
		return MinSlabRatioMild * b * D
	}
	return MinSlabRatioHYSD * b * D
}

// MinEccentricity is the minimum eccentricity of a column load (mm) for an
// unsupported length L (mm) and lateral dimension D (mm), Section 25.4.
func MinEccentricity(L, D float64) float64 {
	return math.Max(L/500+D/30, 20)
}
