package config

// Parameters is the frozen configuration surface every package in this
// module reads from; nothing here is mutated once built.
type Parameters struct {
	NumberTolerance                   float64
	PlanViewGeometryDistanceTolerance float64
	PlanViewGeometryAngleTolerance    float64

	DiscretizationStepSize      float64
	SweepDiscretizationStepSize float64
	CircleSlices                int

	ExtrapolateLateralRoadShapes bool

	DeriveCrsEpsgAutomatically bool
	CrsEpsg                    int

	ConcurrentProcessing              bool
	FlattenGenericAttributeSets       bool
	TransformAdditionalRoadLines      bool
	GenerateLongitudinalFillerSurfaces bool
	MappingBackwardsCompatibility     bool
	GenerateRandomGeometryIds         bool

	AttributesPrefix           string
	IdentifierAttributesPrefix string
	GeometryAttributesPrefix   string
	GmlIDPrefix                string
}

// Default returns the standard default parameter set.
func Default() Parameters {
	return Parameters{
		NumberTolerance:                    1e-7,
		PlanViewGeometryDistanceTolerance:  1e0,
		PlanViewGeometryAngleTolerance:     1e0,
		DiscretizationStepSize:             0.7,
		SweepDiscretizationStepSize:        0.7,
		CircleSlices:                       8,
		ExtrapolateLateralRoadShapes:       false,
		DeriveCrsEpsgAutomatically:         false,
		CrsEpsg:                            0,
		ConcurrentProcessing:               false,
		FlattenGenericAttributeSets:        false,
		TransformAdditionalRoadLines:       false,
		GenerateLongitudinalFillerSurfaces: false,
		MappingBackwardsCompatibility:      false,
		GenerateRandomGeometryIds:          false,
		AttributesPrefix:                   "attr_",
		IdentifierAttributesPrefix:         "identifier_",
		GeometryAttributesPrefix:           "geometry_",
		GmlIDPrefix:                        "UUID_",
	}
}

// Validate checks the four prefixes (attributes, identifier attributes,
// geometry attributes, GML id) against the GML-id-safe pattern. FromGetopt
// calls it before returning; Default does not.
func (p Parameters) Validate() error {
	for _, prefix := range []string{p.AttributesPrefix, p.IdentifierAttributesPrefix, p.GeometryAttributesPrefix, p.GmlIDPrefix} {
		if err := validatePrefix(prefix); err != nil {
			return err
		}
	}
	return nil
}

// AsMap renders Parameters as the string map issue.Report.Parameters
// expects.
func (p Parameters) AsMap() map[string]string {
	return map[string]string{
		"numberTolerance":                    formatFloat(p.NumberTolerance),
		"planViewGeometryDistanceTolerance":  formatFloat(p.PlanViewGeometryDistanceTolerance),
		"planViewGeometryAngleTolerance":     formatFloat(p.PlanViewGeometryAngleTolerance),
		"discretizationStepSize":             formatFloat(p.DiscretizationStepSize),
		"sweepDiscretizationStepSize":        formatFloat(p.SweepDiscretizationStepSize),
		"circleSlices":                       formatInt(p.CircleSlices),
		"extrapolateLateralRoadShapes":       formatBool(p.ExtrapolateLateralRoadShapes),
		"deriveCrsEpsgAutomatically":         formatBool(p.DeriveCrsEpsgAutomatically),
		"crsEpsg":                            formatInt(p.CrsEpsg),
		"concurrentProcessing":               formatBool(p.ConcurrentProcessing),
		"flattenGenericAttributeSets":        formatBool(p.FlattenGenericAttributeSets),
		"transformAdditionalRoadLines":       formatBool(p.TransformAdditionalRoadLines),
		"generateLongitudinalFillerSurfaces": formatBool(p.GenerateLongitudinalFillerSurfaces),
		"mappingBackwardsCompatibility":      formatBool(p.MappingBackwardsCompatibility),
		"generateRandomGeometryIds":          formatBool(p.GenerateRandomGeometryIds),
		"attributesPrefix":                   p.AttributesPrefix,
		"identifierAttributesPrefix":         p.IdentifierAttributesPrefix,
		"geometryAttributesPrefix":           p.GeometryAttributesPrefix,
		"gmlIdPrefix":                        p.GmlIDPrefix,
	}
}
