package config

import (
	"github.com/pborman/getopt/v2"
)

// FromGetopt parses args (conventionally os.Args[1:]) into a Parameters,
// starting from Default() for any flag not given. It never calls os.Exit
// or prints usage itself — it's a loader function, not a CLI — so a
// caller building the actual command-line tool stays in control of
// --help/usage behavior and process exit codes.
func FromGetopt(args []string) (Parameters, error) {
	p := Default()
	set := getopt.New()

	set.FlagLong(&p.NumberTolerance, "number-tolerance", 0,
		"Fuzzy-equality tolerance used throughout domain checks.", "float")
	set.FlagLong(&p.PlanViewGeometryDistanceTolerance, "plan-view-distance-tolerance", 0,
		"C0-continuity distance tolerance between plan-view segments.", "float")
	set.FlagLong(&p.PlanViewGeometryAngleTolerance, "plan-view-angle-tolerance", 0,
		"Kink-detection angle tolerance between plan-view segments, in radians.", "float")
	set.FlagLong(&p.DiscretizationStepSize, "discretization-step-size", 0,
		"Arc-length step used when discretizing curves and surfaces.", "float")
	set.FlagLong(&p.SweepDiscretizationStepSize, "sweep-discretization-step-size", 0,
		"Arc-length step used when discretizing a ParametricSweep's axis.", "float")
	set.FlagLong(&p.CircleSlices, "circle-slices", 0,
		"Default slice count for Cylinder and circle-shaped road objects.", "int")
	set.FlagLong(&p.ExtrapolateLateralRoadShapes, "extrapolate-lateral-road-shapes", 0,
		"Extrapolate a lateralProfile.shape section past its recorded t-domain instead of erroring.")
	set.FlagLong(&p.DeriveCrsEpsgAutomatically, "derive-crs-epsg-automatically", 0,
		"Recorded in the report parameters; no conversion stage reads it, and the CRS is not inferred from the input.")
	set.FlagLong(&p.CrsEpsg, "crs-epsg", 0,
		"EPSG code of the coordinate reference system; 0 means unset.", "int")
	set.FlagLong(&p.ConcurrentProcessing, "concurrent-processing", 0,
		"Process roads on a worker pool instead of sequentially.")
	set.FlagLong(&p.FlattenGenericAttributeSets, "flatten-generic-attribute-sets", 0,
		"Recorded in the report parameters; no conversion stage reads it, and nested generic attribute sets are not inlined.")
	set.FlagLong(&p.TransformAdditionalRoadLines, "transform-additional-road-lines", 0,
		"Recorded in the report parameters; no conversion stage reads it, and no additional road lines are emitted.")
	set.FlagLong(&p.GenerateLongitudinalFillerSurfaces, "generate-longitudinal-filler-surfaces", 0,
		"Emit LongitudinalFillerSurface strips between lane sections with a t-discontinuity.")
	set.FlagLong(&p.MappingBackwardsCompatibility, "mapping-backwards-compatibility", 0,
		"Recorded in the report parameters; no conversion stage reads it, and the lane-type-to-SB-feature mapping is the same either way.")
	set.FlagLong(&p.GenerateRandomGeometryIds, "generate-random-geometry-ids", 0,
		"Recorded in the report parameters; no conversion stage reads it, and geometry ids are always derived deterministically from object identifiers.")
	set.FlagLong(&p.AttributesPrefix, "attributes-prefix", 0,
		"Namespace prefix for generic SB attributes.", "string")
	set.FlagLong(&p.IdentifierAttributesPrefix, "identifier-attributes-prefix", 0,
		"Namespace prefix for source-identifier attributes.", "string")
	set.FlagLong(&p.GeometryAttributesPrefix, "geometry-attributes-prefix", 0,
		"Namespace prefix for geometry-rotation attributes.", "string")
	set.FlagLong(&p.GmlIDPrefix, "gml-id-prefix", 0,
		"Prefix concatenated onto every derived GML id.", "string")

	if err := set.Getopt(args, nil); err != nil {
		return Parameters{}, err
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}
