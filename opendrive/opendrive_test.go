package opendrive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-roadspaces/roadspaces/opendrive"
)

func TestGeometryPrimitiveTypeSwitch(t *testing.T) {
	segments := []opendrive.PlanViewGeometry{
		{Primitive: opendrive.Line{}},
		{Primitive: opendrive.Arc{Curvature: 0.01}},
		{Primitive: opendrive.Spiral{CurvStart: 0, CurvEnd: 0.02}},
		{Primitive: opendrive.Poly3{A: 1}},
		{Primitive: opendrive.ParamPoly3{AU: 1, BV: 1}},
	}

	var kinds []string
	for _, seg := range segments {
		switch seg.Primitive.(type) {
		case opendrive.Line:
			kinds = append(kinds, "line")
		case opendrive.Arc:
			kinds = append(kinds, "arc")
		case opendrive.Spiral:
			kinds = append(kinds, "spiral")
		case opendrive.Poly3:
			kinds = append(kinds, "poly3")
		case opendrive.ParamPoly3:
			kinds = append(kinds, "paramPoly3")
		}
	}
	require.Equal(t, []string{"line", "arc", "spiral", "poly3", "paramPoly3"}, kinds)
}

func TestConnectionContactPointHoldsStartValue(t *testing.T) {
	c := opendrive.Connection{ContactPoint: opendrive.ContactPointStart}
	require.Equal(t, opendrive.ContactPointStart, c.ContactPoint)
}
