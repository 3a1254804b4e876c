// Package fromopendrive's convert.go is the top-level entry point: it
// resolves every road to a Roadspace, then resolves junctions across the
// whole document.
package fromopendrive

import (
	"github.com/go-roadspaces/roadspaces/config"
	"github.com/go-roadspaces/roadspaces/opendrive"
	"github.com/go-roadspaces/roadspaces/roadspace"
)

// Convert turns a PR document already healed by the evaluator into a
// Roadspaces Document. Callers that skip the evaluator are responsible
// for the PR already satisfying its invariants — this transformer does
// not re-validate them.
func Convert(pr opendrive.PR, params config.Parameters) (roadspace.Document, error) {
	roadspaces, err := buildRoadspaces(pr.Roads, params)
	if err != nil {
		return roadspace.Document{}, err
	}

	junctions, err := buildJunctions(pr, roadMapFromRoads(pr.Roads))
	if err != nil {
		return roadspace.Document{}, err
	}

	header := roadspace.Header{CrsEpsg: params.CrsEpsg}
	return roadspace.NewDocument(header, roadspaces, junctions), nil
}

// buildRoadspace runs a single road through reference-line construction,
// road surface, road body, and roadspace objects.
func buildRoadspace(road opendrive.Road, params config.Parameters) (roadspace.Roadspace, error) {
	referenceLine, err := buildReferenceLine(road, params)
	if err != nil {
		return roadspace.Roadspace{}, err
	}

	surface, err := buildRoadSurface(road, referenceLine, params)
	if err != nil {
		return roadspace.Roadspace{}, err
	}

	body, err := buildRoadBody(road, surface, params)
	if err != nil {
		return roadspace.Roadspace{}, err
	}

	objects, err := buildObjects(road, referenceLine, params)
	if err != nil {
		return roadspace.Roadspace{}, err
	}

	attrs := map[string]string{"name": road.Name}
	return roadspace.NewRoadspace(roadspaceIdentifier(road.ID), referenceLine, body, objects, attrs), nil
}
