package opendrive

// Header carries the PR document's top-level metadata and the
// georeference offset applied to every coordinate in the document.
type Header struct {
	RevMajor int
	RevMinor int
	Name     string
	Version  string
	Date     string

	// North, South, East, West bound the document's plan-view extent.
	North, South, East, West float64

	// OffsetX/Y/Z/Hdg shift every plan-view coordinate into a shared
	// project frame; non-finite values here are healed to 0.0 by the
	// evaluator's basic-data-types plan.
	OffsetX, OffsetY, OffsetZ, OffsetHdg float64

	// VendorExtensions holds passthrough vendor-specific fields the model
	// doesn't interpret but must round-trip.
	VendorExtensions map[string]string
}
