package layout

// Conversion constants between pt and mm. Font sizes travel through the
// engine in pt while every coordinate is mm; the renderer converts at the
// boundary.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)
