package model

// BobbinFamily mirrors the core-shape families a bobbin can be molded for.
type BobbinFamily string

// Bobbin is the bobbin record: either a functional description (family +
// dimensions) or a processed description (column/winding-window geometry).
// Both may be set once "quick" construction from a core's winding
// window has run.
type Bobbin struct {
	Family     BobbinFamily
	Dimensions map[string]BoundedValue

	Processed *BobbinProcessedDescription
}

// BobbinProcessedDescription is the geometric description used by the
// winding engine.
type BobbinProcessedDescription struct {
	ColumnShape     string
	ColumnWidth     float64
	ColumnDepth     float64
	ColumnThickness float64
	WallThickness   float64
	WindingWindows  []WindingWindow
}
