package constants

// Starfield Constants
const (
	// DriftStarCount is the particle count in drifting mode
	DriftStarCount = 250

	// PerspectiveStarCount is the particle count in perspective mode
	PerspectiveStarCount = 2000

	// StarSpeed is the base drift speed and the per-frame depth step
	StarSpeed = 0.5

	// StarMinDriftSpeed is added to every randomized drift speed
	StarMinDriftSpeed = 0.1

	// StarMaxSize bounds the randomized star size
	StarMaxSize = 2.0

	// StarMaxDepth is the far plane of the perspective field
	StarMaxDepth = 32.0

	// StarFocalLength is the projection constant (projected = offset * focal / z)
	StarFocalLength = 128.0

	// StarPerspectiveMaxSize is the rendered size at zero depth
	StarPerspectiveMaxSize = 3.0

	// StarFadeAlpha is the opacity of the per-frame black fill producing motion trails
	StarFadeAlpha = 0.1
)
