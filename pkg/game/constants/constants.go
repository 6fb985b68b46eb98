package constants

// Zip Run
const (
	// ZipMinProgress is the left end of the track
	ZipMinProgress float64 = 0.0
	// ZipMaxProgress is the right end of the track
	ZipMaxProgress float64 = 100.0
	// ZipSpeed is the indicator speed in track units per baseline frame
	ZipSpeed float64 = 0.7
	// ZipSpeedStepPerLevel is added to the speed multiplier for every level above 1
	ZipSpeedStepPerLevel float64 = 0.08
	// ZipMaxSpeedMultiplier caps the level speed multiplier
	ZipMaxSpeedMultiplier float64 = 1.8
	// ZipBaseSafeWidth is the safe zone width at level 1
	ZipBaseSafeWidth float64 = 45.0
	// ZipSafeWidthStepPerLevel is removed from the safe zone width for every level above 1
	ZipSafeWidthStepPerLevel float64 = 4.0
	// ZipMinSafeWidth is the narrowest the safe zone gets
	ZipMinSafeWidth float64 = 15.0
	// ZipStartLevel is the level of a fresh engine and of a failed run
	ZipStartLevel int = 1
)

// Stack Tower
const (
	// StackSurfaceWidth is the default width of the draw surface
	StackSurfaceWidth float64 = 320.0
	// StackSurfaceHeight is the default height of the draw surface
	StackSurfaceHeight float64 = 480.0
	// StackBlockHeight is the height of every block
	StackBlockHeight float64 = 24.0
	// StackBaseWidth is the width of the base block
	StackBaseWidth float64 = 160.0
	// StackStartSpeed is the active block speed at the start of a game, in units per frame
	StackStartSpeed float64 = 2.5
	// StackSpeedStep is added to the speed after every successful drop
	StackSpeedStep float64 = 0.15
	// StackMaxSpeed caps the active block speed
	StackMaxSpeed float64 = 5.0
	// StackMissTolerance is the overlap width at or below which the tower topples
	StackMissTolerance float64 = 5.0
	// StackViewTopFraction is the part of the surface the active block is kept below
	StackViewTopFraction float64 = 1.0 / 3.0
)

// StackPalette is the block color cycle, indexed by block count.
var StackPalette = []string{
	"#f97316",
	"#facc15",
	"#4ade80",
	"#22d3ee",
	"#60a5fa",
	"#a78bfa",
	"#f472b6",
	"#fb7185",
}

// Engines
const (
	// EventQueueSize is the capacity of an engine's default event queue
	EventQueueSize int = 256
)
