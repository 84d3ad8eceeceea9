package game

// Window and layout. The display surface is a fixed 500x800 and the
// simulation runs at 30 ticks per second.
const (
	WindowWidth  = 500
	WindowHeight = 800
	TickRate     = 30

	BirdStartX = 230
	BirdStartY = 350
	BaseY      = 730
	PipeSpawnX = 600
)

// Bird physics and animation.
const (
	JumpVelocity  = -10.5 // vertical velocity set on jump, negative is up
	MaxDrop       = 16.0  // terminal per-tick displacement
	RiseBias      = 2.0   // extra upward units while displacement is negative
	MaxRotation   = 25.0  // degrees, nose up
	MinRotation   = -90.0 // degrees, nose down
	RotationVel   = 20.0  // degrees lost per falling tick
	DiveTilt      = -80.0 // at or below this the wings stop flapping
	AnimationTime = 5     // ticks per animation frame
)

// Pipe geometry and motion.
const (
	PipeGap = 200 // vertical distance between top and bottom segments
	PipeVel = 5.0 // horizontal units per tick, moving left
	GapMin  = 50  // inclusive lower bound for the gap top
	GapMax  = 450 // exclusive upper bound for the gap top
)

// Base (scrolling floor) speed matches the pipes.
const BaseVel = 5.0
