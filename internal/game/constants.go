package game

import "time"

// Movement (world units per second)
const (
	WalkSpeed   = 3.5
	SprintSpeed = 5.5
	SneakSpeed  = 1.8
	Accel       = 30.0
	Decel       = 40.0
)

// Stamina
const (
	MaxStamina         = 100.0
	DrainPerSec        = 20.0
	RegenPerSec        = 12.0
	MinSprintThreshold = 5.0
	RegenDelay         = 0.6 // seconds
)

// Input dead zone for the horizontal axis.
const AxisDeadZone = 0.01

// Interaction
const (
	InteractRange  = 1.5
	HideSideRange  = 0.5
	HideSideHeight = 1.2
)

// Player body half extents.
const (
	PlayerHalfWidth  = 0.4
	PlayerHalfHeight = 0.9
)

// Sprites
const (
	SpriteStand    = "player_stand"
	SpriteCrouched = "player_crouched"
)

// Game timing
const (
	TickRate     = 50 // ticks per second
	TickInterval = time.Second / TickRate
)
