package dodge

// Mode is the game's top-level state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player is the paddle.
type Player struct {
	X  float64 // Left edge, within [0, screenW - width]
	VX float64 // Horizontal velocity, within [-maxSpeed, maxSpeed]
}

// State is everything the simulation mutates between ticks, except the
// entity pools. The renderer only reads it.
type State struct {
	Mode   Mode
	Player Player

	Score    int     // Points this round
	Best     int     // Best score across rounds
	Elapsed  float64 // Seconds of Playing time this round
	ScoreAcc float64 // Playing time not yet converted into points

	SpawnTimer    float64 // Seconds since the last obstacle spawn
	SpawnInterval float64 // Stored base interval, shrinks per spawn
	FallSpeed     float64 // Base speed for newly spawned obstacles

	PowerUpTimer float64 // Seconds since the last power-up roll
	Shield       int     // Shield charges
	SlowLeft     float64 // Seconds of Slow effect remaining
	Shake        float64 // Camera shake magnitude
}
