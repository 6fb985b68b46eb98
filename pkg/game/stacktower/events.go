package stacktower

// GameStartedEvent is emitted when a new tower is started.
type GameStartedEvent struct {
	Base   Block
	Status string
}

// BlockPlacedEvent is emitted when a drop lands on the tower.
type BlockPlacedEvent struct {
	Block  Block
	Score  int
	Best   int
	Speed  float64
	Status string
}

// ToppledEvent is emitted when a drop misses and the game ends.
type ToppledEvent struct {
	OverlapWidth float64
	Score        int
	Best         int
	Status       string
}
