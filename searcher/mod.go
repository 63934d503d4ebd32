package searcher

// State is a turn-based game position the strategies can search. S is the
// concrete state type itself (usually a pointer) and A its action type.
//
// Play mutates the receiver; the strategies only ever call it on copies made
// with Clone or CopyFrom.
type State[S any, A any] interface {
	Player() int // Seat of the player to move
	NumPlayers() int
	AppendActions(dst []A) []A
	Play(A)
	Terminal() bool
	Clone() S
	CopyFrom(src S)
}

// Evaluate scores s from the point of view of player, regardless of whose
// turn it is in s.
type Evaluate[S any] func(s S, player int) float64

// EvaluateAll writes one score per player into dst and returns it.
type EvaluateAll[S any] func(s S, dst []float64) []float64
