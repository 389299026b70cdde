package game

// Key is a directional key the player can hold.
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// KeySet is the set of currently held directional keys.
type KeySet uint8

func (s KeySet) Has(k Key) bool { return s&KeySet(k) != 0 }

func (s KeySet) With(k Key) KeySet { return s | KeySet(k) }

// Input is the snapshot a frontend hands to one tick.
// Pointer, when set, places the player directly before the key intent moves
// and reclamps it.
type Input struct {
	Keys    KeySet
	Pointer *Point
}

// Keys builds a KeySet from individual keys.
func Keys(ks ...Key) KeySet {
	var s KeySet
	for _, k := range ks {
		s = s.With(k)
	}
	return s
}
