package entity

// BlockType is the closed set of tile kinds in a level.
type BlockType int

const (
	BlockGround BlockType = iota
	BlockBrick
	BlockQuestion
	BlockPipe
)

// String returns the string representation of the block type
func (t BlockType) String() string {
	switch t {
	case BlockGround:
		return "ground"
	case BlockBrick:
		return "brick"
	case BlockQuestion:
		return "question"
	case BlockPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// BlockHitBounce is how many ticks a freshly hit block bounces for.
const BlockHitBounce = 10

// Block is a static tile. Position and type are immutable after creation;
// only Hit, HitTimer and presence in the level may change.
type Block struct {
	X, Y float64
	Type BlockType

	Hit      bool
	HitTimer int

	// Contains is the coin reward left inside a question block.
	Contains int
}

// NewBlock creates a block of the given type at a world position.
func NewBlock(x, y float64, t BlockType) *Block {
	b := &Block{X: x, Y: y, Type: t}
	if t == BlockQuestion {
		b.Contains = 1
	}
	return b
}

// Bounds returns the collision box. Pipes occupy a 2x2 tile footprint.
func (b *Block) Bounds(tileSize float64) Rect {
	size := tileSize
	if b.Type == BlockPipe {
		size = tileSize * 2
	}
	return Rect{X: b.X, Y: b.Y, W: size, H: size}
}

// TickBounce advances the hit-bounce animation timer.
func (b *Block) TickBounce() {
	if b.HitTimer > 0 {
		b.HitTimer--
	}
}
