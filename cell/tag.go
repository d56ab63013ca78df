package cell

// Tag is an immutable classification attached to a Cell. Tags are compared by pointer, so every
// distinct classification must be created once and shared.
type Tag struct {
	id   uint8
	name string
	max  float64
}

// NewTag creates a Tag. max is the largest Value the classification accepts; see Contains.
func NewTag(id uint8, name string, max float64) *Tag {
	return &Tag{id: id, name: name, max: max}
}

// ID returns the numeric ID of the tag.
func (t *Tag) ID() uint8 {
	if t == nil {
		return 0
	}
	return t.id
}

// Name returns the name of the tag, or "none" for a nil tag.
func (t *Tag) Name() string {
	if t == nil {
		return "none"
	}
	return t.name
}

// Max returns the largest value accepted by the tag.
func (t *Tag) Max() float64 {
	if t == nil {
		return 1
	}
	return t.max
}

// Contains reports if value is low enough to still be classified as t. A nil tag contains every
// value.
func (t *Tag) Contains(value float64) bool {
	return t == nil || value <= t.max
}

// String ...
func (t *Tag) String() string {
	return t.Name()
}
