package emblem

// elementIDCounter is a plain counter (no atomic — emblem is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a retained node in the stage tree. A single flat struct covers
// all kinds to keep measurement and serialization simple; the element set is
// fixed at construction and never changes at runtime.
type Element struct {
	// Identity
	id   uint32
	Name string
	Kind ElementKind

	// Hierarchy
	Parent   *Element
	children []*Element

	// Base is the element's intrinsic local-space box before any transform.
	// Group elements ignore Base; their extent is the union of their children.
	Base Rect

	// Transform is the rendered transform attribute string. It is written by
	// the stage's offset store and may be reformatted by serialization; the
	// authoritative translate cache lives on the Stage.
	Transform string

	// scale is the uniform scale factor composed into Transform.
	scale float64

	// Visibility & interaction
	Visible     bool
	Interactive bool

	// Presentation
	Fill        Color
	StrokeWidth float64
	// NonScalingStroke marks a stroked element whose stroke width stays
	// constant under ancestor scaling (vector-effect behavior). The trail
	// solver compensates endpoint insets for it.
	NonScalingStroke bool

	// Attrs holds serialized string attributes: path "d" data, gradient
	// endpoint coordinates, and state markers. Allocated lazily.
	Attrs map[string]string
}

// NewElement creates an element of the given kind with defaults applied.
func NewElement(name string, kind ElementKind) *Element {
	return &Element{
		id:      nextElementID(),
		Name:    name,
		Kind:    kind,
		Visible: true,
		scale:   1,
		Fill:    ColorWhite,
	}
}

// AddChild appends child to this element's children and sets its parent.
// A child already attached elsewhere is first detached.
func (e *Element) AddChild(child *Element) {
	if child == nil || child == e {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChild(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// Children returns the element's direct children. The returned slice is the
// internal one; callers must not mutate it.
func (e *Element) Children() []*Element {
	return e.children
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			child.Parent = nil
			return
		}
	}
}

// SetAttr writes a serialized attribute, allocating the map on first use.
func (e *Element) SetAttr(key, value string) {
	if e == nil {
		return
	}
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
}

// Attr reads a serialized attribute; missing keys return "".
func (e *Element) Attr(key string) string {
	if e == nil {
		return ""
	}
	return e.Attrs[key]
}

// Scale returns the element's uniform scale factor.
func (e *Element) Scale() float64 {
	if e == nil {
		return 1
	}
	return e.scale
}
