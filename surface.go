package pie

// Node is a handle to a node appended to a Surface. Handles are only
// meaningful to the surface that issued them.
type Node uint32

// NoNode is the zero handle; surfaces never issue it for a real node.
const NoNode Node = 0

// NodeKind identifies the drawable primitive an Element describes.
type NodeKind uint8

const (
	// KindGroup groups child nodes and may translate them.
	KindGroup NodeKind = iota

	// KindPath is a filled path.
	KindPath

	// KindText is a text label anchored at Element.Translate.
	KindText

	// KindTitle is a tooltip attached to its parent node.
	KindTitle
)

// String returns the SVG element name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "g"
	case KindPath:
		return "path"
	case KindText:
		return "text"
	case KindTitle:
		return "title"
	default:
		return "unknown"
	}
}

// Element describes a node to append. Fields irrelevant to Kind are
// ignored by surfaces.
type Element struct {
	Kind NodeKind

	// Class is an optional class name ("arc" for slice groups).
	Class string

	// Key tags the node with the key of the slice it belongs to.
	Key string

	// Translate offsets a group or positions a text node.
	Translate Point

	// Path is the geometry of a KindPath node.
	Path *Path

	// Fill is the fill color of a KindPath node.
	Fill RGBA

	// Text is the content of KindText and KindTitle nodes.
	Text string
}

// Surface is the host capability the chart draws on.
//
// The chart never depends on a concrete drawing library, only on this
// contract. Implementations for SVG documents and raster images live in
// the surface package; hosts embedding the chart elsewhere provide their
// own.
//
// Surfaces are NOT thread-safe.
type Surface interface {
	// Clear removes every node previously appended.
	Clear()

	// AppendSurface appends a drawing viewport sized width x height and
	// returns its node. Coordinates inside it run from (0,0) at top-left.
	AppendSurface(width, height float64) Node

	// AppendNode appends el under parent and returns its node.
	AppendNode(parent Node, el Element) Node

	// SetStyle assigns a style property (e.g. "cursor") on n.
	SetStyle(n Node, name, value string)

	// OnActivate registers fn to run when n is clicked or tapped.
	OnActivate(n Node, fn func())
}

// Releaser is implemented by surfaces holding resources that must be freed
// when the chart is destroyed.
type Releaser interface {
	Release() error
}
