package pie

// Label styles applied to every slice label.
const (
	labelAnchor   = "middle"
	labelWeight   = "bold"
	labelFontSize = "14"
)

// sliceNodes are the nodes drawn for one slice.
type sliceNodes struct {
	slice Slice
	group Node
	path  Node
	label Node
	title Node
}

// Label returns the "{key}: {value}" text shown for a slice.
func Label(s Slice) string {
	return s.Key + ": " + FormatNumber(s.Value)
}

// draw appends the chart's drawable primitives to host. The host must have
// been cleared by the caller. colors[i] fills slices[i] and cursor is the
// interactive affordance decided for this pass.
func draw(host Surface, o Options, slices []Slice, r Radii, colors []RGBA, cursor string) []sliceNodes {
	root := host.AppendSurface(o.Width, o.Height)
	center := host.AppendNode(root, Element{
		Kind:      KindGroup,
		Translate: Pt(o.Width/2, o.Height/2),
	})

	out := make([]sliceNodes, 0, len(slices))
	for i, s := range slices {
		text := Label(s)
		n := sliceNodes{slice: s}

		n.group = host.AppendNode(center, Element{Kind: KindGroup, Class: "arc", Key: s.Key})

		n.path = host.AppendNode(n.group, Element{
			Kind: KindPath,
			Key:  s.Key,
			Path: ArcPath(r, s.StartAngle, s.EndAngle),
			Fill: colors[i],
		})
		host.SetStyle(n.path, "cursor", cursor)

		n.label = host.AppendNode(n.group, Element{
			Kind:      KindText,
			Key:       s.Key,
			Translate: LabelAnchor(r, s),
			Text:      text,
		})
		host.SetStyle(n.label, "text-anchor", labelAnchor)
		host.SetStyle(n.label, "font-weight", labelWeight)
		host.SetStyle(n.label, "font-size", labelFontSize)
		host.SetStyle(n.label, "cursor", cursor)

		n.title = host.AppendNode(n.group, Element{Kind: KindTitle, Key: s.Key, Text: text})

		out = append(out, n)
	}
	return out
}
