package extract

import (
	"fluido/internal/egraph"
	"fluido/internal/numeric"
)

// Normalize rewrites every Fluid leaf's volume to its ratio against the
// minimum volume found anywhere in the tree (spec §4.7), producing the
// canonical form used for textual comparison. A tree with no Fluid leaves is
// returned unchanged.
func Normalize(t Tree) Tree {
	minVol, found := minVolume(t)
	if !found || minVol.Wrapped == 0 {
		return t
	}
	return scaleVolumes(t, minVol)
}

func minVolume(t Tree) (v volumeAccum, found bool) {
	var min volumeAccum
	var has bool
	walkFluidVolumes(t, func(vol Tree) {
		f := vol.Value.Float()
		if !has || f < min.f {
			min = volumeAccum{f: f, Wrapped: vol.Value.Wrapped}
			has = true
		}
	})
	return min, has
}

type volumeAccum struct {
	f       float64
	Wrapped int64
}

func walkFluidVolumes(t Tree, visit func(Tree)) {
	if t.Op == egraph.OpFluid && len(t.Children) == 2 {
		visit(t.Children[1])
	}
	for _, c := range t.Children {
		walkFluidVolumes(c, visit)
	}
}

func scaleVolumes(t Tree, minVol volumeAccum) Tree {
	if t.Op == egraph.OpFluid && len(t.Children) == 2 {
		conc := t.Children[0]
		vol := t.Children[1]
		ratio := vol.Value.Float() / minVol.f
		return Tree{
			Op: egraph.OpFluid,
			Children: []Tree{
				conc,
				{Op: egraph.OpNumber, Value: numeric.FromFloat(ratio)},
			},
		}
	}
	if len(t.Children) == 0 {
		return t
	}
	children := make([]Tree, len(t.Children))
	for i, c := range t.Children {
		children[i] = scaleVolumes(c, minVol)
	}
	return Tree{Op: t.Op, Value: t.Value, Children: children}
}
