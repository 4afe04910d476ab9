package define

// PotentialField is a read-mostly mapping from agent (or group) id to a
// scalar used as the node potential consumed by the migration-gradient
// search. It must be recomputed whenever the underlying agent state it
// was derived from changes — never incrementally patched.
type PotentialField map[int]float64

// Potential splits a node's field value into its attractive and
// repulsive components, mirroring the two-term potential used by HGTM
// and MPFTM (Φ = attract + repel). Keeping them separate lets callers
// inspect which term dominates without recomputing either.
type Potential struct {
	Attract float64
	Repel   float64
}

func (p Potential) Value() float64 {
	return p.Attract + p.Repel
}
