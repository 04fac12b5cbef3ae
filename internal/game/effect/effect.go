package effect

import "github.com/Nemeca99/Chronicles-of-Ruin-sub001/internal/data"

// State of one effect instance. The lifecycle is
// Applied → Ticking → {Expired | Cured}; a hard-immune application never
// reaches Applied at all.
type State int8

const (
	StateApplied State = iota
	StateTicking
	StateExpired
	StateCured
)

var stateNames = [...]string{
	StateApplied: "applied",
	StateTicking: "ticking",
	StateExpired: "expired",
	StateCured:   "cured",
}

func (s State) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Instance is one active status effect on one target. SourceID is a weak
// reference for kill attribution; the instance never touches the source
// entity.
type Instance struct {
	Kind      data.EffectKind
	SourceID  uint32
	Remaining int32
	Stacks    int32
	Magnitude int32

	state State
}

// State returns the lifecycle state.
func (i *Instance) State() State {
	return i.state
}

// Active reports whether the instance still occupies its slot on the target.
func (i *Instance) Active() bool {
	return i.state == StateApplied || i.state == StateTicking
}

// Snapshot is the plain serializable form of an Instance, exchanged with the
// persistence boundary.
type Snapshot struct {
	Kind      data.EffectKind `json:"kind"`
	SourceID  uint32          `json:"source_id"`
	Remaining int32           `json:"remaining"`
	Stacks    int32           `json:"stacks"`
	Magnitude int32           `json:"magnitude"`
}
