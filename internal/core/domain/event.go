package domain

// BuildEvent records that a target was rebuilt at a logical time.
type BuildEvent struct {
	Target string `json:"target"`
	Time   int64  `json:"time"`
}

// TouchEvent records that a leaf target was touched at a logical time.
type TouchEvent struct {
	Target string `json:"target"`
	Time   int64  `json:"time"`
}

// TargetState is the observable state of one target.
type TargetState struct {
	Name          string   `json:"name"`
	LastBuildTime int64    `json:"last_build_time"`
	Dependencies  []string `json:"dependencies,omitempty"`
	Leaf          bool     `json:"leaf"`
}

// Snapshot is the observable state of a graph. Targets are in creation order.
type Snapshot struct {
	Clock   int64         `json:"clock"`
	Targets []TargetState `json:"targets"`
}
