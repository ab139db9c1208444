package models

// Decision is the reviewer's choice for a single node id.
type Decision string

const (
	DecisionAccept    Decision = "accept"
	DecisionReject    Decision = "reject"
	DecisionUndecided Decision = "undecided"
)

// DecisionMap maps node ids to reviewer decisions. It is owned by the
// caller; the resolver only reads it. A missing id means undecided.
type DecisionMap map[string]Decision

// Get returns the decision for a node id, defaulting to undecided.
func (dm DecisionMap) Get(id string) Decision {
	if dm == nil {
		return DecisionUndecided
	}
	if d, ok := dm[id]; ok && (d == DecisionAccept || d == DecisionReject) {
		return d
	}
	return DecisionUndecided
}
