// File: models/flow.go
package models

// FlowTracking mirrors a document in the flowTracking collection. These
// documents are written by the approval workflows and only read here, to
// render a four-step progress indicator on the dashboard.
type FlowTracking struct {
	FlowID    string `bson:"flowId,omitempty" json:"flowId,omitempty"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"`
	Owner     string `bson:"owner,omitempty" json:"owner,omitempty"`
	Timestamp int64  `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
	StartAt   int64  `bson:"startAt,omitempty" json:"startAt,omitempty"`
	Step      int    `bson:"step" json:"step"`
	Details   any    `bson:"details,omitempty" json:"details,omitempty"`
}

// FlowStepLabels maps the integer step field (0-based) to the fixed
// progress stages shown on the dashboard.
var FlowStepLabels = []string{
	"Draft",
	"Awaiting approval (stage 1)",
	"Awaiting approval (stage 2)",
	"Done",
}
