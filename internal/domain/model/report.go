package model

// Confidence bounds reported to callers, in whole percent.
const (
	MinConfidence = 0
	MaxConfidence = 95
)

// Confidence carries the pre-noise accuracy of a report as integer
// percentages. It reflects the accuracy model only, never the realized
// noise draw.
type Confidence struct {
	Attributes int `json:"attributes"`
	Potential  int `json:"potential"`
}

// Report is a scout's perceived assessment of a player. Reports are
// recomputed per evaluation and never mutated; a different scout profile
// means a fresh Report against the same Player.
type Report struct {
	Perceived          Attributes `json:"perceived_attributes"`
	PerceivedPotential int        `json:"perceived_potential"`
	Text               string     `json:"report_text"`
	Confidence         Confidence `json:"confidence"`
}
