package core

// RenderedValue is one parsed literal with its canonical text.
type RenderedValue struct {
	Index   int    `json:"index"`
	Literal string `json:"literal"`
	Kind    string `json:"kind"`
	Text    string `json:"text"`
}

// InspectResult describes how a list of literals prints.
type InspectResult struct {
	Values []RenderedValue `json:"values"`
	Output string          `json:"output"`
}

// KindSummary describes one supported kind.
type KindSummary struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
	Text    string `json:"text"`
}

// KindsResult lists the supported kinds.
type KindsResult struct {
	Kinds []KindSummary `json:"kinds"`
}
