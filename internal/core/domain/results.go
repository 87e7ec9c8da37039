package domain

// PositionResult is one block of the exported results document. The
// json tags are the export file format and must not change.
type PositionResult struct {
	Position   string            `json:"position"`
	TotalVotes int64             `json:"totalVotes"`
	Candidates []CandidateResult `json:"candidates"`
}

// CandidateResult ranks one candidate within a position. Percentage
// is pre-formatted to two decimals, "0.00" when the position has no
// votes.
type CandidateResult struct {
	Name       string `json:"name"`
	Party      string `json:"party"`
	Votes      int64  `json:"votes"`
	Percentage string `json:"percentage"`
}
