package domain

// OrphanParent is an entry whose parent key is not in the index
type OrphanParent struct {
	Key    string `json:"key"`
	Parent string `json:"parent"`
}

// MissingFolder is a valid JD folder on disk that has no index entry
type MissingFolder struct {
	Key  string    `json:"key"`
	Name string    `json:"name"`
	Type EntryType `json:"type"`
}

// CheckResult holds the four categories of drift between index and disk
type CheckResult struct {
	InvalidEntries []InvalidEntry  `json:"invalidEntries"`
	OrphanParents  []OrphanParent  `json:"orphanParents"`
	MissingOnDisk  []string        `json:"missingOnDisk"`
	MissingInIndex []MissingFolder `json:"missingInIndex"`
}

// IsConsistent reports whether no issue of any kind was found
func (r CheckResult) IsConsistent() bool {
	return r.IssueCount() == 0
}

// IssueCount returns the total number of findings
func (r CheckResult) IssueCount() int {
	return len(r.InvalidEntries) + len(r.OrphanParents) + len(r.MissingOnDisk) + len(r.MissingInIndex)
}
