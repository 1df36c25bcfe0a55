package models

// DuplicateKind classifies two remote updates that share one GUID.
// It is used for diagnostics only and never changes which update wins.
type DuplicateKind string

const (
	DuplicateSameURL              DuplicateKind = "same_url"
	DuplicateDifferentURL         DuplicateKind = "different_url"
	DuplicateSameFolderTitle      DuplicateKind = "same_folder_title"
	DuplicateDifferentFolderTitle DuplicateKind = "different_folder_title"
	DuplicateKindMismatch         DuplicateKind = "kind_mismatch"
)

// MergeReport collects diagnostics of a single initial merge. None of the
// counted conditions aborts the merge.
type MergeReport struct {
	// Remote input.
	Updates   int `json:"updates"`
	Deletions int `json:"deletions"`

	// Invalid counts dropped updates by validation failure reason.
	Invalid map[string]int `json:"invalid,omitempty"`

	// Duplicates counts GUID collisions by classification.
	Duplicates map[DuplicateKind]int `json:"duplicates,omitempty"`

	// SkippedPermanentFolders counts permanent-folder updates with an
	// unknown tag or with no local counterpart.
	SkippedPermanentFolders int `json:"skipped_permanent_folders"`

	// Orphans counts updates whose parent was never reached.
	Orphans int `json:"orphans"`

	// TooDeep counts updates below a node sitting at the depth cap.
	TooDeep int `json:"too_deep"`

	// NonFolderChildren counts updates whose parent is a bookmark.
	NonFolderChildren int `json:"non_folder_children"`

	// Outcome.
	GUIDMatches     int `json:"guid_matches"`
	SemanticMatches int `json:"semantic_matches"`
	RemoteCreations int `json:"remote_creations"`
	LocalCreations  int `json:"local_creations"`
	ReassignedGUIDs int `json:"reassigned_guids"`
	Reuploads       int `json:"reuploads"`
}

// NewMergeReport returns a report with initialized counters.
func NewMergeReport() MergeReport {
	return MergeReport{
		Invalid:    make(map[string]int),
		Duplicates: make(map[DuplicateKind]int),
	}
}

// InvalidTotal returns the number of updates dropped by validation.
func (r MergeReport) InvalidTotal() int {
	total := 0
	for _, n := range r.Invalid {
		total += n
	}
	return total
}

// DuplicatesTotal returns the number of discarded duplicate updates.
func (r MergeReport) DuplicatesTotal() int {
	total := 0
	for _, n := range r.Duplicates {
		total += n
	}
	return total
}
