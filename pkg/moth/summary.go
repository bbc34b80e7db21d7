package moth

// Summary holds the counters of a run.
type Summary struct {
	RunID string `json:"run_id" yaml:"run_id"`

	// TaxonRows is the number of data lines read from the Taxon table.
	TaxonRows int `json:"taxon_rows" yaml:"taxon_rows"`

	Moths       int `json:"moths" yaml:"moths"`
	Butterflies int `json:"butterflies" yaml:"butterflies"`

	// Synonyms counts synonyms attached to moths after pruning.
	Synonyms int `json:"synonyms" yaml:"synonyms"`

	// UnnamedSynonyms lack genus or epithet and were dropped.
	UnnamedSynonyms int `json:"unnamed_synonyms" yaml:"unnamed_synonyms"`

	// DanglingSynonyms point to taxa that are not moths.
	DanglingSynonyms int `json:"dangling_synonyms" yaml:"dangling_synonyms"`

	Misapplied int `json:"misapplied" yaml:"misapplied"`
	Irrelevant int `json:"irrelevant" yaml:"irrelevant"`

	// Duplicates are moth rows repeating an already seen taxon ID.
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	MalformedRows  int `json:"malformed_rows" yaml:"malformed_rows"`
	RepairFailures int `json:"repair_failures" yaml:"repair_failures"`

	// BadEntries is the user-facing sum of malformed rows and moth rows
	// that failed repair.
	BadEntries int `json:"bad_entries" yaml:"bad_entries"`

	// AuxMalformedRows counts malformed rows of the auxiliary tables.
	AuxMalformedRows int `json:"aux_malformed_rows" yaml:"aux_malformed_rows"`

	BlacklistSize int `json:"blacklist_size" yaml:"blacklist_size"`
	CollisionSize int `json:"collision_size" yaml:"collision_size"`
}
