package achievements

// Unlocked reports whether an achievement id has already been earned.
type Unlocked interface {
	Has(id string) bool
}

// Check returns the catalog entries newly satisfied by stats, in catalog
// order. Entries already in unlocked are skipped before their requirement
// is looked at. Check has no side effects; merging the ids is the caller's
// job.
func Check(catalog []Definition, stats Stats, unlocked Unlocked) []Definition {
	var newly []Definition
	for _, def := range catalog {
		if unlocked != nil && unlocked.Has(def.ID) {
			continue
		}
		if def.Requirement == nil {
			continue
		}
		if def.Requirement.satisfiedBy(stats) {
			newly = append(newly, def)
		}
	}
	return newly
}

// Progress counts unlocked catalog entries, for the "N / M unlocked" line.
func Progress(catalog []Definition, unlocked Unlocked) (done, total int) {
	for _, def := range catalog {
		if unlocked != nil && unlocked.Has(def.ID) {
			done++
		}
	}
	return done, len(catalog)
}
