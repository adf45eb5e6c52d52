package catalog

// FilterByRegion returns the records whose Region equals region, preserving
// the dataset's relative order. The RegionAll sentinel returns the dataset
// unchanged. The function is pure: it never mutates its input and is safe to
// recompute on every render.
func FilterByRegion(animals []Animal, region string) []Animal {
	if region == RegionAll {
		return animals
	}

	filtered := make([]Animal, 0, len(animals))
	for _, a := range animals {
		if a.Region == region {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// AvailableRegions returns the distinct regions actually present in the
// dataset, ordered by CanonicalRegions regardless of dataset order. Regions
// outside the canonical list are not selectable and are omitted; their
// records remain visible under RegionAll.
func AvailableRegions(animals []Animal) []string {
	present := make(map[string]bool, len(regionRank))
	for _, a := range animals {
		if IsCanonicalRegion(a.Region) {
			present[a.Region] = true
		}
	}

	regions := make([]string, 0, len(present))
	for _, r := range CanonicalRegions {
		if present[r] {
			regions = append(regions, r)
		}
	}
	return regions
}
