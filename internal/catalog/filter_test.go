package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnimal(id int, name, region string) Animal {
	return Animal{ID: id, Name: name, Type: "perro", Region: region}
}

func TestFilterByRegionAllIsIdentity(t *testing.T) {
	animals := []Animal{
		testAnimal(1, "Luna", "Biobío"),
		testAnimal(2, "Rocky", "Metropolitana"),
		testAnimal(3, "Pelusa", "Narnia"), // non-canonical region stays visible under "all"
	}

	got := FilterByRegion(animals, RegionAll)

	assert.Equal(t, animals, got, "RegionAll must return the dataset unchanged, same order")
}

func TestFilterByRegion(t *testing.T) {
	animals := []Animal{
		testAnimal(1, "Luna", "Biobío"),
		testAnimal(2, "Rocky", "Metropolitana"),
		testAnimal(3, "Mota", "Biobío"),
		testAnimal(4, "Kira", "Valparaíso"),
		testAnimal(5, "Chispa", "Biobío"),
	}

	tests := []struct {
		name    string
		region  string
		wantIDs []int
	}{
		{name: "matching subset preserves order", region: "Biobío", wantIDs: []int{1, 3, 5}},
		{name: "single match", region: "Valparaíso", wantIDs: []int{4}},
		{name: "region with no records", region: "Magallanes", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByRegion(animals, tt.region)

			gotIDs := make([]int, 0, len(got))
			for _, a := range got {
				assert.Equal(t, tt.region, a.Region)
				gotIDs = append(gotIDs, a.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterByRegionEmptyDataset(t *testing.T) {
	assert.Empty(t, FilterByRegion(nil, "Biobío"))
	assert.Empty(t, FilterByRegion(nil, RegionAll))
}

func TestAvailableRegionsCanonicalOrder(t *testing.T) {
	// Dataset deliberately ordered south to north; the result must follow
	// the canonical north-to-south ordering instead.
	animals := []Animal{
		testAnimal(1, "Luna", "Magallanes"),
		testAnimal(2, "Rocky", "Biobío"),
		testAnimal(3, "Mota", "Tarapacá"),
		testAnimal(4, "Kira", "Biobío"),
		testAnimal(5, "Chispa", "Metropolitana"),
	}

	got := AvailableRegions(animals)

	assert.Equal(t, []string{"Tarapacá", "Metropolitana", "Biobío", "Magallanes"}, got)
}

func TestAvailableRegionsExcludesUnknown(t *testing.T) {
	animals := []Animal{
		testAnimal(1, "Luna", "Biobío"),
		testAnimal(2, "Rocky", "Narnia"),
		testAnimal(3, "Mota", ""),
	}

	got := AvailableRegions(animals)

	assert.Equal(t, []string{"Biobío"}, got, "unexpected region values are not selectable")
}

func TestAvailableRegionsNoDuplicates(t *testing.T) {
	animals := []Animal{
		testAnimal(1, "Luna", "Maule"),
		testAnimal(2, "Rocky", "Maule"),
		testAnimal(3, "Mota", "Maule"),
	}

	got := AvailableRegions(animals)

	require.Len(t, got, 1)
	assert.Equal(t, "Maule", got[0])
}

func TestAvailableRegionsEmptyDataset(t *testing.T) {
	assert.Empty(t, AvailableRegions(nil))
}
