package duplicates_test

import (
	"testing"

	"github.com/ChaseHampton/headstones/internal/duplicates"
	"github.com/ChaseHampton/headstones/internal/record"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func headstone(id, cemetery, section, row, site string) *record.Headstone {
	h := record.NewHeadstone()
	h.SequenceID = id
	h.CemeteryName = cemetery
	h.BurialSectionNumber = section
	h.RowNumber = row
	h.GravesiteNumber = site
	return h
}

func TestFind(t *testing.T) {
	ref := &record.Reference{Cemeteries: []record.Cemetery{{ID: 1, Name: "FORT SNELLING", Key: "FS"}}}
	list := []*record.Headstone{
		headstone("A", "Fort Snelling", "A", "1", "12"),
		headstone("B", "FORT SNELLING", "A", "1", "13"),
		headstone("C", "fort snelling", "A", "1", "12"),
		headstone("D", "", "", "", ""),
		headstone("E", "", "", "", ""),
		headstone("F", "Unknown", "B", "2", "1"),
		headstone("G", "", "B", "2", "1"),
	}

	got := duplicates.Find(list, ref)
	want := []duplicates.Group{
		{PrimaryKey: "-B-2-1", Indexes: []int{6, 7}, SequenceIDs: []string{"F", "G"}},
		{PrimaryKey: "FS-A-1-12", Indexes: []int{1, 3}, SequenceIDs: []string{"A", "C"}},
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestFind_NoDuplicates(t *testing.T) {
	ref := &record.Reference{}
	list := []*record.Headstone{
		headstone("A", "", "A", "1", "1"),
		headstone("B", "", "A", "1", "2"),
	}
	assert.Empty(t, duplicates.Find(list, ref))
	assert.Empty(t, duplicates.Find(nil, ref))
}
