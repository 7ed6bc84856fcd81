package duplicates

import (
	"sort"
	"strings"

	"github.com/ChaseHampton/headstones/internal/record"
)

// Group is a primary key claimed by more than one headstone. Indexes are the
// 1-based positions the store reads them at.
type Group struct {
	PrimaryKey  string   `json:"primaryKey" yaml:"primary_key"`
	Indexes     []int    `json:"indexes" yaml:"indexes"`
	SequenceIDs []string `json:"sequenceIds" yaml:"sequence_ids"`
}

// Find groups headstones whose recomputed primary key collides. Keys with no
// location part at all, such as "---", are skipped.
func Find(headstones []*record.Headstone, ref *record.Reference) []Group {
	byKey := make(map[string]*Group)
	var order []string
	for i, h := range headstones {
		key := h.ComposePrimaryKey(ref.CemeteryKey(h.CemeteryName))
		if strings.Trim(key, "-") == "" {
			continue
		}
		g, ok := byKey[key]
		if !ok {
			g = &Group{PrimaryKey: key}
			byKey[key] = g
			order = append(order, key)
		}
		g.Indexes = append(g.Indexes, i+1)
		g.SequenceIDs = append(g.SequenceIDs, h.SequenceID)
	}

	var out []Group
	for _, key := range order {
		if g := byKey[key]; len(g.Indexes) > 1 {
			out = append(out, *g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PrimaryKey < out[j].PrimaryKey })
	return out
}
