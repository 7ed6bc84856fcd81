package db

import (
	"strconv"
	"strings"

	"github.com/ChaseHampton/headstones/internal/record"
)

const (
	masterTable    = "Master"
	sequenceColumn = "SequenceID"
)

// field binds one Master column to a string in the headstone graph.
type field struct {
	column   string
	numeric  bool
	readOnly bool
	ptr      func(h *record.Headstone) *string
}

var masterFields = buildMasterFields()

func buildMasterFields() []field {
	fields := []field{
		{column: sequenceColumn, readOnly: true, ptr: func(h *record.Headstone) *string { return &h.SequenceID }},
		{column: "PrimaryKey", ptr: func(h *record.Headstone) *string { return &h.PrimaryKey }},
		{column: "CemeteryName", ptr: func(h *record.Headstone) *string { return &h.CemeteryName }},
		{column: "BurialSectionNumber", ptr: func(h *record.Headstone) *string { return &h.BurialSectionNumber }},
		{column: "Wall", ptr: func(h *record.Headstone) *string { return &h.WallID }},
		{column: "RowNumber", ptr: func(h *record.Headstone) *string { return &h.RowNumber }},
		{column: "GravesiteNumber", ptr: func(h *record.Headstone) *string { return &h.GravesiteNumber }},
		{column: "MarkerType", ptr: func(h *record.Headstone) *string { return &h.MarkerType }},
		{column: "Emblem1", numeric: true, ptr: func(h *record.Headstone) *string { return &h.Emblem1 }},
		{column: "Emblem2", numeric: true, ptr: func(h *record.Headstone) *string { return &h.Emblem2 }},
		{column: "FrontFilename", readOnly: true, ptr: func(h *record.Headstone) *string { return &h.Image1FilePath }},
		{column: "BackFilename", readOnly: true, ptr: func(h *record.Headstone) *string { return &h.Image2FilePath }},
	}
	for slot := 0; slot < record.DecedentSlots; slot++ {
		fields = append(fields, slotFields(slot)...)
	}
	return fields
}

// slotSuffix is the column suffix for a decedent slot: none for the primary,
// S_D for the second, then S_D_2 through S_D_6.
func slotSuffix(slot int) string {
	switch slot {
	case 0:
		return ""
	case 1:
		return "S_D"
	default:
		return "S_D_" + strconv.Itoa(slot)
	}
}

func slotFields(slot int) []field {
	layout := record.Layouts[slot]
	sfx := slotSuffix(slot)
	person := func(h *record.Headstone) *record.Person { return h.Decedent(slot) }

	text := func(column string, get func(p *record.Person) *string) field {
		return field{column: column, ptr: func(h *record.Headstone) *string { return get(person(h)) }}
	}
	repeated := func(base string, n int, get func(p *record.Person) []string) []field {
		out := make([]field, 0, n)
		for i := 0; i < n; i++ {
			column := base
			if i > 0 {
				column += strconv.Itoa(i + 1)
			}
			out = append(out, field{
				column: column + sfx,
				ptr:    func(h *record.Headstone) *string { return &get(person(h))[i] },
			})
		}
		return out
	}

	fields := []field{
		text("FirstName"+sfx, func(p *record.Person) *string { return &p.FirstName }),
		text("MiddleName"+sfx, func(p *record.Person) *string { return &p.MiddleName }),
		text("LastName"+sfx, func(p *record.Person) *string { return &p.LastName }),
		text("Suffix"+sfx, func(p *record.Person) *string { return &p.Suffix }),
		text("Location"+sfx, func(p *record.Person) *string { return &p.Location }),
	}
	fields = append(fields, repeated("Rank", layout.Ranks, func(p *record.Person) []string { return p.Ranks })...)
	fields = append(fields, repeated("Award", layout.Awards, func(p *record.Person) []string { return p.Awards })...)
	if layout.AwardCustom {
		fields = append(fields, text("Awards_Custom"+sfx, func(p *record.Person) *string { return &p.AwardCustom }))
	}
	fields = append(fields, repeated("War", layout.Wars, func(p *record.Person) []string { return p.Wars })...)
	fields = append(fields, repeated("Branch", layout.Branches, func(p *record.Person) []string { return p.Branches })...)
	if layout.BranchCustom {
		fields = append(fields, text(branchUnitColumn(slot), func(p *record.Person) *string { return &p.BranchUnitCustom }))
	}
	fields = append(fields,
		text("BirthDate"+sfx, func(p *record.Person) *string { return &p.BirthDate }),
		text("DeathDate"+sfx, func(p *record.Person) *string { return &p.DeathDate }),
	)
	if layout.Inscription {
		fields = append(fields, text("Inscription"+sfx, func(p *record.Person) *string { return &p.Inscription }))
	}
	return fields
}

// The primary decedent's custom branch column ends in V rather than an empty suffix.
func branchUnitColumn(slot int) string {
	if slot == 0 {
		return "Branch-Unit_CustomV"
	}
	return "Branch-Unit_Custom" + slotSuffix(slot)
}

// decodeHeadstone copies a Master row, keyed by lower-cased column name, into a
// new headstone. Columns missing from the row read as "".
func decodeHeadstone(row map[string]string) *record.Headstone {
	h := record.NewHeadstone()
	for _, f := range masterFields {
		*f.ptr(h) = row[strings.ToLower(f.column)]
	}
	h.Normalize()
	return h
}

// MasterColumns lists every Master column the mapper reads, in schema order.
func MasterColumns() []string {
	out := make([]string, len(masterFields))
	for i, f := range masterFields {
		out[i] = f.column
	}
	return out
}
