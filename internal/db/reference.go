package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ChaseHampton/headstones/internal/record"
)

func (s *Store) loadReference(ctx context.Context) (*record.Reference, error) {
	ref := &record.Reference{}

	var cemeteries []CemeteryDto
	if err := s.selectLookup(ctx, &cemeteries, "CemeteryNames", "ID AS id", "CemeteryName AS name", "KeyName AS key_name"); err != nil {
		return nil, err
	}
	for _, c := range cemeteries {
		ref.Cemeteries = append(ref.Cemeteries, c.Record())
	}
	sort.SliceStable(ref.Cemeteries, func(i, j int) bool { return ref.Cemeteries[i].Name < ref.Cemeteries[j].Name })

	var emblems []EmblemDto
	if err := s.selectLookup(ctx, &emblems, "EmblemList", "CODE AS code", "Emblem AS name"); err != nil {
		return nil, err
	}
	sort.SliceStable(emblems, func(i, j int) bool { return emblems[i].Code.Int64 < emblems[j].Code.Int64 })
	for _, e := range emblems {
		ref.Emblems = append(ref.Emblems, e.Record())
	}

	var locations []LocationDto
	if err := s.selectLookup(ctx, &locations, "LocationList", "ID AS id", "LocationAbbrev AS abbrev", "Location AS name"); err != nil {
		return nil, err
	}
	for _, l := range locations {
		ref.Locations = append(ref.Locations, l.Record())
	}
	sort.SliceStable(ref.Locations, func(i, j int) bool { return ref.Locations[i].Name < ref.Locations[j].Name })

	var branches []BranchDto
	if err := s.selectLookup(ctx, &branches, "BranchList", "Code AS code", "Branch of Service AS branch_of_service", "Short Description AS short_description"); err != nil {
		return nil, err
	}
	for _, b := range branches {
		ref.Branches = append(ref.Branches, b.Record())
	}
	sort.SliceStable(ref.Branches, func(i, j int) bool { return ref.Branches[i].Code < ref.Branches[j].Code })

	var wars []WarDto
	if err := s.selectLookup(ctx, &wars, "WarList", "Code AS code", "Short Description AS short_description"); err != nil {
		return nil, err
	}
	for _, w := range wars {
		ref.Wars = append(ref.Wars, w.Record())
	}
	sort.SliceStable(ref.Wars, func(i, j int) bool { return ref.Wars[i].Code < ref.Wars[j].Code })

	var awards []AwardDto
	if err := s.selectLookup(ctx, &awards, "AwardList", "CODE AS code", "AWARD AS award"); err != nil {
		return nil, err
	}
	for _, a := range awards {
		ref.Awards = append(ref.Awards, a.Record())
	}
	sort.SliceStable(ref.Awards, func(i, j int) bool { return ref.Awards[i].Code < ref.Awards[j].Code })

	return ref, nil
}

// selectLookup reads a lookup table. Each column is written "Column AS alias";
// the column part is quoted for the driver.
func (s *Store) selectLookup(ctx context.Context, dest interface{}, table string, columns ...string) error {
	query := "SELECT "
	for i, c := range columns {
		if i > 0 {
			query += ", "
		}
		name, alias := splitAlias(c)
		query += s.quote(name) + " AS " + alias
	}
	query += " FROM " + s.quote(table)

	if err := s.db.SelectContext(ctx, dest, query); err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}
	return nil
}

func splitAlias(c string) (name, alias string) {
	i := strings.LastIndex(c, " AS ")
	if i < 0 {
		return c, strings.ToLower(c)
	}
	return c[:i], c[i+len(" AS "):]
}
