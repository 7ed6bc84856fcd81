package db

import (
	"database/sql"
	"strings"

	"github.com/ChaseHampton/headstones/internal/catalog"
	"github.com/ChaseHampton/headstones/internal/record"
)

type CemeteryDto struct {
	ID      sql.NullInt64  `db:"id"`
	Name    sql.NullString `db:"name"`
	KeyName sql.NullString `db:"key_name"`
}

type EmblemDto struct {
	Code sql.NullInt64  `db:"code"`
	Name sql.NullString `db:"name"`
}

type LocationDto struct {
	ID     sql.NullInt64  `db:"id"`
	Abbrev sql.NullString `db:"abbrev"`
	Name   sql.NullString `db:"name"`
}

type BranchDto struct {
	Code             sql.NullString `db:"code"`
	BranchOfService  sql.NullString `db:"branch_of_service"`
	ShortDescription sql.NullString `db:"short_description"`
}

type WarDto struct {
	Code             sql.NullString `db:"code"`
	ShortDescription sql.NullString `db:"short_description"`
}

type AwardDto struct {
	Code  sql.NullString `db:"code"`
	Award sql.NullString `db:"award"`
}

func upper(s sql.NullString) string {
	return strings.ToUpper(strings.TrimSpace(s.String))
}

func (d CemeteryDto) Record() record.Cemetery {
	return record.Cemetery{ID: int(d.ID.Int64), Name: upper(d.Name), Key: upper(d.KeyName)}
}

func (d EmblemDto) Record() record.Emblem {
	code := int(d.Code.Int64)
	return record.Emblem{Code: catalog.PadCode(code), Name: upper(d.Name), Image: catalog.EmblemImagePath(code)}
}

func (d LocationDto) Record() record.Location {
	return record.Location{ID: int(d.ID.Int64), Abbr: upper(d.Abbrev), Name: upper(d.Name)}
}

func (d BranchDto) Record() record.Branch {
	return record.Branch{Code: upper(d.Code), BranchOfService: upper(d.BranchOfService), ShortDescription: upper(d.ShortDescription)}
}

func (d WarDto) Record() record.War {
	return record.War{Code: upper(d.Code), ShortDescription: upper(d.ShortDescription)}
}

func (d AwardDto) Record() record.Award {
	return record.Award{Code: upper(d.Code), Award: upper(d.Award)}
}
