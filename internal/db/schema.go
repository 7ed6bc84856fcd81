package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChaseHampton/headstones/internal/config"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// lookupTables lists the reference tables with the columns the loader reads.
var lookupTables = []struct {
	name    string
	columns []string
	numeric map[string]bool
}{
	{"CemeteryNames", []string{"ID", "CemeteryName", "KeyName"}, map[string]bool{"ID": true}},
	{"EmblemList", []string{"CODE", "Emblem"}, map[string]bool{"CODE": true}},
	{"LocationList", []string{"ID", "LocationAbbrev", "Location"}, map[string]bool{"ID": true}},
	{"BranchList", []string{"Code", "Branch of Service", "Short Description"}, nil},
	{"WarList", []string{"Code", "Short Description"}, nil},
	{"AwardList", []string{"CODE", "AWARD"}, nil},
}

// quoteIdent quotes a table or column name for the driver. Several Master and
// lookup columns contain spaces or hyphens.
func quoteIdent(driver, ident string) string {
	if driver == config.DriverSQLServer {
		return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

func columnTypes(driver string) (key, text, integer string) {
	if driver == config.DriverSQLServer {
		return "NVARCHAR(255)", "NVARCHAR(MAX)", "INT"
	}
	return "TEXT", "TEXT", "INTEGER"
}

// CreateSchema creates the Master table and the lookup tables.
func CreateSchema(ctx context.Context, db *sqlx.DB, driver string) error {
	q := func(ident string) string { return quoteIdent(driver, ident) }
	keyType, textType, intType := columnTypes(driver)

	cols := make([]string, 0, len(masterFields))
	for _, f := range masterFields {
		switch {
		case f.column == sequenceColumn:
			cols = append(cols, q(f.column)+" "+keyType+" PRIMARY KEY")
		case f.numeric:
			cols = append(cols, q(f.column)+" "+intType)
		default:
			cols = append(cols, q(f.column)+" "+textType)
		}
	}
	statements := []string{fmt.Sprintf("CREATE TABLE %s (%s)", q(masterTable), strings.Join(cols, ", "))}

	for _, t := range lookupTables {
		cols := make([]string, 0, len(t.columns))
		for _, c := range t.columns {
			typ := textType
			if t.numeric[c] {
				typ = intType
			}
			cols = append(cols, q(c)+" "+typ)
		}
		statements = append(statements, fmt.Sprintf("CREATE TABLE %s (%s)", q(t.name), strings.Join(cols, ", ")))
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// validateSchema checks that Master and every lookup table carry the columns the
// mapper addresses by name, so drift fails here instead of misreading rows later.
func (s *Store) validateSchema(ctx context.Context) error {
	if err := s.checkColumns(ctx, masterTable, MasterColumns()); err != nil {
		return err
	}
	for _, t := range lookupTables {
		if err := s.checkColumns(ctx, t.name, t.columns); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) checkColumns(ctx context.Context, table string, expected []string) error {
	rows, err := s.db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE 1 = 0", s.quote(table)))
	if err != nil {
		return fmt.Errorf("%w: cannot read table %s: %w", ErrSchema, table, err)
	}
	defer rows.Close()

	actual, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("%w: cannot list columns of %s: %w", ErrSchema, table, err)
	}
	present := make(map[string]bool, len(actual))
	for _, c := range actual {
		present[strings.ToLower(c)] = true
	}
	var missing []string
	for _, c := range expected {
		if !present[strings.ToLower(c)] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Table: table, Missing: missing}
	}
	s.logger.Debug("schema verified", zap.String("table", table), zap.Int("columns", len(actual)))
	return nil
}
