package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ChaseHampton/headstones/internal/config"
	"github.com/ChaseHampton/headstones/internal/record"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/microsoft/go-mssqldb"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func init() {
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

// Store is the headstone datastore. It holds a single connection and serves one
// caller at a time.
type Store struct {
	mu     sync.Mutex
	db     *sqlx.DB
	driver string
	source string
	logger *zap.Logger

	ids []string
	ref *record.Reference
}

// Open locates and connects to the datastore, checks its schema, and caches the
// row identifiers and lookup tables.
func Open(ctx context.Context, cfg config.DbConfig, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	source, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("driver", cfg.Driver), zap.String("source", source))

	conn, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		logger.Error("failed to connect to datastore", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	s := &Store{db: conn, driver: cfg.Driver, source: source, logger: logger}
	if err := s.load(ctx); err != nil {
		logger.Error("failed to open datastore", zap.Error(err))
		conn.Close()
		return nil, err
	}
	logger.Info("datastore opened", zap.Int("records", len(s.ids)))
	return s, nil
}

func dataSource(cfg config.DbConfig) (source, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		path, err := Discover(cfg.Dir, cfg.FileSuffix)
		if err != nil {
			return "", "", err
		}
		return path, path, nil
	case config.DriverSQLServer:
		dsn := fmt.Sprintf("server=%s;port=%d;database=%s;user id=%s;password=%s;encrypt=true;trustservercertificate=true",
			cfg.Host, cfg.Port, cfg.DBName, cfg.User, cfg.Password)
		return cfg.Host + "/" + cfg.DBName, dsn, nil
	default:
		return cfg.Driver, cfg.URL, nil
	}
}

func (s *Store) load(ctx context.Context) error {
	if err := s.validateSchema(ctx); err != nil {
		return err
	}

	var raw []sql.NullString
	query := fmt.Sprintf("SELECT %s FROM %s", s.quote(sequenceColumn), s.quote(masterTable))
	if err := s.db.SelectContext(ctx, &raw, query); err != nil {
		return fmt.Errorf("failed to read sequence ids: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if !id.Valid || strings.TrimSpace(id.String) == "" {
			return fmt.Errorf("%w: %s has a row without a %s", ErrSchema, masterTable, sequenceColumn)
		}
		ids = append(ids, id.String)
	}
	sort.Strings(ids)

	ref, err := s.loadReference(ctx)
	if err != nil {
		return err
	}
	s.ids = ids
	s.ref = ref
	return nil
}

func (s *Store) quote(ident string) string {
	return quoteIdent(s.driver, ident)
}

// Source names the file or server the store is reading.
func (s *Store) Source() string {
	return s.source
}

func (s *Store) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Reference returns a copy of the lookup tables loaded at open. Changing it does
// not affect the keys later writes compute.
func (s *Store) Reference() *record.Reference {
	return s.ref.Clone()
}

// sequenceID resolves a 1-based index. The caller holds s.mu.
func (s *Store) sequenceID(index int) (string, error) {
	if s.db == nil {
		return "", ErrClosed
	}
	if index < 1 || index > len(s.ids) {
		return "", &LookupError{Index: index, Err: ErrIndexOutOfRange}
	}
	return s.ids[index-1], nil
}

// ReadRecord returns the headstone at a 1-based position in SequenceID order.
func (s *Store) ReadRecord(ctx context.Context, index int) (*record.Headstone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.sequenceID(index)
	if err != nil {
		s.logger.Warn("read rejected", zap.Int("index", index), zap.Error(err))
		return nil, err
	}

	query := s.db.Rebind(fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", s.quote(masterTable), s.quote(sequenceColumn)))
	raw := map[string]interface{}{}
	if err := s.db.QueryRowxContext(ctx, query, id).MapScan(raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		err = &LookupError{Index: index, SequenceID: id, Err: err}
		s.logger.Error("failed to read headstone", zap.Int("index", index), zap.String("sequence_id", id), zap.Error(err))
		return nil, err
	}

	row := make(map[string]string, len(raw))
	for k, v := range raw {
		row[strings.ToLower(k)] = stringify(v)
	}
	return decodeHeadstone(row), nil
}

// WriteRecord stores h over the row at index. Every field is converted before
// anything runs; a conversion failure returns a *BindError and leaves the row as
// it was. On success h.PrimaryKey holds the recomputed key.
func (s *Store) WriteRecord(ctx context.Context, index int, h *record.Headstone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.sequenceID(index)
	if err != nil {
		s.logger.Warn("write rejected", zap.Int("index", index), zap.Error(err))
		return err
	}

	staged := *h
	staged.Normalize()
	staged.PrimaryKey = staged.ComposePrimaryKey(s.ref.CemeteryKey(staged.CemeteryName))

	var (
		sets    []string
		args    []interface{}
		bindErr error
	)
	for _, f := range masterFields {
		if f.readOnly {
			continue
		}
		v, err := bindValue(f, *f.ptr(&staged))
		if err != nil {
			bindErr = multierr.Append(bindErr, err)
			continue
		}
		sets = append(sets, s.quote(f.column)+" = ?")
		args = append(args, v)
	}
	if bindErr != nil {
		err := NewBindError(index, bindErr)
		s.logger.Warn("headstone not written", zap.Int("index", index), zap.Strings("columns", err.Columns()))
		return err
	}
	args = append(args, id)

	query := s.db.Rebind(fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		s.quote(masterTable), strings.Join(sets, ", "), s.quote(sequenceColumn)))

	if err := s.update(ctx, query, args); err != nil {
		if !errors.Is(err, ErrNotFound) {
			err = fmt.Errorf("%w: %w", ErrPersist, err)
		}
		err = &LookupError{Index: index, SequenceID: id, Err: err}
		s.logger.Error("failed to write headstone", zap.Int("index", index), zap.String("sequence_id", id), zap.Error(err))
		return err
	}
	h.PrimaryKey = staged.PrimaryKey
	s.logger.Debug("headstone written", zap.Int("index", index), zap.String("primary_key", h.PrimaryKey))
	return nil
}

func (s *Store) update(ctx context.Context, query string, args []interface{}) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func bindValue(f field, v string) (interface{}, error) {
	if !f.numeric {
		return sql.NullString{String: v, Valid: v != ""}, nil
	}
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return sql.NullInt64{}, nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil, &FieldError{Column: f.column, Value: v, Err: err}
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}

// GravesiteNumber returns the gravesite column for index, or "" when the index
// is outside the table.
func (s *Store) GravesiteNumber(ctx context.Context, index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.sequenceID(index)
	if errors.Is(err, ErrIndexOutOfRange) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var gravesite sql.NullString
	query := s.db.Rebind(fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		s.quote("GravesiteNumber"), s.quote(masterTable), s.quote(sequenceColumn)))
	if err := s.db.GetContext(ctx, &gravesite, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		err = &LookupError{Index: index, SequenceID: id, Err: err}
		s.logger.Error("failed to read gravesite", zap.Int("index", index), zap.Error(err))
		return "", err
	}
	return gravesite.String, nil
}

// Close releases the connection. Calling it again does nothing.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.logger.Debug("datastore closed")
	return err
}

// InitFile creates a new sqlite datastore at path with an empty schema.
func InitFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrConfiguration, path)
	}
	conn, err := sqlx.ConnectContext(ctx, config.DriverSQLite, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer conn.Close()
	return CreateSchema(ctx, conn, config.DriverSQLite)
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprint(t)
	}
}
