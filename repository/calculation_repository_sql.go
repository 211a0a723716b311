package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"calc-suite/domain"
)

// Dialect selects the SQL flavour spoken by SQLCalculationRepository.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DialectFor picks postgres for postgres:// URLs and sqlite for anything
// else, which is treated as a file path.
func DialectFor(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// SQLCalculationRepository persists calculation history in sqlite or postgres.
type SQLCalculationRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLCalculationRepository opens dsn and creates the calculations table
// when missing.
func NewSQLCalculationRepository(ctx context.Context, dsn string) (*SQLCalculationRepository, error) {
	if dsn == "" {
		return nil, errors.New("empty database dsn")
	}
	dialect := DialectFor(dsn)
	driver := "pgx"
	if dialect == DialectSQLite {
		driver = "sqlite"
		if dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
				return nil, fmt.Errorf("create dirs: %w", err)
			}
		}
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		// a single connection keeps :memory: databases alive and serializes writers
		db.SetMaxOpenConns(1)
	}
	r := &SQLCalculationRepository{db: db, dialect: dialect}
	if err := r.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLCalculationRepository) migrate(ctx context.Context) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if r.dialect == DialectPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS calculations (
			id ` + idColumn + `,
			tool TEXT NOT NULL,
			cache_key TEXT NOT NULL,
			input TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS calculations_tool_created ON calculations (tool, created_at)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate calculations: %w", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders as $n for postgres.
func (r *SQLCalculationRepository) rebind(query string) string {
	if r.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *SQLCalculationRepository) Save(ctx context.Context, calc domain.Calculation) error {
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		r.rebind(`INSERT INTO calculations (tool, cache_key, input, result, created_at) VALUES (?, ?, ?, ?, ?)`),
		string(calc.Tool), calc.Key, calc.Input, calc.Result, calc.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

func (r *SQLCalculationRepository) Recent(ctx context.Context, tool domain.Tool, limit int) ([]domain.Calculation, error) {
	rows, err := r.db.QueryContext(ctx,
		r.rebind(`SELECT id, tool, cache_key, input, result, created_at FROM calculations WHERE tool = ? ORDER BY created_at DESC, id DESC LIMIT ?`),
		string(tool), normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("select calculations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Calculation{}
	for rows.Next() {
		var (
			c       domain.Calculation
			toolCol string
			created int64
		)
		if err := rows.Scan(&c.ID, &toolCol, &c.Key, &c.Input, &c.Result, &created); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		c.Tool = domain.Tool(toolCol)
		c.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return out, nil
}

func (r *SQLCalculationRepository) Close() error {
	return r.db.Close()
}
