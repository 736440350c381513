package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/dimitrije/kisan-api/internal/database"
	"github.com/dimitrije/kisan-api/internal/filter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PostgresStore keeps each collection in a table of JSONB documents created
// by database.Migrate.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Find(ctx context.Context, collection string, f filter.Filter, opts FindOptions) ([]json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	query, args := buildFind(collection, f, opts)
	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []json.RawMessage{}
	for rows.Next() {
		var doc json.RawMessage
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var doc json.RawMessage
	err := s.db.Pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, collection), id,
	).Scan(&doc)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, doc Document) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	_, err := s.db.Pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, collection), doc.ID, doc.Body,
	)
	return duplicate(err)
}

// InsertMany inserts docs in order inside one transaction.
func (s *PostgresStore) InsertMany(ctx context.Context, collection string, docs []Document) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stmt := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, collection)
	for _, doc := range docs {
		if _, err := tx.Exec(ctx, stmt, doc.ID, doc.Body); err != nil {
			return duplicate(err)
		}
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) Merge(ctx context.Context, collection, id string, patch json.RawMessage) (json.RawMessage, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	var doc json.RawMessage
	err := s.db.Pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1 RETURNING doc`, collection),
		id, patch,
	).Scan(&doc)
	if err != nil {
		return nil, notFound(err)
	}
	return doc, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, collection string, doc Document) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	_, err := s.db.Pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`, collection), doc.ID, doc.Body)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}

	result, err := s.db.Pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, collection), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteAll(ctx context.Context, collection string) (int64, error) {
	if err := checkCollection(collection); err != nil {
		return 0, err
	}

	result, err := s.db.Pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, collection))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Pool.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.db.Close()
}

// buildFind renders the SELECT for a filter. Paths and needles travel as
// parameters; only the collection name, checked against the known tables, is
// interpolated.
var plainKey = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// sortExpr inlines plain key paths so ORDER BY matches the expression
// indexes created by migrations. Anything else is passed as a parameter.
func sortExpr(path filter.Path, param func(any) string) string {
	for _, key := range path {
		if !plainKey.MatchString(key) {
			return fmt.Sprintf("(doc #>> %s::text[])", param([]string(path)))
		}
	}
	return fmt.Sprintf("(doc #>> '{%s}')", strings.Join(path, ","))
}

func buildFind(collection string, f filter.Filter, opts FindOptions) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	param := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	fmt.Fprintf(&sb, "SELECT doc FROM %s", collection)

	for i, clause := range f.Clauses {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}

		terms := make([]string, len(clause.Paths))
		for j, path := range clause.Paths {
			field := fmt.Sprintf("(doc #>> %s::text[])", param([]string(path)))
			switch clause.Match {
			case filter.Equals:
				terms[j] = fmt.Sprintf("%s = %s", field, param(clause.Value))
			default:
				terms[j] = fmt.Sprintf("%s ILIKE '%%' || %s || '%%'", field, param(escapeLike(clause.Value)))
			}
		}
		if len(terms) == 0 {
			terms = []string{"FALSE"}
		}
		sb.WriteString("(" + strings.Join(terms, " OR ") + ")")
	}

	sb.WriteString(" ORDER BY ")
	for _, key := range opts.Sort {
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, "%s %s, ", sortExpr(key.Path, param), dir)
	}
	sb.WriteString("seq ASC")

	if opts.Limit > 0 {
		sb.WriteString(" LIMIT " + param(opts.Limit))
	}
	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a needle match literally under LIKE's default escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func checkCollection(name string) error {
	if !slices.Contains(database.Collections, name) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func duplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateID, pgErr.Detail)
	}
	return err
}
