package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aliyacapital/seriesdash/internal/db"
	"github.com/aliyacapital/seriesdash/internal/models"
)

// rpcQueryExecutor sends the query to the run_sql database function, which
// validates it and returns each result row as a JSON object.
type rpcQueryExecutor struct {
	db *db.DB
}

// NewRPCQueryExecutor executes queries through run_sql(q).
func NewRPCQueryExecutor(database *db.DB) QueryExecutor {
	return &rpcQueryExecutor{db: database}
}

func (e *rpcQueryExecutor) Execute(ctx context.Context, query string) (*models.QueryResult, error) {
	sqlDB, err := e.db.GetSQLDB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	rows, err := sqlDB.QueryContext(ctx, "SELECT run_sql FROM run_sql($1)", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &models.QueryResult{Columns: []string{}, Rows: []map[string]any{}}
	known := make(map[string]bool)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan run_sql row: %w", err)
		}
		keys, values, err := decodeOrderedObject(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode run_sql row: %w", err)
		}
		for _, k := range keys {
			if !known[k] {
				known[k] = true
				result.Columns = append(result.Columns, k)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// decodeOrderedObject decodes a JSON object keeping its key order.
func decodeOrderedObject(data []byte) ([]string, map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	values := make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, nil, err
		}
		if _, dup := values[key]; !dup {
			keys = append(keys, key)
		}
		values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}

// directQueryExecutor runs the query itself inside a read-only transaction.
// It is meant for databases without run_sql, such as local development.
type directQueryExecutor struct {
	db *db.DB
}

// NewDirectQueryExecutor executes queries directly against the database.
func NewDirectQueryExecutor(database *db.DB) QueryExecutor {
	return &directQueryExecutor{db: database}
}

func (e *directQueryExecutor) Execute(ctx context.Context, query string) (*models.QueryResult, error) {
	sqlDB, err := e.db.GetSQLDB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	tx, err := sqlDB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read-only transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	result := &models.QueryResult{Columns: cols, Rows: []map[string]any{}}
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		m := make(map[string]any, len(cols))
		for i, c := range cols {
			if b, ok := cells[i].([]byte); ok {
				m[c] = string(b)
				continue
			}
			m[c] = cells[i]
		}
		result.Rows = append(result.Rows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
