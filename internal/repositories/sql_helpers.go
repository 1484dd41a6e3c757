package repositories

import (
	"encoding/json"
	"fmt"
	"strings"
)

// columnMap maps JSON field names, as the terminal sends them, to the
// corresponding table column. Partial updates (PUT) carry an arbitrary
// subset of fields; anything outside the map is rejected.
type columnMap struct {
	columns  map[string]string
	jsonCols map[string]bool
}

// buildPartialUpdate renders a whitelisted partial update into a SET clause
// and argument list. Nested values destined for JSON text columns are
// re-marshaled; scalars pass through untouched.
func (cm columnMap) buildPartialUpdate(table string, fields map[string]interface{}, accountID, id string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrDatabaseError)
	}

	var setClauses []string
	var args []interface{}
	argCount := 1

	for field, value := range fields {
		if field == "id" || field == "accountId" {
			continue
		}
		column, ok := cm.columns[field]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown field %q for table %s", ErrDatabaseError, field, table)
		}
		if cm.jsonCols[field] {
			encoded, err := json.Marshal(value)
			if err != nil {
				return "", nil, fmt.Errorf("%w: encoding field %q: %v", ErrDatabaseError, field, err)
			}
			value = string(encoded)
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argCount))
		args = append(args, value)
		argCount++
	}
	if len(setClauses) == 0 {
		return "", nil, fmt.Errorf("%w: no updatable fields", ErrDatabaseError)
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND account_id = $%d",
		table, strings.Join(setClauses, ", "), argCount, argCount+1)
	args = append(args, id, accountID)
	return query, args, nil
}

// updateRow executes a whitelisted partial update and maps zero affected
// rows to ErrNotFound.
func updateRow(executor SQLExecutor, cm columnMap, table string, fields map[string]interface{}, accountID, id string) error {
	query, args, err := cm.buildPartialUpdate(table, fields, accountID, id)
	if err != nil {
		return err
	}
	result, err := executor.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%w: updating %s ID %s: %v", ErrDatabaseError, table, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for %s ID %s: %v", ErrDatabaseError, table, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteRow removes one record scoped by account and maps zero affected
// rows to ErrNotFound.
func deleteRow(executor SQLExecutor, table, accountID, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND account_id = $2", table)
	result, err := executor.Exec(query, id, accountID)
	if err != nil {
		return fmt.Errorf("%w: deleting from %s ID %s: %v", ErrDatabaseError, table, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting %s ID %s: %v", ErrDatabaseError, table, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// marshalJSONColumn encodes a nested structure for storage in a JSON text
// column; nil slices become empty arrays so the terminal always rehydrates
// a list.
func marshalJSONColumn(v interface{}) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: encoding JSON column: %v", ErrDatabaseError, err)
	}
	if string(encoded) == "null" {
		return "[]", nil
	}
	return string(encoded), nil
}

// unmarshalJSONColumn decodes a JSON text column into dest, tolerating NULL
// and empty strings from rows written by older builds.
func unmarshalJSONColumn(raw string, dest interface{}) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("%w: decoding JSON column: %v", ErrDatabaseError, err)
	}
	return nil
}
