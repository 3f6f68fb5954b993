package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one table column.
type ColumnInfo struct {
	Field string
	Type  string
}

// GetTableColumns returns the columns of tableName with lower-cased names and types.
// A table that does not exist yields no columns.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo

	if db.Dialector.Name() == "sqlite" {
		type sqliteColumn struct {
			Name string
			Type string
		}
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, col := range rows {
			columns = append(columns, ColumnInfo{Field: col.Name, Type: col.Type})
		}
	} else {
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
	}

	for i := range columns {
		columns[i].Field = strings.ToLower(columns[i].Field)
		columns[i].Type = strings.ToLower(columns[i].Type)
	}
	return columns, nil
}

// MissingColumns returns which of want are not columns of tableName.
func MissingColumns(db *gorm.DB, tableName string, want ...string) ([]string, error) {
	columns, err := GetTableColumns(db, tableName)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		have[col.Field] = struct{}{}
	}

	var missing []string
	for _, name := range want {
		if _, ok := have[strings.ToLower(name)]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
