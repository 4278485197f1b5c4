package database

import (
	"context"
	"fmt"
	"strings"

	"gridiron/csvdata"

	"gorm.io/gorm"
)

const maxBatchParams = 10000

// ReplaceTable drops name and recreates it from t, one column per CSV column
// with the inferred type. The whole replacement runs in one transaction.
func ReplaceTable(ctx context.Context, db *gorm.DB, name string, t *csvdata.Table) (int64, error) {
	if len(t.Columns) == 0 {
		return 0, fmt.Errorf("table %s: no columns", name)
	}

	var inserted int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(name) {
			if err := tx.Migrator().DropTable(name); err != nil {
				return fmt.Errorf("drop %s: %w", name, err)
			}
		}
		if err := tx.Exec(createStatement(tx, name, t.Columns)).Error; err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if len(t.Rows) == 0 {
			return nil
		}

		records := make([]map[string]interface{}, len(t.Rows))
		for i, row := range t.Rows {
			rec := make(map[string]interface{}, len(t.Columns))
			for j, col := range t.Columns {
				rec[columnName(col.Name)] = row[j]
			}
			records[i] = rec
		}

		res := tx.Table(name).CreateInBatches(records, batchSize(len(t.Columns)))
		if res.Error != nil {
			return fmt.Errorf("insert into %s: %w", name, res.Error)
		}
		inserted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func createStatement(db *gorm.DB, name string, cols []csvdata.Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = db.Statement.Quote(columnName(c.Name)) + " " + sqlType(db.Dialector.Name(), c.Kind)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", db.Statement.Quote(name), strings.Join(defs, ", "))
}

// columnName flattens the name.N suffix given to repeated headers, which the
// dialect quoting would otherwise read as a qualified name.
func columnName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

func sqlType(dialect string, k csvdata.Kind) string {
	if dialect == "postgres" {
		switch k {
		case csvdata.KindInteger:
			return "BIGINT"
		case csvdata.KindReal:
			return "DOUBLE PRECISION"
		case csvdata.KindBoolean:
			return "BOOLEAN"
		default:
			return "TEXT"
		}
	}
	switch k {
	case csvdata.KindInteger, csvdata.KindBoolean:
		return "INTEGER"
	case csvdata.KindReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// batchSize keeps a single insert under the bind parameter limits of both
// drivers.
func batchSize(columns int) int {
	n := maxBatchParams / columns
	switch {
	case n < 1:
		return 1
	case n > 500:
		return 500
	}
	return n
}
