package checks

import (
	"fmt"
	"reflect"
	"strings"

	"follow-checker/core/database"
	"follow-checker/core/resultcache"

	"gorm.io/gorm"
)

// CacheReport is the result of a cache schema check.
type CacheReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Errors         []string `json:"errors"`
}

// CheckCacheSchema verifies the result cache table against the
// resultcache.CachedResult model.
func CheckCacheSchema(db *gorm.DB) (*CacheReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &CacheReport{
		Table:          resultcache.TableName,
		Matched:        true,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Errors:         []string{},
	}

	columns, err := database.GetTableColumns(db, resultcache.TableName)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", resultcache.TableName, err))
		report.Matched = false
		return report, nil
	}
	if len(columns) == 0 {
		report.Errors = append(report.Errors, fmt.Sprintf("Table %s does not exist", resultcache.TableName))
	}
	actual := database.ColumnsByName(columns)

	model := reflect.TypeOf(resultcache.CachedResult{})
	for i := 0; i < model.NumField(); i++ {
		tag := model.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(tag)
		if colName == "" {
			continue
		}

		col, ok := actual[colName]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Matched = false
			continue
		}

		// Only columns declaring type: are type checked
		expType := strings.ToLower(parseGormType(tag))
		if expType != "" && !strings.Contains(col.Type, expType) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
			report.Matched = false
		}
	}

	return report, nil
}

func parseGormColumn(tag string) string {
	return gormTagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return gormTagValue(tag, "type:")
}

func gormTagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
