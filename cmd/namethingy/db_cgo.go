//go:build cgo_sqlite

package main

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// openDB translates the modernc-style _pragma parameters into the ones
// go-sqlite3 understands so one database_path works for both drivers.
func openDB(dataSource string) (*sql.DB, error) {
	replacer := strings.NewReplacer(
		"_pragma=journal_mode(WAL)", "_journal_mode=WAL",
		"_pragma=busy_timeout(5000)", "_busy_timeout=5000",
	)
	return sql.Open("sqlite3", replacer.Replace(dataSource))
}
