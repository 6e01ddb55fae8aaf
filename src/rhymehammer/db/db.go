package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log"
)

//go:embed scripts/*.sql
var bootstrapScripts embed.FS

// BootstrapDB executes every embedded .sql script against the provided database, in alphabetical order by
// filename. Scripts must be idempotent; they run on every startup.
func BootstrapDB(DB *sql.DB) error {
	scripts, err := bootstrapScripts.ReadDir("scripts")
	if err != nil {
		return err
	}
	found := false
	for _, finfo := range scripts {
		if finfo.IsDir() {
			continue
		}
		found = true

		script, err := bootstrapScripts.ReadFile("scripts/" + finfo.Name())
		if err != nil {
			return err
		}
		if _, err = DB.Exec(string(script)); err != nil {
			log.Printf("could not execute bootstrap script %s: %v", finfo.Name(), err)
			return fmt.Errorf("bootstrap script %s: %w", finfo.Name(), err)
		}
		log.Printf("executed bootstrap script %s", finfo.Name())
	}
	if !found {
		return fmt.Errorf("could not find any *.sql files in schema folder scripts")
	}
	return nil
}
