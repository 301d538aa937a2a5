package service

import "strings"

// SplitMigration cuts a migration script into statements on ';'. Each
// statement is trimmed, blanks are dropped and the terminator is put back.
// Semicolons inside literals or trigger bodies are not understood.
func SplitMigration(script string) []string {
	var statements []string
	for _, part := range strings.Split(script, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt+";")
		}
	}
	return statements
}
