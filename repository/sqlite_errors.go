package repository

import "strings"

// SQLite constraint hataları driver'dan metin olarak gelir
// (ör: "constraint failed: UNIQUE constraint failed: users.username (2067)").

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
