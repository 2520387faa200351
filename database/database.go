// Package database, SQLite bağlantısını ve migration sistemini yönetir.
//
// modernc.org/sqlite driver'ı blank import ile kayıt olur ("sqlite" adıyla).
// Foreign key'ler bağlantı açılırken aktif edilir: kategori/sunucu/kanal
// cascade silme kuralları şemadaki ON DELETE CASCADE'e dayanır.
package database

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/akinalp/serverdir/pkg/logger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver: CGO gerekmez
)

// DB, veritabanı bağlantısını saran struct.
// *sql.DB goroutine-safe bir connection pool'dur; tüm repository'ler paylaşır.
type DB struct {
	Conn *sql.DB
}

// New, SQLite bağlantısı açar ve migrationsFS içindeki *.sql dosyalarını uygular.
//
// dbPath: SQLite dosya yolu (ör: "./data/serverdir.db")
// migrationsFS: kök dizininde migration dosyaları olan fs.FS (embed.FS alt dizini veya os.DirFS)
func New(dbPath string, migrationsFS fs.FS) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// foreign_keys(1) → FK constraint'leri ve cascade'ler (SQLite'ta varsayılan kapalı!)
	// journal_mode(WAL) → okumalar yazmaları beklemez
	// busy_timeout → kısa yazma kilitlerinde SQLITE_BUSY yerine bekle
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{Conn: conn}
	if err := db.migrate(migrationsFS); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.L.Info("database ready", zap.String("path", dbPath))
	return db, nil
}

// Close, veritabanı bağlantısını kapatır.
func (db *DB) Close() error {
	return db.Conn.Close()
}

// migrate, henüz uygulanmamış migration dosyalarını isim sırasıyla çalıştırır
// (001_init.sql, 002_..., ...). Uygulananlar schema_migrations'a yazılır,
// sonraki açılışlarda atlanır.
func (db *DB) migrate(migrationsFS fs.FS) error {
	if _, err := db.Conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   TEXT PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	files, err := migrationFiles(migrationsFS)
	if err != nil {
		return err
	}

	applied, err := db.appliedMigrations()
	if err != nil {
		return err
	}

	for _, file := range files {
		if applied[file] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		// Dosya ve kaydı tek transaction: yarım kalan migration kayıtlı görünmez.
		tx, err := db.Conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", file, err)
		}
		for i, stmt := range splitStatements(string(content)) {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to execute migration %s (statement %d): %w", file, i+1, err)
			}
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (filename) VALUES (?)", file); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", file, err)
		}

		logger.L.Info("migration applied", zap.String("file", file))
	}

	return nil
}

// migrationFiles, FS kökündeki .sql dosyalarını alfabetik sırayla döner.
func migrationFiles(migrationsFS fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(migrationsFS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func (db *DB) appliedMigrations() (map[string]bool, error) {
	rows, err := db.Conn.Query("SELECT filename FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate migration rows: %w", err)
	}

	return applied, nil
}

// splitStatements, SQL metnini noktalı virgüllerden statement'lara böler.
// Tek tırnaklı string literal içindeki ';' ve "--" satır yorumları dikkate alınır.
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder
	inString := false

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			statements = append(statements, s)
		}
		current.Reset()
	}

	for i := 0; i < len(script); i++ {
		ch := script[i]

		switch {
		case !inString && ch == '-' && i+1 < len(script) && script[i+1] == '-':
			// Satır sonuna kadar yorum
			for i < len(script) && script[i] != '\n' {
				i++
			}
			current.WriteByte('\n')
			continue
		case ch == '\'':
			// '' escape'i literal içinde kalır
			if inString && i+1 < len(script) && script[i+1] == '\'' {
				current.WriteString("''")
				i++
				continue
			}
			inString = !inString
		case ch == ';' && !inString:
			flush()
			continue
		}

		current.WriteByte(ch)
	}
	flush()

	return statements
}
