package database

import (
	"embed"
	"io/fs"
)

// embeddedMigrations, migrations/ dizinindeki SQL dosyalarını binary'ye gömer.
//
//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, gömülü migration dosyalarını kökü migrations/ olan bir FS olarak döner.
// New'e doğrudan verilebilir.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// "migrations" sabit ve derleme zamanında doğrulanmış bir path: buraya düşülmez.
		panic(err)
	}
	return sub
}
