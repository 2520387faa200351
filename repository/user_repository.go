// Package repository, veritabanı erişim katmanını tanımlar.
//
// Service katmanı doğrudan SQL yazmaz: repository interface'leri üzerinden
// çalışır. Her interface'in bir SQLite implementasyonu (sqlite_*.go) vardır.
//
// Yazma method'ları (Create/Delete/AddMember) HTTP'ye açık değildir;
// seed ve test akışları tarafından kullanılır. Listeleme yolu salt okunurdur.
package repository

import (
	"context"

	"github.com/akinalp/serverdir/models"
)

// UserRepository, kimlik kayıtları için interface.
// Her method context.Context alır: HTTP isteği iptal edilirse sorgu da durur.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// Delete, kullanıcıyı siler. FK cascade ile sahibi olduğu sunucular,
	// kanallar ve üyelikleri de silinir.
	Delete(ctx context.Context, id int64) error
}
