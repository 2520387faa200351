package repository

import (
	"context"

	"github.com/akinalp/serverdir/models"
)

// ServerRepository, sunucu ve üyelik veritabanı işlemleri için interface.
type ServerRepository interface {
	// Create, sunucuyu ve başlangıç üyelerini tek transaction'da kaydeder.
	Create(ctx context.Context, server *models.Server, memberIDs ...int64) error
	GetByID(ctx context.Context, id int64) (*models.Server, error)
	// Delete, sunucuyu siler. Kanalları ve üyelikleri cascade ile gider.
	Delete(ctx context.Context, id int64) error

	AddMember(ctx context.Context, serverID, userID int64) error
	RemoveMember(ctx context.Context, serverID, userID int64) error
	GetMemberCount(ctx context.Context, serverID int64) (int, error)

	// Find, ServerQuery'yi çalıştırır. Sunucular sorgunun çalışma kümesi
	// sırasıyla döner. Sorgu WithMemberCount ile kurulduysa ikinci dönüş
	// değeri server id → üye sayısı map'idir, aksi halde nil.
	Find(ctx context.Context, q ServerQuery) ([]models.Server, map[int64]int, error)
}
