package repository

import (
	"context"

	"github.com/akinalp/serverdir/models"
)

// ChannelRepository, kanal veritabanı işlemleri için interface.
type ChannelRepository interface {
	// Create, kanalı kaydeder. İsim küçük harfe çevrilerek yazılır.
	Create(ctx context.Context, channel *models.Channel) error
	// GetByServerIDs, verilen sunuculara ait kanalları server_id → kanallar
	// map'i olarak döner. Kanal sırası id'ye göredir.
	GetByServerIDs(ctx context.Context, serverIDs []int64) (map[int64][]models.Channel, error)
	Delete(ctx context.Context, id int64) error
}
