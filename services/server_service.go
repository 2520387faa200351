package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
	"github.com/akinalp/serverdir/repository"
)

// ErrAuthenticationRequired, by_user filtresi anonim çağıranla kullanıldığında döner.
var ErrAuthenticationRequired = fmt.Errorf("%w: authentication credentials were not provided", pkg.ErrUnauthorized)

// ServerService, sunucu listeleme interface'i.
type ServerService interface {
	// List, parametreleri sabit sırayla uygular ve sonucu response kaydı
	// olarak şekillendirir:
	//   category → by_user → with_num_members → qty → by_serverid
	// Her adım bir öncekinin daralttığı küme üzerinde çalışır.
	List(ctx context.Context, params models.ServerListParams, identity models.Identity) ([]models.ServerRecord, error)
}

type serverService struct {
	serverRepo  repository.ServerRepository
	channelRepo repository.ChannelRepository
}

func NewServerService(
	serverRepo repository.ServerRepository,
	channelRepo repository.ChannelRepository,
) ServerService {
	return &serverService{
		serverRepo:  serverRepo,
		channelRepo: channelRepo,
	}
}

// listResult, filtre zincirinin çıktısı. Üye sayıları Server'a yazılmaz,
// server id → sayı map'inde taşınır.
type listResult struct {
	servers  []models.Server
	counts   map[int64]int
	channels map[int64][]models.Channel
	shaping  models.ShapingContext
}

func (s *serverService) List(ctx context.Context, params models.ServerListParams, identity models.Identity) ([]models.ServerRecord, error) {
	result, err := s.compose(ctx, params, identity)
	if err != nil {
		return nil, err
	}
	return shapeServers(result), nil
}

// compose, parametreleri tek bir ServerQuery'ye dönüştürüp çalıştırır.
//
// Validation hataları sorgu çalışmadan döner. Hata sırası adım sırasıdır:
// auth, sonra qty, sonra by_serverid.
func (s *serverService) compose(ctx context.Context, params models.ServerListParams, identity models.Identity) (*listResult, error) {
	q := repository.NewServerQuery()

	if params.Category != nil {
		q = q.FilterByCategoryName(*params.Category)
	}

	if params.ByUser {
		if !identity.IsAuthenticated() {
			return nil, ErrAuthenticationRequired
		}
		q = q.FilterByMember(identity.CurrentIdentityID())
	}

	if params.WithNumMembers {
		q = q.WithMemberCount()
	}

	if params.Qty != nil {
		n, err := parseQty(*params.Qty)
		if err != nil {
			return nil, err
		}
		q = q.Limit(n)
	}

	if params.ByServerID != nil {
		id, err := parseServerID(*params.ByServerID)
		if err != nil {
			return nil, err
		}
		q = q.FilterByID(id)
	}

	servers, counts, err := s.serverRepo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	if params.ByServerID != nil && len(servers) == 0 {
		return nil, fmt.Errorf("%w: Server with id %s not found", pkg.ErrBadRequest, *params.ByServerID)
	}

	ids := make([]int64, len(servers))
	for i, srv := range servers {
		ids[i] = srv.ID
	}
	channels, err := s.channelRepo.GetByServerIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load server channels: %w", err)
	}

	return &listResult{
		servers:  servers,
		counts:   counts,
		channels: channels,
		shaping:  models.ShapingContext{WithNumMembers: params.WithNumMembers},
	}, nil
}

func parseQty(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid qty value %q: must be a non-negative integer", pkg.ErrBadRequest, raw)
	}
	return n, nil
}

func parseServerID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid by_serverid value %q: must be an integer", pkg.ErrBadRequest, raw)
	}
	return id, nil
}

// shapeServers, sonuçları response kayıtlarına çevirir. num_members sadece
// ShapingContext istediğinde set edilir. Kanalı olmayan sunucuda liste boştur, nil değil.
func shapeServers(result *listResult) []models.ServerRecord {
	records := make([]models.ServerRecord, 0, len(result.servers))

	for _, srv := range result.servers {
		rec := models.ServerRecord{
			ID:          srv.ID,
			Name:        srv.Name,
			Owner:       srv.OwnerID,
			Category:    srv.CategoryName,
			Description: srv.Description,
			Channels:    make([]models.ChannelRecord, 0, len(result.channels[srv.ID])),
		}

		for _, ch := range result.channels[srv.ID] {
			rec.Channels = append(rec.Channels, models.ChannelRecord{
				ID:     ch.ID,
				Name:   ch.Name,
				Topic:  ch.Topic,
				Owner:  ch.OwnerID,
				Server: ch.ServerID,
			})
		}

		if result.shaping.WithNumMembers {
			count := result.counts[srv.ID]
			rec.NumMembers = &count
		}

		records = append(records, rec)
	}

	return records
}
