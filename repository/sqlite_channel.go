package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/serverdir/database"
	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
)

// sqliteChannelRepo, ChannelRepository interface'inin SQLite implementasyonu.
type sqliteChannelRepo struct {
	db database.TxQuerier
}

// NewSQLiteChannelRepo, constructor. Interface döner.
func NewSQLiteChannelRepo(db database.TxQuerier) ChannelRepository {
	return &sqliteChannelRepo{db: db}
}

func (r *sqliteChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	if err := channel.Normalize(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	query := `
		INSERT INTO channels (name, owner_id, topic, server_id)
		VALUES (?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		channel.Name,
		channel.OwnerID,
		channel.Topic,
		channel.ServerID,
	).Scan(&channel.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: channel server or owner does not exist", pkg.ErrBadRequest)
		}
		return fmt.Errorf("failed to create channel: %w", err)
	}

	return nil
}

func (r *sqliteChannelRepo) GetByServerIDs(ctx context.Context, serverIDs []int64) (map[int64][]models.Channel, error) {
	byServer := make(map[int64][]models.Channel, len(serverIDs))
	if len(serverIDs) == 0 {
		return byServer, nil
	}

	// IN (?, ?, ...): placeholder sayısı id sayısı kadar.
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(serverIDs)), ", ")
	args := make([]any, len(serverIDs))
	for i, id := range serverIDs {
		args[i] = id
	}

	query := `
		SELECT id, name, owner_id, topic, server_id
		FROM channels WHERE server_id IN (` + placeholders + `)
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get channels by server: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ch models.Channel
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.OwnerID, &ch.Topic, &ch.ServerID); err != nil {
			return nil, fmt.Errorf("failed to scan channel row: %w", err)
		}
		byServer[ch.ServerID] = append(byServer[ch.ServerID], ch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating channel rows: %w", err)
	}

	return byServer, nil
}

func (r *sqliteChannelRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM channels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}
