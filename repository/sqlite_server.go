package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/serverdir/database"
	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/pkg"
)

// sqliteServerRepo, ServerRepository'nin SQLite implementasyonu.
// Create transaction açtığı için TxQuerier değil *sql.DB alır.
type sqliteServerRepo struct {
	db *sql.DB
}

// NewSQLiteServerRepo, constructor.
func NewSQLiteServerRepo(db *sql.DB) ServerRepository {
	return &sqliteServerRepo{db: db}
}

// ─── Server CRUD ───

func (r *sqliteServerRepo) Create(ctx context.Context, server *models.Server, memberIDs ...int64) error {
	if err := server.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO servers (name, owner_id, category_id, description)
			VALUES (?, ?, ?, ?)
			RETURNING id`,
			server.Name, server.OwnerID, server.CategoryID, server.Description,
		).Scan(&server.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: server owner or category does not exist", pkg.ErrBadRequest)
			}
			return fmt.Errorf("failed to create server: %w", err)
		}

		for _, userID := range memberIDs {
			if err := addMember(ctx, tx, server.ID, userID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *sqliteServerRepo) GetByID(ctx context.Context, id int64) (*models.Server, error) {
	servers, _, err := r.Find(ctx, NewServerQuery().FilterByID(id))
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return nil, pkg.ErrNotFound
	}
	return &servers[0], nil
}

func (r *sqliteServerRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM servers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
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

// ─── Üyelik ───

func (r *sqliteServerRepo) AddMember(ctx context.Context, serverID, userID int64) error {
	return addMember(ctx, r.db, serverID, userID)
}

// addMember, üyeliği ekler. Zaten üyeyse sessizce geçer (INSERT OR IGNORE).
func addMember(ctx context.Context, db database.TxQuerier, serverID, userID int64) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO server_members (server_id, user_id) VALUES (?, ?)`,
		serverID, userID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: server or user does not exist", pkg.ErrBadRequest)
		}
		return fmt.Errorf("failed to add server member: %w", err)
	}
	return nil
}

func (r *sqliteServerRepo) RemoveMember(ctx context.Context, serverID, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM server_members WHERE server_id = ? AND user_id = ?`,
		serverID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove server member: %w", err)
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

func (r *sqliteServerRepo) GetMemberCount(ctx context.Context, serverID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM server_members WHERE server_id = ?`, serverID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get member count: %w", err)
	}

	return count, nil
}

// ─── Sorgu ───

func (r *sqliteServerRepo) Find(ctx context.Context, q ServerQuery) ([]models.Server, map[int64]int, error) {
	query, args := q.build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query servers: %w", err)
	}
	defer rows.Close()

	servers := []models.Server{}
	var counts map[int64]int
	if q.CountsMembers() {
		counts = make(map[int64]int)
	}

	for rows.Next() {
		var s models.Server
		var numMembers sql.NullInt64
		if err := rows.Scan(
			&s.ID, &s.Name, &s.OwnerID, &s.CategoryID,
			&s.CategoryName, &s.Description, &numMembers,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan server row: %w", err)
		}
		servers = append(servers, s)

		if counts != nil {
			counts[s.ID] = int(numMembers.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating server rows: %w", err)
	}

	return servers, counts, nil
}
