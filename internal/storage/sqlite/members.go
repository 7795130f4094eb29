package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/models"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage"
)

// CreateMember inserts a new member into the database.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, email, display_name, created_at) VALUES (?, ?, ?, ?)",
		member.ID, member.Email, member.DisplayName, member.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("member with email %s: %w", member.Email, storage.ErrConflict)
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// GetMembersByIDs retrieves multiple members by their IDs.
// Returns a map of member ID to Member object.
// Members that don't exist are omitted from the result.
func (s *SQLiteStore) GetMembersByIDs(ctx context.Context, ids []string) (map[string]*models.Member, error) {
	members := make(map[string]*models.Member)
	if len(ids) == 0 {
		return members, nil
	}

	query := `
		SELECT id, email, display_name, created_at
		FROM members
		WHERE id IN (` + placeholders(len(ids)) + `)`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members by IDs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		member := &models.Member{}
		if err := rows.Scan(&member.ID, &member.Email, &member.DisplayName, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members[member.ID] = member
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}

// placeholders returns "?, ?, ..." with n placeholders for IN clauses.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
