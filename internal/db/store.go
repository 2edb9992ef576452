package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sobriety-backend/internal/analysis"
)

// ErrDuplicateCheckIn is returned when the user already has a check-in with
// the same status on that day.
var ErrDuplicateCheckIn = errors.New("duplicate check-in")

// Store is the gorm-backed persistence used by the HTTP handlers.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FetchCheckIns loads every check-in of a user, oldest first.
func (s *Store) FetchCheckIns(ctx context.Context, userID string) ([]analysis.CheckInRecord, error) {
	var rows []CheckIn
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("date asc, id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch check-ins of %s: %w", userID, err)
	}
	records := make([]analysis.CheckInRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.ToRecord())
	}
	return records, nil
}

func (s *Store) CreateCheckIn(ctx context.Context, c *CheckIn) error {
	return checkInCreateErr(s.db.WithContext(ctx).Create(c).Error)
}

func checkInCreateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateCheckIn
	default:
		return fmt.Errorf("create check-in: %w", err)
	}
}

// CountCheckIns counts check-in rows with the given status across all users.
func (s *Store) CountCheckIns(ctx context.Context, status analysis.Status) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&CheckIn{}).Where("status = ?", string(status)).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count %s check-ins: %w", status, err)
	}
	return n, nil
}

// CountUsers counts distinct users that have checked in at least once.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&CheckIn{}).Distinct("user_id").Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (s *Store) CountUserChatsSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&ChatRecord{}).
		Where("user_id = ? AND is_user = ? AND created_at >= ?", userID, true, since).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count chats: %w", err)
	}
	return n, nil
}

func (s *Store) CreateChatRecord(ctx context.Context, r *ChatRecord) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create chat record: %w", err)
	}
	return nil
}

func (s *Store) ListChatRecords(ctx context.Context, userID string) ([]ChatRecord, error) {
	var records []ChatRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc, id asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list chat records: %w", err)
	}
	return records, nil
}

// ListResources returns crisis resources first, then newest first.
func (s *Store) ListResources(ctx context.Context) ([]Resource, error) {
	var resources []Resource
	if err := s.db.WithContext(ctx).Order("crisis desc, created_at desc").Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

func (s *Store) CreateResource(ctx context.Context, r *Resource) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}
