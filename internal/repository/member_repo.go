package repository

import (
	"context"

	"coworking/internal/domain"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) List(ctx context.Context, status domain.MemberStatus) ([]domain.Member, error) {
	q := r.db.WithContext(ctx).Model(&domain.Member{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var members []domain.Member
	if err := q.Order("name").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *MemberRepository) UpdateStatus(ctx context.Context, id int64, status domain.MemberStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Member{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
