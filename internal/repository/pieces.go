package repository

import (
	"context"
	"errors"
	"fmt"

	"art-collector/internal/domain/works"

	"gorm.io/gorm"
)

type Pieces struct {
	db *gorm.DB
}

func NewPieces(db *gorm.DB) *Pieces {
	return &Pieces{db: db}
}

func (r *Pieces) ListByUser(ctx context.Context, userID string, filter works.ArchivalFilter) ([]works.ArtPiece, error) {
	var pieces []works.ArtPiece
	err := userPiecesQuery(r.db.WithContext(ctx), userID).
		Scopes(archivalScope(filter)).
		Order("created_at DESC").
		Find(&pieces).Error
	if err != nil {
		return nil, fmt.Errorf("list pieces: %w", err)
	}
	return pieces, nil
}

func (r *Pieces) FindByUser(ctx context.Context, userID, id string) (*works.ArtPiece, error) {
	var p works.ArtPiece
	err := userPiecesQuery(r.db.WithContext(ctx), userID).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find piece: %w", err)
	}
	return &p, nil
}

func (r *Pieces) Create(ctx context.Context, p *works.ArtPiece) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(p).Error; err != nil {
		return fmt.Errorf("create piece: %w", err)
	}
	return nil
}

func (r *Pieces) Save(ctx context.Context, p *works.ArtPiece) error {
	if err := r.db.WithContext(ctx).Omit("User").Save(p).Error; err != nil {
		return fmt.Errorf("save piece: %w", err)
	}
	return nil
}

func (r *Pieces) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Delete(&works.ArtPiece{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return fmt.Errorf("delete piece: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Pieces) DeleteAllByUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&works.ArtPiece{}).Error; err != nil {
		return fmt.Errorf("delete pieces of user: %w", err)
	}
	return nil
}
