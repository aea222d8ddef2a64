package repository

import (
	"art-collector/internal/domain/works"

	"gorm.io/gorm"
)

func userPiecesQuery(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&works.ArtPiece{}).
		Where("user_id = ?", userID)
}

func archivalScope(filter works.ArchivalFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch filter {
		case works.ArchivalHide:
			return db.Where("archival = ?", false)
		case works.ArchivalShowOnly:
			return db.Where("archival = ?", true)
		default:
			return db
		}
	}
}
