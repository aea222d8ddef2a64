package service

import (
	"context"

	"art-collector/internal/domain/media"
	"art-collector/internal/domain/users"
	"art-collector/internal/domain/works"
)

type PieceRepository interface {
	ListByUser(ctx context.Context, userID string, filter works.ArchivalFilter) ([]works.ArtPiece, error)
	FindByUser(ctx context.Context, userID, id string) (*works.ArtPiece, error)
	Create(ctx context.Context, p *works.ArtPiece) error
	Save(ctx context.Context, p *works.ArtPiece) error
	Delete(ctx context.Context, userID, id string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

type UserRepository interface {
	Create(ctx context.Context, u *users.User) error
	FindByID(ctx context.Context, id string) (*users.User, error)
	FindByUsername(ctx context.Context, username string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	Update(ctx context.Context, id string, columns map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ImageStorage hosts uploaded images. Destroy releases one object by its
// storage key.
type ImageStorage interface {
	Upload(ctx context.Context, up media.Upload) (media.Image, error)
	Destroy(ctx context.Context, filename string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SheetWriter interface {
	WritePieces(path string, pieces []works.ArtPiece) error
}
