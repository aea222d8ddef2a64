package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"art-collector/internal/domain/media"
	"art-collector/internal/domain/users"
	"art-collector/internal/domain/works"
	"art-collector/internal/infra/spreadsheet"
	"art-collector/internal/logger"
	"art-collector/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CollectionService struct {
	pieces    PieceRepository
	storage   ImageStorage
	sheets    SheetWriter
	exportDir string
	validate  *validator.Validate
	log       *logger.Logger
}

func NewCollectionService(pieces PieceRepository, storage ImageStorage, sheets SheetWriter, exportDir string, log *logger.Logger) *CollectionService {
	if exportDir == "" {
		exportDir = os.TempDir()
	}
	return &CollectionService{
		pieces:    pieces,
		storage:   storage,
		sheets:    sheets,
		exportDir: exportDir,
		validate:  newValidator(),
		log:       log,
	}
}

// PieceUpdate is a partial edit of a piece. Fields names the form keys that
// were actually submitted; everything else keeps its stored value.
type PieceUpdate struct {
	Form         PieceForm
	Fields       []string
	Uploads      []media.Upload
	MakeDefault  []string
	DeleteImages []string
}

func (s *CollectionService) List(ctx context.Context, userID string, filter works.ArchivalFilter) ([]works.ArtPiece, error) {
	pieces, err := s.pieces.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	return pieces, nil
}

func (s *CollectionService) Get(ctx context.Context, userID, id string) (*works.ArtPiece, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrPieceNotFound
	}
	p, err := s.pieces.FindByUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPieceNotFound
		}
		return nil, fmt.Errorf("get piece: %w", err)
	}
	return p, nil
}

// Create validates the form and uploads before anything is stored. Images
// keep their upload order.
func (s *CollectionService) Create(ctx context.Context, userID string, form PieceForm, uploads []media.Upload) (*works.ArtPiece, error) {
	if err := s.check(form, uploads); err != nil {
		return nil, err
	}

	p := &works.ArtPiece{UserID: userID}
	form.applyTo(p, nil)

	images, err := s.upload(ctx, uploads)
	if err != nil {
		return nil, err
	}
	p.Images = images

	if err := s.pieces.Create(ctx, p); err != nil {
		s.release(ctx, images)
		return nil, fmt.Errorf("create piece: %w", err)
	}

	s.log.Info().Str("user_id", userID).Str("piece_id", p.ID).Int("images", len(images)).Msg("piece created")
	return p, nil
}

func (s *CollectionService) Update(ctx context.Context, userID, id string, upd PieceUpdate) (*works.ArtPiece, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields := PieceFormKeys(upd.Fields)
	merged := formFromPiece(*p).overlay(upd.Form, fields)
	if err := s.check(merged, upd.Uploads); err != nil {
		return nil, err
	}

	only := make(map[string]bool, len(fields))
	for _, k := range fields {
		only[k] = true
	}
	merged.applyTo(p, only)

	added, err := s.upload(ctx, upd.Uploads)
	if err != nil {
		return nil, err
	}
	p.Images = append(p.Images, added...)

	if len(upd.MakeDefault) > 0 {
		p.Images = p.Images.MoveToFront(upd.MakeDefault...)
	}

	var removed media.Images
	if len(upd.DeleteImages) > 0 {
		p.Images, removed = p.Images.Without(upd.DeleteImages...)
	}

	if err := s.pieces.Save(ctx, p); err != nil {
		s.release(ctx, added)
		return nil, fmt.Errorf("update piece: %w", err)
	}
	s.release(ctx, removed)

	s.log.Info().Str("user_id", userID).Str("piece_id", p.ID).
		Int("added_images", len(added)).Int("removed_images", len(removed)).
		Msg("piece updated")
	return p, nil
}

// Delete removes the record first, then releases its images. Storage
// failures are logged and do not fail the call.
func (s *CollectionService) Delete(ctx context.Context, userID, id string) error {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.pieces.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPieceNotFound
		}
		return fmt.Errorf("delete piece: %w", err)
	}

	failed := s.release(ctx, p.Images)
	s.log.Info().Str("user_id", userID).Str("piece_id", id).
		Int("images", len(p.Images)).Int("release_failures", failed).
		Msg("piece deleted")
	return nil
}

// Export is a written spreadsheet waiting to be sent. Remove must be called
// once the file has been streamed.
type Export struct {
	Path     string
	FileName string
}

func (e *Export) Remove() error {
	return os.Remove(e.Path)
}

func (s *CollectionService) Export(ctx context.Context, user users.User, now time.Time) (*Export, error) {
	pieces, err := s.pieces.ListByUser(ctx, user.ID, works.ArchivalAll)
	if err != nil {
		return nil, fmt.Errorf("export collection: %w", err)
	}

	exp := &Export{
		Path:     filepath.Join(s.exportDir, uuid.NewString()+".xlsx"),
		FileName: spreadsheet.FileName(user.Username, now),
	}
	if err := s.sheets.WritePieces(exp.Path, pieces); err != nil {
		_ = os.Remove(exp.Path)
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	s.log.Info().Str("user_id", user.ID).Int("pieces", len(pieces)).Str("file", exp.FileName).Msg("collection exported")
	return exp, nil
}

// PurgeUser deletes every piece of a user and releases all of their images.
// Release failures are logged only.
func (s *CollectionService) PurgeUser(ctx context.Context, userID string) error {
	pieces, err := s.pieces.ListByUser(ctx, userID, works.ArchivalAll)
	if err != nil {
		return fmt.Errorf("purge collection: %w", err)
	}

	failed := 0
	for _, p := range pieces {
		failed += s.release(ctx, p.Images)
	}

	if err := s.pieces.DeleteAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("purge collection: %w", err)
	}

	s.log.Info().Str("user_id", userID).Int("pieces", len(pieces)).Int("release_failures", failed).Msg("collection purged")
	return nil
}

func (s *CollectionService) check(form PieceForm, uploads []media.Upload) error {
	ve := &ValidationError{}
	if err := validationError(s.validate.Struct(form)); err != nil {
		var fieldErrs *ValidationError
		if !errors.As(err, &fieldErrs) {
			return err
		}
		ve.Messages = append(ve.Messages, fieldErrs.Messages...)
	}
	validateUploads(ve, uploads)
	return ve.orNil()
}

// upload stores every file in order. On failure the files stored so far are
// released again.
func (s *CollectionService) upload(ctx context.Context, uploads []media.Upload) (media.Images, error) {
	images := make(media.Images, 0, len(uploads))
	for _, up := range uploads {
		img, err := s.storage.Upload(ctx, up)
		if err != nil {
			s.release(ctx, images)
			return nil, fmt.Errorf("upload image: %w", err)
		}
		images = append(images, img)
	}
	return images, nil
}

// release destroys each image once and returns how many calls failed.
func (s *CollectionService) release(ctx context.Context, images media.Images) int {
	failed := 0
	for _, img := range images {
		if err := s.storage.Destroy(ctx, img.Filename); err != nil {
			failed++
			s.log.Warn().Err(err).Str("filename", img.Filename).Msg("failed to release image")
		}
	}
	return failed
}
