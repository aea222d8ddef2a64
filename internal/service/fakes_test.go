package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"art-collector/internal/domain/media"
	"art-collector/internal/domain/users"
	"art-collector/internal/domain/works"
	"art-collector/internal/repository"

	"github.com/google/uuid"
)

type fakePieces struct {
	mu      sync.Mutex
	byID    map[string]works.ArtPiece
	order   []string
	saveErr error
}

func newFakePieces() *fakePieces {
	return &fakePieces{byID: map[string]works.ArtPiece{}}
}

func (f *fakePieces) ListByUser(_ context.Context, userID string, filter works.ArchivalFilter) ([]works.ArtPiece, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []works.ArtPiece
	for _, id := range f.order {
		p, ok := f.byID[id]
		if ok && p.UserID == userID && filter.Matches(p.Archival) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePieces) FindByUser(_ context.Context, userID, id string) (*works.ArtPiece, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	p.Images = append(media.Images(nil), p.Images...)
	return &p, nil
}

func (f *fakePieces) Create(_ context.Context, p *works.ArtPiece) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.byID[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakePieces) Save(_ context.Context, p *works.ArtPiece) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.byID[p.ID] = *p
	return nil
}

func (f *fakePieces) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok || p.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePieces) DeleteAllByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.byID {
		if p.UserID == userID {
			delete(f.byID, id)
		}
	}
	return nil
}

func (f *fakePieces) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type fakeStorage struct {
	mu         sync.Mutex
	uploaded   []string
	destroyed  []string
	uploadErr  error
	destroyErr error
	n          int
}

func (f *fakeStorage) Upload(_ context.Context, up media.Upload) (media.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return media.Image{}, f.uploadErr
	}
	f.n++
	key := fmt.Sprintf("key-%d-%s", f.n, up.Name)
	f.uploaded = append(f.uploaded, key)
	return media.Image{URL: "https://cdn.example.com/" + key, Filename: key}, nil
}

func (f *fakeStorage) Destroy(_ context.Context, filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.destroyed = append(f.destroyed, filename)
	return f.destroyErr
}

type fakeUsers struct {
	mu   sync.Mutex
	byID map[string]users.User
}

func newFakeUsers(list ...users.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]users.User{}}
	for _, u := range list {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *users.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Username == u.Username || existing.Email == u.Email {
			return fmt.Errorf("create user: %w", repository.ErrDuplicate)
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.byID[u.ID] = *u
	return nil
}

func (f *fakeUsers) find(match func(users.User) bool) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if match(u) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*users.User, error) {
	return f.find(func(u users.User) bool { return u.ID == id })
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*users.User, error) {
	return f.find(func(u users.User) bool { return u.Username == username })
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*users.User, error) {
	return f.find(func(u users.User) bool { return u.Email == email })
}

func (f *fakeUsers) Update(_ context.Context, id string, columns map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	keys := make([]string, 0, len(columns))
	for k := range columns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v, _ := columns[k].(string)
		switch k {
		case "username":
			u.Username = v
		case "email":
			u.Email = v
		case "password":
			u.Password = v
		case "show_name":
			u.ShowName = v
		case "contact_info":
			u.ContactInfo = v
		case "custom_table":
			u.CustomTable = v
		default:
			return errors.New("unknown column " + k)
		}
	}
	f.byID[id] = u
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

type fakeSheets struct {
	path   string
	pieces []works.ArtPiece
	err    error
}

func (f *fakeSheets) WritePieces(path string, pieces []works.ArtPiece) error {
	f.path, f.pieces = path, pieces
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(path, []byte("xlsx"), 0o600)
}
