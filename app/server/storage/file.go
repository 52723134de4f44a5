package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/models"
)

const (
	usersFileName   = "users.json"
	catalogFileName = "data.json"
)

// FileStore 是平面文件后端：DATA_DIR 下两份 JSON 文档（ users.json 与 data.json ），
// 即数据模型的直接序列化。文件不存在按空数据处理
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) LoadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.read(usersFileName, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *FileStore) SaveUsers(ctx context.Context, users []models.User) error {
	if users == nil {
		users = []models.User{}
	}
	return s.write(usersFileName, users)
}

func (s *FileStore) LoadCatalog(ctx context.Context) (*models.Catalog, error) {
	catalog := &models.Catalog{Groups: []models.Group{}}
	if err := s.read(catalogFileName, catalog); err != nil {
		return nil, err
	}
	if catalog.Groups == nil {
		catalog.Groups = []models.Group{}
	}
	return catalog, nil
}

func (s *FileStore) SaveCatalog(ctx context.Context, catalog *models.Catalog) error {
	return s.write(catalogFileName, catalog)
}

func (s *FileStore) read(name string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Join(apperrors.ErrStorageFailure, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}
	return nil
}

func (s *FileStore) write(name string, in any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}

	// 先写临时文件再改名，避免写到一半留下残缺文档
	target := filepath.Join(s.dir, name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Join(apperrors.ErrStorageFailure, err)
	}
	return nil
}
