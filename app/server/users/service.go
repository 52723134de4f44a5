package users

import (
	"context"
	"time"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"

	"ai-link-navigator/app/server/apperrors"
	"ai-link-navigator/app/server/models"
	"ai-link-navigator/app/server/storage"
)

// Service 封装用户列表的读写：密码散列与校验、角色查找，
// 以及用户管理的各项约束（唯一管理员保护、不能对自己动手）。
// 所有写操作都把完整列表写回持久层（整体替换，不做增量）
type Service struct {
	store storage.Store
	l     *zap.Logger
}

func New(store storage.Store, l *zap.Logger) *Service {
	return &Service{store: store, l: l}
}

// List 返回全部用户。读失败降级为空列表，只记录日志
func (s *Service) List(ctx context.Context) []models.User {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		s.l.Error("failed to load users", zap.Error(err))
		return []models.User{}
	}
	return users
}

// Verify 按用户名查找并校验密码，成功返回用户。
// 用户不存在和密码不符返回同一个错误，不向调用方泄露区别
func (s *Service) Verify(ctx context.Context, username, password string) (*models.User, error) {
	for _, u := range s.List(ctx) {
		if u.Username != username {
			continue
		}
		match, _, err := argon2id.CheckHash(password, u.PasswordHash)
		if err != nil {
			s.l.Error("failed to check password", zap.String("username", username), zap.Error(err))
			return nil, apperrors.ErrInvalidCredentials
		}
		if !match {
			return nil, apperrors.ErrInvalidCredentials
		}
		return &u, nil
	}
	return nil, apperrors.ErrInvalidCredentials
}

func (s *Service) Create(ctx context.Context, username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrEmptyField
	}
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == username {
			return nil, apperrors.ErrDuplicateUsername
		}
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		s.l.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateInput 是更新操作的可选字段，nil 表示不改动
type UpdateInput struct {
	Password *string
	Role     *string
}

// Update 修改密码或角色。actor 是当前登录的管理员，用于自降级判断
func (s *Service) Update(ctx context.Context, actor, username string, in UpdateInput) (*models.User, error) {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, u := range users {
		if u.Username == username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	demoting := users[idx].IsAdmin() && in.Role != nil && *in.Role == models.RoleUser

	// 唯一管理员不允许降级
	if demoting && countAdmins(users) <= 1 {
		return nil, apperrors.ErrLastAdminDemotion
	}

	// 管理员不允许把自己降级
	if demoting && username == actor {
		return nil, apperrors.ErrSelfDemotion
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := argon2id.CreateHash(*in.Password, argon2id.DefaultParams)
		if err != nil {
			s.l.Error("failed to hash password", zap.Error(err))
			return nil, err
		}
		users[idx].PasswordHash = hash
	}

	if in.Role != nil && models.ValidRole(*in.Role) {
		users[idx].Role = *in.Role
	}

	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	return &users[idx], nil
}

// Delete 删除用户。不允许删除自己，也不允许删除唯一的管理员
func (s *Service) Delete(ctx context.Context, actor, username string) error {
	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return err
	}

	var target *models.User
	for i := range users {
		if users[i].Username == username {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return apperrors.ErrNotFound
	}

	if username == actor {
		return apperrors.ErrSelfDeletion
	}

	if target.IsAdmin() && countAdmins(users) <= 1 {
		return apperrors.ErrLastAdminDeletion
	}

	kept := make([]models.User, 0, len(users)-1)
	for _, u := range users {
		if u.Username != username {
			kept = append(kept, u)
		}
	}
	return s.store.SaveUsers(ctx, kept)
}

func countAdmins(users []models.User) int {
	count := 0
	for _, u := range users {
		if u.IsAdmin() {
			count++
		}
	}
	return count
}
