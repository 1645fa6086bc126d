package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"holidayapi/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the persistence the auth flow needs.
type UserStore interface {
	FindByID(ctx context.Context, id uint) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByID(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, errors.Wrap(err, "find user by id")
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, ErrUserNotFound
	}
	return user, errors.Wrap(err, "find user by email")
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return errors.Wrap(err, "create user")
}

type UserServiceOptions struct {
	Store  UserStore
	Logger *zap.Logger
}

type UserService struct {
	store UserStore
	log   *zap.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &UserService{store: opts.Store, log: opts.Logger}
}

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}

func (s *UserService) SignUp(ctx context.Context, name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Name: strings.TrimSpace(name), Email: email, Password: hash}
	if err := s.store.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	s.log.Info("user signed up", zap.Uint("user_id", user.ID))
	return user, nil
}

// SignIn returns ErrInvalidCredentials for both unknown email and wrong password.
func (s *UserService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) FindByID(ctx context.Context, id uint) (models.User, error) {
	return s.store.FindByID(ctx, id)
}
