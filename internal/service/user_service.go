package service

import (
	"Chronicle/internal/api/dto"
	"Chronicle/internal/model"
	"Chronicle/internal/pkg/consts"
	"Chronicle/internal/pkg/redis"
	"Chronicle/internal/pkg/security"
	"Chronicle/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, id uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, id uint64, form *dto.ProfileFormDTO) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUsernameTaken
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash

	return s.userRepo.CreateUser(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout denylists the token signature until the token would expire anyway.
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, id uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profileDTO := &dto.ProfileDTO{}
	if err = copier.Copy(profileDTO, user); err != nil {
		return nil, err
	}
	return profileDTO, nil
}

// UpdateProfile edits the viewer's own record. There is no target parameter
// and therefore no ownership branch.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, form *dto.ProfileFormDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if form.Username != user.Username {
		taken, err := s.userRepo.GetUserByUsername(ctx, form.Username)
		if err != nil {
			return err
		}
		if taken != nil {
			return ErrUsernameTaken
		}
	}

	user.Username = form.Username
	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.Email = form.Email
	user.UpdatedAt = time.Now().UTC()

	return s.userRepo.UpdateUser(ctx, user)
}
