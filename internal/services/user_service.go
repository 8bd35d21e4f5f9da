package services

import (
	"context"
	"log"
	"sync"
	"time"

	"jobtrack/internal/models"
	"jobtrack/internal/storage"
	"jobtrack/internal/transport/dto"
	"jobtrack/internal/validation"
)

type userService struct {
	repo storage.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetAll(ctx context.Context) ([]models.UserAccount, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Printf("UserService: Error fetching user collection: %v", err)
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.UserAccount, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting user by ID")
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.UserAccount, error) {
	user := &models.UserAccount{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		Password:    req.Password,
		AccountType: req.AccountType,
	}

	if err := newValidationError(validation.UserForm(user, true)); err != nil {
		return nil, err
	}

	user.CreatedAt = time.Now().Unix()

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		log.Printf("UserService: Error creating user: %v", err)
		return nil, mapRepoError(err, "creating user")
	}
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.UserAccount, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "loading user for update")
	}

	updated := *existing
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	updated.Email = req.Email
	updated.PhoneNumber = req.PhoneNumber
	updated.Department = req.Department
	updated.AccountType = req.AccountType

	// An empty password means "keep the stored one"; it is never echoed
	// back, so edit forms submit it blank.
	changingPassword := req.Password != ""
	if changingPassword {
		updated.Password = req.Password
	}

	if err := newValidationError(validation.UserForm(&updated, changingPassword)); err != nil {
		return nil, err
	}

	result, err := s.repo.Update(ctx, id, &updated)
	if err != nil {
		log.Printf("UserService: Error updating user %s: %v", id, err)
		return nil, mapRepoError(err, "updating user")
	}
	return result, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("UserService: Error deleting user %s: %v", id, err)
		return mapRepoError(err, "deleting user")
	}
	return nil
}

// BulkDelete issues one delete per selected id, all in flight at once, and
// tallies the outcome. There is no transaction across the batch: whichever
// deletes succeed stay deleted, and the caller re-fetches the list to see
// the true remote state.
func (s *userService) BulkDelete(ctx context.Context, req *dto.BulkDeleteUsersRequest) (*models.BulkDeleteResult, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result models.BulkDeleteResult
	)

	for _, id := range req.IDs {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			err := s.repo.Delete(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("UserService: Bulk delete failed for user %s: %v", id, err)
				result.Failed++
				result.FailedIDs = append(result.FailedIDs, id)
				return
			}
			result.Succeeded++
		}(id)
	}
	wg.Wait()

	return &result, nil
}
