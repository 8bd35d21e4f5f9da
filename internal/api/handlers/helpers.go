package handlers

import (
	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"
)

// MapUserToResponse converts a models.UserAccount to a dto.UserResponse.
// The stored password is dropped on the way out; it never leaves this API.
func MapUserToResponse(user *models.UserAccount) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Department:  user.Department,
		AccountType: user.AccountType,
		CreatedAt:   user.CreatedAt,
	}
}

// MapUsersToResponses converts a slice of accounts, keeping an empty slice
// instead of nil so list responses always encode as [].
func MapUsersToResponses(users []models.UserAccount) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, MapUserToResponse(&users[i]))
	}
	return responses
}
