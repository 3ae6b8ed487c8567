package request

import "zap_shift/internal/domain/entities"

type UserCreateRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

func (r UserCreateRequest) ToEntity() entities.User {
	return entities.User{Email: r.Email, DisplayName: r.DisplayName, PhotoURL: r.PhotoURL}
}

type UserRoleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}
