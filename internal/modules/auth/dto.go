package auth

import "tastebook/internal/domain"

type RegisterRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=32"`
	DisplayName string  `json:"display_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Bio         *string `json:"bio"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  domain.UserPublic `json:"user"`
}
