package dto

import (
	"luxhome/internal/domains/user/model"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	gModel "luxhome/shared/model"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8"`
	Role     string  `json:"role"                validate:"omitempty,oneof=superadmin admin user"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleAdmin
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		FullName: r.FullName,
		Active:   true,
		Metadata: gModel.NewMetadata(username),
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FullName = model.FullName
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if model.LastLogin != nil {
		lastLogin := model.LastLogin.Format(constant.DateFormat)
		r.LastLogin = &lastLogin
	}
}

type UpdateUserRequest struct {
	Role     *string `db:"role"      json:"role,omitempty"      validate:"omitempty,oneof=superadmin admin user"`
	FullName *string `db:"full_name" json:"full_name,omitempty" validate:"omitempty,max=100"`
	Active   *bool   `db:"active"    json:"active,omitempty"`
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
