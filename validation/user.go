package validation

import (
	"strings"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
)

// UserCreate validates an admin-side user creation request. The plain
// password is returned separately so the caller can hash it; it never lands
// on the model.
func UserCreate(req *dto.UserCreate) (*models.User, string, *apperrors.APIError) {
	if isEmpty(req.Name) || isEmpty(req.Email) || isEmpty(req.Password) || isEmpty(req.Role) {
		return nil, "", apperrors.BadRequest("MISSING_REQUIRED_FIELDS",
			"Missing required fields: name, email, password, role")
	}
	if !models.IsValidRole(*req.Role) {
		return nil, "", apperrors.BadRequest("INVALID_ROLE",
			"Invalid role. Must be one of: "+strings.Join(models.ValidRoles, ", "))
	}

	user := &models.User{
		Name:  strings.TrimSpace(*req.Name),
		Email: normalizeEmail(*req.Email),
		Role:  *req.Role,
	}
	if req.Phone.Valid {
		if phone := strings.TrimSpace(req.Phone.Value); phone != "" {
			user.Phone = &phone
		}
	}
	return user, *req.Password, nil
}

// UserUpdate validates a partial user update. Empty-string values for
// name/email/role/password are treated as absent, so clients can echo a full
// form back without clobbering fields. The plain password, when supplied, is
// returned for the caller to hash.
func UserUpdate(req *dto.UserUpdate) (map[string]interface{}, string, *apperrors.APIError) {
	if req.Role != nil && *req.Role != "" && !models.IsValidRole(*req.Role) {
		return nil, "", apperrors.BadRequest("INVALID_ROLE",
			"Invalid role. Must be one of: "+strings.Join(models.ValidRoles, ", "))
	}

	updates := map[string]interface{}{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		updates["email"] = normalizeEmail(*req.Email)
	}
	if req.Phone.Present {
		if phone := strings.TrimSpace(req.Phone.Value); req.Phone.Valid && phone != "" {
			updates["phone"] = phone
		} else {
			updates["phone"] = nil
		}
	}
	if req.Role != nil && *req.Role != "" {
		updates["role"] = *req.Role
	}

	password := ""
	if req.Password != nil {
		password = *req.Password
	}
	return updates, password, nil
}

// Register validates the self-service registration request. Role defaults to
// CUSTOMER when the client does not send one.
func Register(req *dto.RegisterRequest) (*models.User, string, *apperrors.APIError) {
	if isEmpty(req.Name) || isEmpty(req.Email) || isEmpty(req.Password) {
		return nil, "", apperrors.BadRequest("MISSING_REQUIRED_FIELDS",
			"Name, email, and password are required")
	}

	role := models.RoleCustomer
	if req.Role != nil && *req.Role != "" {
		role = *req.Role
	}

	user := &models.User{
		Name:  strings.TrimSpace(*req.Name),
		Email: normalizeEmail(*req.Email),
		Role:  role,
	}
	if req.Phone.Valid {
		if phone := strings.TrimSpace(req.Phone.Value); phone != "" {
			user.Phone = &phone
		}
	}
	return user, *req.Password, nil
}
