package validation

import (
	"regexp"
	"strings"

	"hotel-management/apperrors"
	"hotel-management/dto"
	"hotel-management/models"
	"hotel-management/utils"
)

var joiningDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

func invalidJoiningDate() *apperrors.APIError {
	return apperrors.BadRequest("INVALID_JOINING_DATE", "Joining date must be a valid date string (YYYY-MM-DD)")
}

func StaffCreate(req *dto.StaffCreate) (*models.Staff, *apperrors.APIError) {
	if isEmpty(req.Department) {
		return nil, apperrors.BadRequest("MISSING_DEPARTMENT", "Department is required")
	}
	if isEmpty(req.JoiningDate) {
		return nil, apperrors.BadRequest("MISSING_JOINING_DATE", "Joining date is required")
	}
	if !models.IsValidDepartment(*req.Department) {
		return nil, apperrors.BadRequest("INVALID_DEPARTMENT",
			"Invalid department. Must be one of: "+strings.Join(models.ValidDepartments, ", "))
	}
	if req.Salary.Valid && req.Salary.Value <= 0 {
		return nil, apperrors.BadRequest("INVALID_SALARY", "Salary must be a positive number")
	}

	joining, ok := utils.ParseDate(*req.JoiningDate)
	if !ok || !joiningDatePattern.MatchString(strings.TrimSpace(*req.JoiningDate)) {
		return nil, invalidJoiningDate()
	}

	staff := &models.Staff{
		Department:  *req.Department,
		JoiningDate: joining,
	}
	if req.Salary.Valid {
		salary := req.Salary.Value
		staff.Salary = &salary
	}
	if req.UserID.Valid && req.UserID.Value != 0 {
		userID := req.UserID.Value
		staff.UserID = &userID
	}
	return staff, nil
}

func StaffUpdate(req *dto.StaffUpdate) (map[string]interface{}, *apperrors.APIError) {
	updates := map[string]interface{}{}

	if req.Department != nil {
		if !models.IsValidDepartment(*req.Department) {
			return nil, apperrors.BadRequest("INVALID_DEPARTMENT",
				"Invalid department. Must be one of: "+strings.Join(models.ValidDepartments, ", "))
		}
		updates["department"] = *req.Department
	}
	if req.Salary.Present {
		if req.Salary.Valid {
			if req.Salary.Value <= 0 {
				return nil, apperrors.BadRequest("INVALID_SALARY", "Salary must be a positive number")
			}
			updates["salary"] = req.Salary.Value
		} else {
			updates["salary"] = nil
		}
	}
	if req.UserID.Present {
		if req.UserID.Valid && req.UserID.Value != 0 {
			updates["user_id"] = req.UserID.Value
		} else {
			updates["user_id"] = nil
		}
	}
	if req.JoiningDate != nil {
		joining, ok := utils.ParseDate(*req.JoiningDate)
		if !ok || !joiningDatePattern.MatchString(strings.TrimSpace(*req.JoiningDate)) {
			return nil, invalidJoiningDate()
		}
		updates["joining_date"] = joining
	}
	return updates, nil
}
