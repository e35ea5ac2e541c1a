package console

import (
	"errors"
	"fmt"

	"dmfengineering.com/timesheet/core/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetEmployees(db *gorm.DB) ([]models.Employee, error) {
	var employees []models.Employee
	err := db.Order("name").Find(&employees).Error
	return employees, err
}

func FindEmployeeByEmail(db *gorm.DB, email string) (*models.Employee, error) {
	var emp models.Employee
	err := db.Where("email = ?", email).First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	return &emp, err
}

// CreateEmployee provisions an employee record for an identity-provider
// subject. Role defaults to employee.
func CreateEmployee(db *gorm.DB, userID, name, email string, rate float64) (*models.Employee, error) {
	emp := models.Employee{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Name:               name,
		Email:              email,
		Role:               models.RoleEmployee,
		Active:             true,
		DefaultBillingRate: rate,
	}
	if err := db.Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func SetRole(db *gorm.DB, email, role string) error {
	if role != models.RoleEmployee && role != models.RoleAdmin {
		return fmt.Errorf("unknown role %q", role)
	}
	return updateByEmail(db, email, map[string]interface{}{"role": role})
}

func SetActive(db *gorm.DB, email string, active bool) error {
	return updateByEmail(db, email, map[string]interface{}{"active": active})
}

func updateByEmail(db *gorm.DB, email string, updates map[string]interface{}) error {
	result := db.Model(&models.Employee{}).Where("email = ?", email).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no employee with email %s", email)
	}
	return nil
}
