package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
	leaveservice "github.com/worklane/hr-admin-backend-go/internal/service/leave"
)

type EmployeeServiceImpl struct {
	txManager          database.TxManager
	employeeRepository employee.EmployeeRepository
	quotaService       *leaveservice.QuotaService
}

func NewEmployeeService(
	txManager database.TxManager,
	employeeRepository employee.EmployeeRepository,
	quotaService *leaveservice.QuotaService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:          txManager,
		employeeRepository: employeeRepository,
		quotaService:       quotaService,
	}
}

// CreateEmployee implements employee.EmployeeService. The employee row and
// the current-year quota rows land in the same transaction; a provisioning
// failure rolls the employee back too.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := employeeFromRequest(req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.employeeRepository.Create(ctx, emp)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		_, err = s.quotaService.Provision(ctx, created.ID, time.Now().Year())
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created, time.Now()), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp, time.Now()), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.employeeRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	now := time.Now()
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp, now))
	}
	return responses, total, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		existing.FullName = *req.FullName
	}
	if req.Nickname != nil {
		existing.Nickname = req.Nickname
	}
	if req.Email != nil {
		existing.Email = req.Email
	}
	if req.Department != nil {
		existing.Department = req.Department
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
		existing.HireDate = hireDate
	}
	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse birthday: %w", err)
		}
		existing.Birthday = &birthday
	}
	if req.Status != nil {
		existing.Status = employee.Status(*req.Status)
	}

	updated, err := s.employeeRepository.Update(ctx, existing)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(updated, time.Now()), nil
}

// DeleteEmployee implements employee.EmployeeService. Quota rows and leave
// records are left to the database's cascade rules.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepository.Delete(ctx, id)
}

func employeeFromRequest(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	emp := employee.Employee{
		FullName:   req.FullName,
		Nickname:   req.Nickname,
		Email:      req.Email,
		Department: req.Department,
		HireDate:   hireDate,
		Status:     employee.StatusActive,
	}
	if req.Status != "" {
		emp.Status = employee.Status(req.Status)
	}
	if req.Birthday != nil && *req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse birthday: %w", err)
		}
		emp.Birthday = &birthday
	}
	return emp, nil
}
