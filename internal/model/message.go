package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

const (
	CodeInvalidSalary            = "INVALID_SALARY"
	CodeInvalidEmployerPercent   = "INVALID_EMPLOYER_PERCENT"
	CodeInvalidEmployeePercent   = "INVALID_EMPLOYEE_PERCENT"
	CodeTargetBelowMinimum       = "TARGET_BELOW_MINIMUM"
	CodeTargetAboveSalary        = "TARGET_ABOVE_SALARY"
	CodeBelowMinimumWage         = "BELOW_MINIMUM_WAGE"
	CodeNoVoluntaryContributions = "NO_VOLUNTARY_CONTRIBUTIONS"
)
