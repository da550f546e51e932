package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldUsername    = "username"
	FieldTaskID      = "task_id"
	FieldTaskCount   = "task_count"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldExpenseDate = "expense_date"
	FieldRecords     = "records"
	FieldPath        = "path"
	FieldBackend     = "backend"
	FieldOverBudget  = "over_budget"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentAuth     = "auth"
	ComponentTasks    = "tasks"
	ComponentExpenses = "expenses"
	ComponentBudget   = "budget"
	ComponentStorage  = "storage"
	ComponentBackend  = "backend"
	ComponentMenu     = "menu"
)

// Operations defines standard operation names
const (
	OpRegister = "register"
	OpLogin    = "login"
	OpCreate   = "create"
	OpList     = "list"
	OpComplete = "complete"
	OpDelete   = "delete"
	OpTotal    = "total"
	OpEvaluate = "evaluate"
	OpLoad     = "load"
	OpSave     = "save"
	OpMigrate  = "migrate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeAuth          = "auth_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeConflict      = "conflict_error"
	ErrorTypeParse         = "parse_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithUsername adds the acting user
func (f LogFields) WithUsername(username string) LogFields {
	f[FieldUsername] = username
	return f
}

// WithTaskID adds task id field
func (f LogFields) WithTaskID(id int) LogFields {
	f[FieldTaskID] = id
	return f
}

// WithError adds error and error type fields
func (f LogFields) WithError(err error, errorType string) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
		f[FieldErrorType] = errorType
	}
	return f
}

// WithExpense adds expense-related fields. Descriptions are left out; they
// are free text typed by the user.
func (f LogFields) WithExpense(date, category, amount string) LogFields {
	f[FieldExpenseDate] = date
	f[FieldCategory] = category
	f[FieldAmount] = amount
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
