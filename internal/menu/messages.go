package menu

const (
	mainMenuTitle    = "Main Menu:"
	sessionMenuTitle = "Choose an option:"
	taskMenuTitle    = "Task Manager Menu:"
	budgetMenuTitle  = "Budget Tracker Menu:"

	promptChoice        = "Enter your choice: "
	promptLoginUser     = "Enter your username: "
	promptLoginPassword = "Enter your password: "
	promptNewUser       = "Enter a new username: "
	promptNewPassword   = "Enter a new password: "
	promptTaskText      = "Enter task description: "
	promptCompleteID    = "Enter task ID to mark as completed: "
	promptDeleteID      = "Enter task ID to delete: "
	promptExpenseDate   = "Enter date (YYYY-MM-DD): "
	promptExpenseKind   = "Enter expense category: "
	promptExpenseAmount = "Enter expense amount: "
	promptExpenseText   = "Enter expense description: "
	promptMonthlyBudget = "Enter your monthly budget: "

	msgGoodbye            = "Goodbye!"
	msgLoggingOut         = "Logging out..."
	msgExiting            = "Exiting..."
	msgInvalidChoice      = "Invalid choice. Try again."
	msgInvalidOption      = "Invalid option. Try again."
	msgUserExists         = "Username already exists. Try again."
	msgUserRegistered     = "User registered successfully!"
	msgInvalidUsername    = "Username must not be empty or contain ':'. Try again."
	msgInvalidPassword    = "Password must be at most 72 bytes. Try again."
	msgLoginOK            = "Login successful!"
	msgLoginFailed        = "Invalid credentials. Try again."
	msgTaskAdded          = "Task added successfully!"
	msgEmptyDescription   = "Task description cannot be empty."
	msgNoTasks            = "No tasks found."
	msgTaskLine           = "Task ID: %d, Description: %s, Status: %s"
	msgTaskCompleted      = "Task marked as completed."
	msgTaskDeleted        = "Task deleted."
	msgTaskNotFound       = "Task ID not found."
	msgInvalidTaskID      = "Invalid task ID. Please enter a number."
	msgExpenseAdded       = "Expense added successfully!"
	msgNoExpenses         = "No expenses recorded."
	msgExpensesHeader     = "Expenses:"
	msgExpenseLine        = "Date: %s, Category: %s, Amount: %s, Description: %s"
	msgInvalidAmount      = "Invalid amount. Please enter a number."
	msgOverBudget         = "Warning: You have exceeded your budget! You are over by %s."
	msgBudgetLeft         = "You have %s left for the month."
	msgExpensesSaved      = "Expenses saved successfully."
	msgNotSaved           = "Storage is unavailable. Your last action was not saved."
	msgNotLoaded          = "Storage is unavailable. Please try again later."
	msgUnexpected         = "Something went wrong: %v"
)

var (
	mainMenuItems    = []string{"1. Login", "2. Register", "3. Exit"}
	sessionMenuItems = []string{"1. Task Manager", "2. Budget Tracker", "3. Logout"}
	taskMenuItems    = []string{"1. Add Task", "2. View Tasks", "3. Mark Task as Completed", "4. Delete Task", "5. Logout"}
	budgetMenuItems  = []string{"1. Add Expense", "2. View Expenses", "3. Track Budget", "4. Save Expenses", "5. Exit"}
)
