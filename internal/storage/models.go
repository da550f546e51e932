package storage

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type Task struct {
	ID          int64
	Username    string
	TaskID      int64
	Description string
	Status      string
}

type Expense struct {
	ID          int64
	Date        string
	Category    string
	Amount      string
	Description string
}
