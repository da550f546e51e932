package storage

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const userExists = `SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`

func (q *Queries) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := q.db.QueryRowContext(ctx, userExists, username).Scan(&exists)
	return exists, err
}

const createUser = `INSERT INTO users (username, password_hash) VALUES (?, ?)`

type CreateUserParams struct {
	Username     string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser, arg.Username, arg.PasswordHash)
	return err
}

const getUsersByName = `SELECT id, username, password_hash FROM users WHERE username = ? ORDER BY id`

func (q *Queries) GetUsersByName(ctx context.Context, username string) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, getUsersByName, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Username, &i.PasswordHash); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countUsers = `SELECT COUNT(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&count)
	return count, err
}

const countTasks = `SELECT COUNT(*) FROM tasks WHERE username = ?`

func (q *Queries) CountTasks(ctx context.Context, username string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countTasks, username).Scan(&count)
	return count, err
}

const createTask = `INSERT INTO tasks (username, task_id, description, status) VALUES (?, ?, ?, ?)
RETURNING id, username, task_id, description, status`

type CreateTaskParams struct {
	Username    string
	TaskID      int64
	Description string
	Status      string
}

func (q *Queries) CreateTask(ctx context.Context, arg CreateTaskParams) (Task, error) {
	row := q.db.QueryRowContext(ctx, createTask, arg.Username, arg.TaskID, arg.Description, arg.Status)
	var i Task
	err := row.Scan(&i.ID, &i.Username, &i.TaskID, &i.Description, &i.Status)
	return i, err
}

const listTasks = `SELECT id, username, task_id, description, status FROM tasks WHERE username = ? ORDER BY id`

func (q *Queries) ListTasks(ctx context.Context, username string) ([]Task, error) {
	rows, err := q.db.QueryContext(ctx, listTasks, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Task
	for rows.Next() {
		var i Task
		if err := rows.Scan(&i.ID, &i.Username, &i.TaskID, &i.Description, &i.Status); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getFirstTask = `SELECT id, username, task_id, description, status FROM tasks
WHERE username = ? AND task_id = ? ORDER BY id LIMIT 1`

type GetFirstTaskParams struct {
	Username string
	TaskID   int64
}

func (q *Queries) GetFirstTask(ctx context.Context, arg GetFirstTaskParams) (Task, error) {
	row := q.db.QueryRowContext(ctx, getFirstTask, arg.Username, arg.TaskID)
	var i Task
	err := row.Scan(&i.ID, &i.Username, &i.TaskID, &i.Description, &i.Status)
	return i, err
}

const updateTaskStatus = `UPDATE tasks SET status = ? WHERE id = ?`

type UpdateTaskStatusParams struct {
	Status string
	ID     int64
}

func (q *Queries) UpdateTaskStatus(ctx context.Context, arg UpdateTaskStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateTaskStatus, arg.Status, arg.ID)
	return err
}

const deleteTask = `DELETE FROM tasks WHERE id = ?`

func (q *Queries) DeleteTask(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, deleteTask, id)
	return err
}

const createExpense = `INSERT INTO expenses (date, category, amount, description) VALUES (?, ?, ?, ?)`

type CreateExpenseParams struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

func (q *Queries) CreateExpense(ctx context.Context, arg CreateExpenseParams) error {
	_, err := q.db.ExecContext(ctx, createExpense, arg.Date, arg.Category, arg.Amount, arg.Description)
	return err
}

const listExpenses = `SELECT id, date, category, amount, description FROM expenses ORDER BY id`

func (q *Queries) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := q.db.QueryContext(ctx, listExpenses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Expense
	for rows.Next() {
		var i Expense
		if err := rows.Scan(&i.ID, &i.Date, &i.Category, &i.Amount, &i.Description); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
