package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/nebulink/nebulink/pkg/domain"
)

// AccountRepository handles account-related database operations
type AccountRepository struct {
	db *sqlx.DB
}

// accountSQL represents an account for SQL operations
type accountSQL struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	AccountName string    `db:"account_name"`
	Avatar      string    `db:"avatar"`
	Token       string    `db:"token"`
	Instance    string    `db:"instance"`
	IsActive    bool      `db:"is_active"`
	Topics      topicsSQL `db:"topics"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// topicsSQL is a JSON array of topic strings for SQL operations
type topicsSQL []string

// Value implements driver.Valuer for database storage
func (t topicsSQL) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *topicsSQL) Scan(value interface{}) error {
	if value == nil {
		*t = topicsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), t)
	}

	return json.Unmarshal(data, t)
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(database *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: database}
}

// CreateAccount inserts a new account
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	sqlAccount := &accountSQL{
		Name:        account.Name,
		AccountName: account.AccountName,
		Avatar:      account.Avatar,
		Token:       account.Token,
		Instance:    account.Instance,
		IsActive:    account.IsActive,
		Topics:      capTopics(account.Topics),
	}

	query := `
		INSERT INTO accounts (name, account_name, avatar, token, instance, is_active, topics)
		VALUES (:name, :account_name, :avatar, :token, :instance, :is_active, :topics)
	`
	result, err := r.db.NamedExecContext(ctx, query, sqlAccount)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	account.ID = id
	account.Topics = []string(sqlAccount.Topics)
	return nil
}

// GetAccount retrieves an account by ID
func (r *AccountRepository) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	var sqlAccount accountSQL
	err := r.db.GetContext(ctx, &sqlAccount, "SELECT * FROM accounts WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return r.toDomain(&sqlAccount), nil
}

// GetAccounts retrieves all accounts ordered by name
func (r *AccountRepository) GetAccounts(ctx context.Context) ([]*domain.Account, error) {
	var sqlAccounts []accountSQL
	err := r.db.SelectContext(ctx, &sqlAccounts, "SELECT * FROM accounts ORDER BY name, instance")
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	accounts := make([]*domain.Account, len(sqlAccounts))
	for i := range sqlAccounts {
		accounts[i] = r.toDomain(&sqlAccounts[i])
	}
	return accounts, nil
}

// GetActiveAccount retrieves the currently active account, nil when none
func (r *AccountRepository) GetActiveAccount(ctx context.Context) (*domain.Account, error) {
	var sqlAccount accountSQL
	err := r.db.GetContext(ctx, &sqlAccount, "SELECT * FROM accounts WHERE is_active = 1 LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active account: %w", err)
	}
	return r.toDomain(&sqlAccount), nil
}

// UpdateAccount updates mutable account fields
func (r *AccountRepository) UpdateAccount(ctx context.Context, account *domain.Account) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE accounts
			SET name = ?, account_name = ?, avatar = ?, token = ?, instance = ?,
			    updated_at = datetime('now')
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, query, account.Name, account.AccountName,
			account.Avatar, account.Token, account.Instance, account.ID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update account: %w", err)}
		}
		return nil
	})
}

// SetActiveAccount activates the account and deactivates all others in one
// transaction, keeping at most one active account
func (r *AccountRepository) SetActiveAccount(ctx context.Context, id int64) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.ExecContext(ctx, "UPDATE accounts SET is_active = 0 WHERE is_active = 1"); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("deactivate accounts: %w", err)}
		}

		res, err := tx.ExecContext(ctx,
			"UPDATE accounts SET is_active = 1, updated_at = datetime('now') WHERE id = ?", id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("activate account: %w", err)}
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: fmt.Errorf("account %d not found", id)}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit: %w", err)}
		}
		return nil
	})
}

// SetTopics replaces the account's interest topics, capped at the limit
func (r *AccountRepository) SetTopics(ctx context.Context, id int64, topics []string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	capped := capTopics(topics)
	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE accounts SET topics = ?, updated_at = datetime('now') WHERE id = ?", capped, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("set topics: %w", err)}
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return &criticalError{err: fmt.Errorf("account %d not found", id)}
		}
		return nil
	})
}

// DeleteAccount removes an account
func (r *AccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %d not found", id)
	}
	return nil
}

func (r *AccountRepository) toDomain(a *accountSQL) *domain.Account {
	return &domain.Account{
		ID:          a.ID,
		Name:        a.Name,
		AccountName: a.AccountName,
		Avatar:      a.Avatar,
		Token:       a.Token,
		Instance:    a.Instance,
		IsActive:    a.IsActive,
		Topics:      []string(a.Topics),
		UpdatedAt:   a.UpdatedAt,
	}
}

// capTopics enforces the per-account topic limit
func capTopics(topics []string) topicsSQL {
	if len(topics) > domain.MaxTopics {
		topics = topics[:domain.MaxTopics]
	}
	return topicsSQL(topics)
}
