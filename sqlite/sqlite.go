package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"emperror.dev/errors"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yumine/versia"
	"github.com/yumine/versia/sqlite/ent"
	"github.com/yumine/versia/sqlite/ent/account"
)

type SQLite struct {
	cli *ent.Client
}

func NewSQLite() (*SQLite, error) {
	cli, err := ent.Open("sqlite3", "./database.db?_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open ent client: %w", errors.WithStack(err))
	}

	ctx := context.Background()
	if err := cli.Schema.Create(ctx); err != nil {
		return nil, fmt.Errorf("failed creating schema resources: %w", errors.WithStack(err))
	}

	return &SQLite{cli: cli}, nil
}

// account

type AccountDB struct {
	*SQLite
}

func NewAccountDB(db *SQLite) versia.AccountStore {
	return &AccountDB{SQLite: db}
}

func (d *AccountDB) Save(c context.Context, acc *versia.Account) error {
	_, err := d.cli.Account.Create().
		SetID(acc.ID).
		SetUsername(acc.Username).
		SetEmail(acc.Email).
		SetPassword(acc.Password).
		SetPrivateKey(acc.PrivateKey).
		SetManuallyApprovesFollowers(acc.ManuallyApprovesFollowers).
		Save(c)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", errors.WithStack(err))
	}
	return nil
}

func (d *AccountDB) Find(c context.Context, id string) (*versia.Account, error) {
	acc, err := d.cli.Account.Get(c, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", errors.WithStack(err))
	}
	return toAccount(acc), nil
}

func (d *AccountDB) FindByEmail(c context.Context, email string) (*versia.Account, error) {
	acc, err := d.cli.Account.Query().
		Where(account.Email(email)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", errors.WithStack(err))
	}
	return toAccount(acc), nil
}

func (d *AccountDB) FindByUsername(c context.Context, username string) (*versia.Account, error) {
	acc, err := d.cli.Account.Query().
		Where(account.Username(username)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", errors.WithStack(err))
	}
	return toAccount(acc), nil
}

func toAccount(acc *ent.Account) *versia.Account {
	return &versia.Account{
		ID:                        acc.ID,
		Username:                  acc.Username,
		Email:                     acc.Email,
		Password:                  acc.Password,
		PrivateKey:                acc.PrivateKey,
		ManuallyApprovesFollowers: acc.ManuallyApprovesFollowers,
	}
}

// session

type Sqlite3Session struct {
	sess *scs.SessionManager
	db   *sql.DB
}

func NewSession() (versia.Session, error) {
	db, err := sql.Open("sqlite3", "session.db")
	if err != nil {
		log.Fatal(err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session table: %w", errors.WithStack(err))
	}

	sess := scs.New()
	sess.Store = sqlite3store.New(db)
	sess.Lifetime = 30 * 24 * time.Hour
	sess.Cookie.Name = "session_id"
	sess.Cookie.HttpOnly = true
	sess.Cookie.Persist = true
	sess.Cookie.SameSite = http.SameSiteStrictMode
	sess.Cookie.Secure = true

	return &Sqlite3Session{
		sess: sess,
		db:   db,
	}, nil
}

func (s *Sqlite3Session) Close() error {
	return s.db.Close()
}

func (s *Sqlite3Session) Set(c context.Context, key string, value any) {
	s.sess.Put(c, key, value)
}

func (s *Sqlite3Session) Get(c context.Context, key string) any {
	return s.sess.Get(c, key)
}

func (s *Sqlite3Session) Delete(c context.Context, key string) {
	s.sess.Remove(c, key)
}

func (s *Sqlite3Session) Clear(c context.Context) {
	s.sess.Clear(c)
}

func (s *Sqlite3Session) Middleware(next http.Handler) http.Handler {
	return s.sess.LoadAndSave(next)
}
