package library

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one line of the activity log.
type Entry struct {
	ID      string
	Session string
	At      time.Time
	OK      bool
	Message string
}

// Format renders e as "[<time>] <message>" using layout for the time.
func (e Entry) Format(layout string) string {
	return fmt.Sprintf("[%s] %s", e.At.Format(layout), e.Message)
}

// ActivityLog is an append-only record of what happened during a session.
// It lives in a private in-memory SQLite database and disappears on Close.
type ActivityLog struct {
	db      *sql.DB
	session string
	now     func() time.Time

	insertStmt *sql.Stmt
}

// OpenActivityLog creates an empty log for a new session.
func OpenActivityLog(now func() time.Time) (*ActivityLog, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open activity log: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := createActivitySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	if now == nil {
		now = time.Now
	}
	al := &ActivityLog{db: db, session: uuid.NewString(), now: now}
	if al.insertStmt, err = db.Prepare(`INSERT INTO entries(id,session,at,ok,message) VALUES(?,?,?,?,?)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare activity insert: %w", err)
	}
	return al, nil
}

// Close releases the prepared statement and drops the database.
func (a *ActivityLog) Close() error {
	if a.insertStmt != nil {
		a.insertStmt.Close()
	}
	return a.db.Close()
}

func createActivitySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS entries (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id TEXT NOT NULL UNIQUE,
        session TEXT NOT NULL,
        at INTEGER NOT NULL,
        ok BOOLEAN NOT NULL,
        message TEXT NOT NULL
    );`)
	if err != nil {
		return fmt.Errorf("create activity schema: %w", err)
	}
	return nil
}

// Session identifies this log's run.
func (a *ActivityLog) Session() string { return a.session }

// Record appends a message to the log.
func (a *ActivityLog) Record(message string, ok bool) (Entry, error) {
	e := Entry{
		ID:      uuid.NewString(),
		Session: a.session,
		At:      a.now(),
		OK:      ok,
		Message: message,
	}
	if _, err := a.insertStmt.Exec(e.ID, e.Session, e.At.UnixNano(), e.OK, e.Message); err != nil {
		return Entry{}, fmt.Errorf("record activity: %w", err)
	}
	return e, nil
}

// Entries returns the log most recent first.
func (a *ActivityLog) Entries() ([]Entry, error) {
	rows, err := a.db.Query(`SELECT id,session,at,ok,message FROM entries ORDER BY seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			at int64
		)
		if err := rows.Scan(&e.ID, &e.Session, &at, &e.OK, &e.Message); err != nil {
			return nil, err
		}
		e.At = time.Unix(0, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Len returns how many entries have been recorded.
func (a *ActivityLog) Len() (int, error) {
	var n int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
