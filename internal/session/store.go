package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lealimarco/the-psychologist-dog/internal/profile"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	started_at   TEXT NOT NULL,
	archetype    TEXT,
	mbti_type    TEXT,
	confidence   TEXT,
	traits_json  TEXT
);

CREATE TABLE IF NOT EXISTS turns (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT NOT NULL,
	seq          INTEGER NOT NULL,
	role         TEXT NOT NULL,
	text         TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE TABLE IF NOT EXISTS answers (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id   TEXT NOT NULL,
	question     TEXT NOT NULL,
	answer       TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region store-struct
// Store persists sessions, turn logs and accepted answers in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing database handle. The caller owns the
// connection lifecycle.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// #endregion constructor

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #region sessions

// SessionRecord is one persisted session row.
type SessionRecord struct {
	SessionID  string
	StartedAt  time.Time
	Archetype  string
	MBTIType   string
	Confidence string
	Traits     []string
}

// CreateSession inserts a new session row and returns its ID.
func (s *Store) CreateSession() (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, started_at) VALUES (?, ?)`,
		id, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

// SaveAnalysis records the analysis outcome on the session row.
func (s *Store) SaveAnalysis(sessionID string, p *profile.Profile) error {
	traitsJSON, err := json.Marshal(p.Traits)
	if err != nil {
		return fmt.Errorf("marshal traits: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE sessions SET archetype = ?, mbti_type = ?, confidence = ?, traits_json = ?
		 WHERE session_id = ?`,
		p.Archetype, p.MBTIType, string(p.Confidence), string(traitsJSON), sessionID,
	)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

// GetSession retrieves one session row by ID.
func (s *Store) GetSession(sessionID string) (SessionRecord, error) {
	var rec SessionRecord
	var startedStr string
	var archetype, mbti, confidence, traitsJSON sql.NullString

	err := s.db.QueryRow(
		`SELECT session_id, started_at, archetype, mbti_type, confidence, traits_json
		 FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&rec.SessionID, &startedStr, &archetype, &mbti, &confidence, &traitsJSON)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
	rec.Archetype = archetype.String
	rec.MBTIType = mbti.String
	rec.Confidence = confidence.String
	if traitsJSON.Valid {
		if err := json.Unmarshal([]byte(traitsJSON.String), &rec.Traits); err != nil {
			return SessionRecord{}, fmt.Errorf("unmarshal traits: %w", err)
		}
	}
	return rec, nil
}

// ListSessions returns the most recent sessions.
func (s *Store) ListSessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT session_id, started_at, archetype, mbti_type, confidence, traits_json
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var startedStr string
		var archetype, mbti, confidence, traitsJSON sql.NullString
		if err := rows.Scan(&rec.SessionID, &startedStr, &archetype, &mbti, &confidence, &traitsJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, startedStr)
		rec.Archetype = archetype.String
		rec.MBTIType = mbti.String
		rec.Confidence = confidence.String
		if traitsJSON.Valid {
			if err := json.Unmarshal([]byte(traitsJSON.String), &rec.Traits); err != nil {
				return nil, fmt.Errorf("unmarshal traits: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion sessions

// #region turns

// TurnRecord is one persisted turn-log entry.
type TurnRecord struct {
	Seq       int
	Role      Role
	Text      string
	CreatedAt time.Time
}

// AppendTurn persists one turn-log entry in arrival order.
func (s *Store) AppendTurn(sessionID string, seq int, role Role, text string) error {
	_, err := s.db.Exec(
		`INSERT INTO turns (session_id, seq, role, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		sessionID, seq, string(role), text, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

// ListTurns returns a session's turns in log order.
func (s *Store) ListTurns(sessionID string) ([]TurnRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, role, text, created_at FROM turns
		 WHERE session_id = ? ORDER BY seq ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var records []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		var role, createdStr string
		if err := rows.Scan(&rec.Seq, &role, &rec.Text, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.Role = Role(role)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecordAnswer persists one accepted questionnaire answer.
func (s *Store) RecordAnswer(sessionID, question, answer string) error {
	_, err := s.db.Exec(
		`INSERT INTO answers (session_id, question, answer, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, question, answer, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

// #endregion turns
