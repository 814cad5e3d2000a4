package storage

import (
	"database/sql"
	"time"

	"Stopwatch/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	database := &Database{db: db}
	if err := database.initTables(); err != nil {
		return nil, err
	}
	return database, nil
}

func (d *Database) initTables() error {
	// 创建会话记录表
	_, err := d.db.Exec(`
        CREATE TABLE IF NOT EXISTS sessions (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            started_at DATETIME NOT NULL,
            duration_ms INTEGER NOT NULL,
            lap_count INTEGER NOT NULL
        )
    `)
	return err
}

// 会话记录相关方法
func (d *Database) SaveSession(session *models.Session) error {
	result, err := d.db.Exec(`
        INSERT INTO sessions (started_at, duration_ms, lap_count)
        VALUES (?, ?, ?)
    `, session.StartedAt, session.DurationMs, session.LapCount)

	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	session.ID = id
	return nil
}

// 统计相关方法
type SessionStats struct {
	TotalSessions   int
	TotalDuration   int64 // 总时长（毫秒）
	LongestDuration int64 // 最长会话（毫秒）
	AverageDuration float64
	TotalLaps       int
}

func (d *Database) GetSessionStats(startDate, endDate time.Time) (*SessionStats, error) {
	stats := &SessionStats{}

	err := d.db.QueryRow(`
        SELECT
            COUNT(*) as sessions,
            COALESCE(SUM(duration_ms), 0) as total_duration,
            COALESCE(MAX(duration_ms), 0) as longest,
            COALESCE(AVG(duration_ms), 0) as average,
            COALESCE(SUM(lap_count), 0) as laps
        FROM sessions
        WHERE started_at BETWEEN ? AND ?
    `, startDate, endDate).Scan(
		&stats.TotalSessions,
		&stats.TotalDuration,
		&stats.LongestDuration,
		&stats.AverageDuration,
		&stats.TotalLaps,
	)

	return stats, err
}

func (d *Database) GetRecentSessions(limit int) ([]*models.Session, error) {
	var sessions []*models.Session
	rows, err := d.db.Query(`
        SELECT id, started_at, duration_ms, lap_count
        FROM sessions
        ORDER BY started_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(
			&session.ID,
			&session.StartedAt,
			&session.DurationMs,
			&session.LapCount,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (d *Database) Close() error {
	return d.db.Close()
}
