package sqlite

import (
	"activityBoard/internal/models"
	"activityBoard/internal/storage"
	"activityBoard/internal/storage/migrations"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

type Storage struct {
	db *sql.DB
}

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err = migrations.Up(db, "sqlite3"); err != nil {
		return nil, err
	}

	// One connection serializes writers so the capacity check in SignUp holds.
	db.SetMaxOpenConns(1)

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) GetActivities() (models.ActivityCollection, error) {
	rows, err := s.db.Query(`
		SELECT a.name, a.description, a.schedule, a.max_participants, p.email
		FROM activities a
		LEFT JOIN participants p ON p.activity_id = a.id
		ORDER BY a.id, p.id`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	activities := models.ActivityCollection{}
	for rows.Next() {
		var a models.Activity
		var email sql.NullString

		if err = rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		last := len(activities) - 1
		if last < 0 || activities[last].Name != a.Name {
			a.Participants = []string{}
			activities = append(activities, a)
			last++
		}

		if email.Valid {
			activities[last].Participants = append(activities[last].Participants, email.String)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	return activities, nil
}

func (s *Storage) SignUp(activityName, email string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	activityID, maxParticipants, err := lookup(tx, activityName)
	if err != nil {
		return err
	}

	var signedUp bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM participants WHERE activity_id = ? AND email = ?)`, activityID, email).Scan(&signedUp)
	if err != nil {
		return fmt.Errorf("check participant: %w", err)
	}
	if signedUp {
		return storage.ErrAlreadySignedUp
	}

	var count int
	if err = tx.QueryRow(`SELECT COUNT(*) FROM participants WHERE activity_id = ?`, activityID).Scan(&count); err != nil {
		return fmt.Errorf("count participants: %w", err)
	}
	if count >= maxParticipants {
		return storage.ErrActivityFull
	}

	if _, err = tx.Exec(`INSERT INTO participants (activity_id, email) VALUES (?, ?)`, activityID, email); err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) Unregister(activityName, email string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	activityID, _, err := lookup(tx, activityName)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM participants WHERE activity_id = ? AND email = ?`, activityID, email)
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if removed == 0 {
		return storage.ErrNotSignedUp
	}

	return tx.Commit()
}

func lookup(tx *sql.Tx, name string) (id, maxParticipants int, err error) {
	err = tx.QueryRow(`SELECT id, max_participants FROM activities WHERE name = ?`, name).Scan(&id, &maxParticipants)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, storage.ErrActivityNotFound
	}
	if err != nil {
		return 0, 0, fmt.Errorf("lookup activity: %w", err)
	}

	return id, maxParticipants, nil
}
