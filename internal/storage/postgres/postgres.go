package postgres

import (
	"activityBoard/internal/config"
	"activityBoard/internal/models"
	"activityBoard/internal/storage"
	"activityBoard/internal/storage/migrations"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = migrations.Up(db, "postgres"); err != nil {
		return nil, fmt.Errorf("failed to migrate the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) GetActivities() (models.ActivityCollection, error) {
	query := `
		SELECT a.name, a.description, a.schedule, a.max_participants, p.email
		FROM activities a
		LEFT JOIN participants p ON p.activity_id = a.id
		ORDER BY a.id, p.id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	defer rows.Close()

	activities := models.ActivityCollection{}
	for rows.Next() {
		var activity models.Activity
		var email sql.NullString

		err = rows.Scan(
			&activity.Name,
			&activity.Description,
			&activity.Schedule,
			&activity.MaxParticipants,
			&email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		last := len(activities) - 1
		if last < 0 || activities[last].Name != activity.Name {
			activity.Participants = []string{}
			activities = append(activities, activity)
			last++
		}

		if email.Valid {
			activities[last].Participants = append(activities[last].Participants, email.String)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

func (s *Storage) SignUp(activityName, email string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var activityID, maxParticipants int
	// FOR UPDATE serializes concurrent signups so the capacity check holds.
	lockQuery := `
		SELECT id, max_participants
		FROM activities
		WHERE name = $1
		FOR UPDATE`

	err = tx.QueryRow(lockQuery, activityName).Scan(&activityID, &maxParticipants)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrActivityNotFound
		}
		return fmt.Errorf("failed to get activity: %w", err)
	}

	var signedUp bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM participants
			WHERE activity_id = $1 AND email = $2
		)`

	err = tx.QueryRow(checkQuery, activityID, email).Scan(&signedUp)
	if err != nil {
		return fmt.Errorf("failed to check participant: %w", err)
	}

	if signedUp {
		return storage.ErrAlreadySignedUp
	}

	var count int
	countQuery := `SELECT COUNT(*) FROM participants WHERE activity_id = $1`

	if err = tx.QueryRow(countQuery, activityID).Scan(&count); err != nil {
		return fmt.Errorf("failed to count participants: %w", err)
	}

	if count >= maxParticipants {
		return storage.ErrActivityFull
	}

	insertQuery := `INSERT INTO participants (activity_id, email) VALUES ($1, $2)`

	if _, err = tx.Exec(insertQuery, activityID, email); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	return tx.Commit()
}

func (s *Storage) Unregister(activityName, email string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var activityID int
	err = tx.QueryRow(`SELECT id FROM activities WHERE name = $1`, activityName).Scan(&activityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrActivityNotFound
		}
		return fmt.Errorf("failed to get activity: %w", err)
	}

	deleteQuery := `
		DELETE FROM participants
		WHERE activity_id = $1 AND email = $2`

	result, err := tx.Exec(deleteQuery, activityID, email)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count removed participants: %w", err)
	}

	if removed == 0 {
		return storage.ErrNotSignedUp
	}

	return tx.Commit()
}
