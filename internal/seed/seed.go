package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/juko/registry/internal/app/models"
	appRepos "github.com/juko/registry/internal/app/repositories"
	"github.com/juko/registry/internal/db"
	"github.com/juko/registry/internal/pkg/dberrors"
)

// demoStudents are the records inserted into an empty development database so
// the registry and analytics pages have something to show.
var demoStudents = []models.Student{
	{
		StudentID: "2023-001",
		Name:      "Maria Santos",
		Email:     "maria.santos@juko.edu",
		College:   "College of Computer Studies",
		Course:    "BS Information Technology",
		GWA:       1.75,
	},
	{
		StudentID: "2023-014",
		Name:      "Jose Ramirez",
		Email:     "jose.ramirez@juko.edu",
		College:   "College of Engineering",
		Course:    "BS Civil Engineering",
		GWA:       2.25,
	},
	{
		StudentID: "2023-027",
		Name:      "Angela Cruz",
		Email:     "angela.cruz@juko.edu",
		College:   "College of Business",
		Course:    "BS Accountancy",
		GWA:       3.25,
	},
	{
		StudentID: "2023-033",
		Name:      "Paolo Reyes",
		Email:     "paolo.reyes@juko.edu",
		College:   "College of Arts and Sciences",
		Course:    "BS Psychology",
		GWA:       2.0,
	},
}

// CreateDemoStudents inserts the demo records when the students table is
// empty. The inserts run in a single transaction so a failure never leaves a
// half-seeded table; a unique violation means another instance seeded first
// and is not an error.
func CreateDemoStudents(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(database.Pool)

	existing, err := studentRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Students already present, skipping demo seed")
		return nil
	}

	lgr.Info().Msg("Seeding demo student records...")
	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, student := range demoStudents {
			_, err := tx.Exec(ctx, `
				INSERT INTO students (id, student_id, name, email, college, course, gwa)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.NewString(),
				student.StudentID,
				student.Name,
				student.Email,
				student.College,
				student.Course,
				student.GWA,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			lgr.Debug().Msg("Demo students already seeded concurrently, skipping")
			return nil
		}
		return err
	}

	lgr.Info().Int("count", len(demoStudents)).Msg("Demo student records seeded")
	return nil
}
