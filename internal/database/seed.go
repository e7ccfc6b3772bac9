package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	pkgdatabase "github.com/kidanta/kidanta-center/pkg/database"
)

// Defaults created on first boot so the app is usable immediately.
const (
	seedAdminName     = "Admin"
	seedAdminEmail    = "admin@kidanta.local"
	seedAdminPassword = "admin123"
)

type seedActivity struct {
	title       string
	description string
	category    string
	ageMin      int
	ageMax      int
}

var seedActivities = []seedActivity{
	{"อ่านนิทานภาพ", "เสริมจินตนาการและการอ่าน", "ภาษา", 6, 8},
	{"เกมต่อบล็อก", "ฝึกตรรกะและมอเตอร์", "STEM", 6, 9},
	{"สะกดคำพื้นฐาน", "ฝึกภาษาไทย", "ภาษา", 7, 10},
	{"วิทย์สนุกที่บ้าน", "ทดลองง่ายๆ", "วิทยาศาสตร์", 8, 12},
	{"ฟุตบอลยิ้ม", "เล่นทีมและกติกา", "กีฬา", 9, 12},
}

// Seed inserts the default admin account and the starter activity catalog.
// It is idempotent: the admin is skipped when the email exists and the
// catalog is skipped unless empty. All inserts share one transaction.
func Seed(ctx context.Context, db *sqlx.DB, bcryptCost int) error {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return pkgdatabase.WithTxx(ctx, db, func(tx *sqlx.Tx) error {
		if err := seedAdmin(ctx, tx, bcryptCost); err != nil {
			return err
		}
		return seedCatalog(ctx, tx)
	})
}

func seedAdmin(ctx context.Context, tx *sqlx.Tx, bcryptCost int) error {
	var exists bool
	if err := tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, seedAdminEmail); err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, full_name, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 'admin', $5, $5)`,
		uuid.NewString(), seedAdminName, seedAdminEmail, string(hash), now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}

func seedCatalog(ctx context.Context, tx *sqlx.Tx) error {
	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM activities`); err != nil {
		return fmt.Errorf("count activities: %w", err)
	}
	if count > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, a := range seedActivities {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activities (id, title, description, category, age_min, age_max, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
			uuid.NewString(), a.title, a.description, a.category, a.ageMin, a.ageMax, now)
		if err != nil {
			return fmt.Errorf("insert seed activity %q: %w", a.title, err)
		}
	}
	return nil
}
