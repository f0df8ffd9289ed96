package repositories

import (
	"context"
	"time"

	"canteen-api/models"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, name, roll_number, dob, phone, verified, verification_pin, pin_expiry, role, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.RollNumber,
		&user.DOB,
		&user.Phone,
		&user.Verified,
		&user.VerificationPin,
		&user.PinExpiry,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// Create inserts a new user record, including any pending pin fields.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (email, name, roll_number, dob, phone, verified, verification_pin, pin_expiry, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.Name, user.RollNumber, user.DOB, user.Phone,
		user.Verified, user.VerificationPin, user.PinExpiry, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdateForPinRequest refreshes the profile fields a pin request carries
// and overwrites any unconsumed pin. Pin and expiry travel together.
func (r *UserRepository) UpdateForPinRequest(ctx context.Context, user *models.User) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET name = $1, dob = $2, verification_pin = $3, pin_expiry = $4, updated_at = $5
		 WHERE id = $6`,
		user.Name, user.DOB, user.VerificationPin, user.PinExpiry, time.Now(), user.ID)
	return err
}

// MarkVerified consumes the pin: sets the verified flag and clears both
// pin fields in one statement.
func (r *UserRepository) MarkVerified(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET verified = TRUE, verification_pin = NULL, pin_expiry = NULL, updated_at = $1
		 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}
