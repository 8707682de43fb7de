package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account. Email uniqueness is left to the unique
// index so that two concurrent signups cannot both succeed.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		err = r.db.classify(err)
		if !errors.Is(err, ErrAlreadyExists) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		}
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email}, "*userRepository.FindUserByEmail")
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, sq.Eq{"id": userID}, "*userRepository.FindUserByID")
}

// UpdateUser applies update and reads the row back in the same transaction.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate, updatedAt time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpdateUserQuery(update, updatedAt)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.classify(err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return r.db.classify(err)
		}
		if affected == 0 {
			return ErrNotFound
		}

		selectQuery, selectArgs, err := r.db.buildSelectUserQuery(sq.Eq{"id": update.UserID})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		updated, err = scanUser(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
		if err != nil {
			return r.db.classify(err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAlreadyExists) {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		}
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error querying users")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) findOne(ctx context.Context, where sq.Eq, funcName string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildSelectUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.classify(err)
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", funcName).Msg("error finding user")
		}
		return models.User{}, err
	}

	return user, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.Contact, &u.Gender, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
