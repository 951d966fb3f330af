package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

type UserRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *UserRepo) With(db DB) *UserRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *UserRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *UserRepo) CreateUser(
	ctx context.Context,
	email, passwordHash string,
	isStaff bool,
) (*domain.User, error) {
	const op = "postgres.UserRepo.CreateUser"

	db := r.handle()

	var u domain.User
	err := db.QueryRow(ctx,
		`INSERT INTO users(email, password_hash, is_staff)
       	 VALUES ($1, $2, $3)
     	 RETURNING id, email, password_hash, is_staff, created_at`,
		email, passwordHash, isStaff,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &u, nil
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "postgres.UserRepo.UserByEmail"

	db := r.handle()

	var u domain.User
	err := db.QueryRow(ctx,
		`SELECT id, email, password_hash, is_staff, created_at
       	 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &u, nil
}

func (r *UserRepo) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	const op = "postgres.UserRepo.UserByID"

	db := r.handle()

	var u domain.User
	err := db.QueryRow(ctx,
		`SELECT id, email, password_hash, is_staff, created_at
       	 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsStaff, &u.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &u, nil
}

var _ repository.UserStore = (*UserRepo)(nil)
var _ repository.CatalogStore = (*CatalogRepo)(nil)
var _ repository.RouteStore = (*RouteRepo)(nil)
var _ repository.FlightStore = (*FlightRepo)(nil)
