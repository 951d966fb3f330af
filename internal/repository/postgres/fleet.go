package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/oleksiirud/skyport/internal/domain"
)

func (r *CatalogRepo) ListAirplaneTypes(
	ctx context.Context,
	nameFilter string,
	limit, offset int,
) ([]domain.AirplaneType, error) {
	const op = "postgres.CatalogRepo.ListAirplaneTypes"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name
       	 FROM airplane_types
      	 WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
      	 ORDER BY name
      	 LIMIT $2 OFFSET $3`,
		nameFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.AirplaneType
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetAirplaneType(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	const op = "postgres.CatalogRepo.GetAirplaneType"

	db := r.handle()

	var t domain.AirplaneType
	err := db.QueryRow(ctx,
		`SELECT id, name FROM airplane_types WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *CatalogRepo) CreateAirplaneType(ctx context.Context, name string) (*domain.AirplaneType, error) {
	const op = "postgres.CatalogRepo.CreateAirplaneType"

	db := r.handle()

	var t domain.AirplaneType
	err := db.QueryRow(ctx,
		`INSERT INTO airplane_types(name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *CatalogRepo) UpdateAirplaneType(
	ctx context.Context,
	id int64,
	name string,
) (*domain.AirplaneType, error) {
	const op = "postgres.CatalogRepo.UpdateAirplaneType"

	db := r.handle()

	var t domain.AirplaneType
	err := db.QueryRow(ctx,
		`UPDATE airplane_types SET name = $2 WHERE id = $1 RETURNING id, name`,
		id, name,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *CatalogRepo) DeleteAirplaneType(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteAirplaneType"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM airplane_types WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

func (r *CatalogRepo) ListAirplanes(
	ctx context.Context,
	nameFilter string,
	limit, offset int,
) ([]domain.Airplane, error) {
	const op = "postgres.CatalogRepo.ListAirplanes"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, type_id, rows, seats_per_row
       	 FROM airplanes
      	 WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
      	 ORDER BY name
      	 LIMIT $2 OFFSET $3`,
		nameFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Airplane
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.TypeID, &a.Layout.Rows, &a.Layout.SeatsPerRow); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetAirplane(ctx context.Context, id int64) (*domain.Airplane, error) {
	const op = "postgres.CatalogRepo.GetAirplane"

	db := r.handle()

	var a domain.Airplane
	err := db.QueryRow(ctx,
		`SELECT id, name, type_id, rows, seats_per_row
       	 FROM airplanes WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.TypeID, &a.Layout.Rows, &a.Layout.SeatsPerRow)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

func (r *CatalogRepo) CreateAirplane(ctx context.Context, a domain.Airplane) (*domain.Airplane, error) {
	const op = "postgres.CatalogRepo.CreateAirplane"

	db := r.handle()

	var out domain.Airplane
	err := db.QueryRow(ctx,
		`INSERT INTO airplanes(name, type_id, rows, seats_per_row)
       	 VALUES ($1, $2, $3, $4)
     	 RETURNING id, name, type_id, rows, seats_per_row`,
		a.Name, a.TypeID, a.Layout.Rows, a.Layout.SeatsPerRow,
	).Scan(&out.ID, &out.Name, &out.TypeID, &out.Layout.Rows, &out.Layout.SeatsPerRow)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// UpdateAirplane changes name and type only. The seat layout is immutable
// once tickets may reference it.
func (r *CatalogRepo) UpdateAirplane(
	ctx context.Context,
	id int64,
	name string,
	typeID int64,
) (*domain.Airplane, error) {
	const op = "postgres.CatalogRepo.UpdateAirplane"

	db := r.handle()

	var out domain.Airplane
	err := db.QueryRow(ctx,
		`UPDATE airplanes SET name = $2, type_id = $3
      	 WHERE id = $1
     	 RETURNING id, name, type_id, rows, seats_per_row`,
		id, name, typeID,
	).Scan(&out.ID, &out.Name, &out.TypeID, &out.Layout.Rows, &out.Layout.SeatsPerRow)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

func (r *CatalogRepo) DeleteAirplane(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteAirplane"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

func (r *CatalogRepo) ListCrews(
	ctx context.Context,
	fullNameFilter string,
	limit, offset int,
) ([]domain.Crew, error) {
	const op = "postgres.CatalogRepo.ListCrews"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, first_name, last_name
       	 FROM crews
      	 WHERE $1 = ''
         	OR first_name ILIKE '%' || $1 || '%'
         	OR last_name ILIKE '%' || $1 || '%'
      	 ORDER BY last_name, first_name
      	 LIMIT $2 OFFSET $3`,
		fullNameFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Crew
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetCrew(ctx context.Context, id int64) (*domain.Crew, error) {
	const op = "postgres.CatalogRepo.GetCrew"

	db := r.handle()

	var c domain.Crew
	err := db.QueryRow(ctx,
		`SELECT id, first_name, last_name FROM crews WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) CreateCrew(ctx context.Context, firstName, lastName string) (*domain.Crew, error) {
	const op = "postgres.CatalogRepo.CreateCrew"

	db := r.handle()

	var c domain.Crew
	err := db.QueryRow(ctx,
		`INSERT INTO crews(first_name, last_name)
       	 VALUES ($1, $2)
     	 RETURNING id, first_name, last_name`,
		firstName, lastName,
	).Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) UpdateCrew(
	ctx context.Context,
	id int64,
	firstName, lastName string,
) (*domain.Crew, error) {
	const op = "postgres.CatalogRepo.UpdateCrew"

	db := r.handle()

	var c domain.Crew
	err := db.QueryRow(ctx,
		`UPDATE crews SET first_name = $2, last_name = $3
      	 WHERE id = $1
     	 RETURNING id, first_name, last_name`,
		id, firstName, lastName,
	).Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) DeleteCrew(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteCrew"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM crews WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}
