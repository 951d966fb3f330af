package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oleksiirud/skyport/internal/domain"
)

// CatalogRepo serves the reference entities. Geographic entities live here;
// airplanes and crews are in fleet.go.
type CatalogRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CatalogRepo) With(db DB) *CatalogRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CatalogRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *CatalogRepo) ListCountries(
	ctx context.Context,
	nameFilter string,
	limit, offset int,
) ([]domain.Country, error) {
	const op = "postgres.CatalogRepo.ListCountries"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name
       	 FROM countries
      	 WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
      	 ORDER BY name
      	 LIMIT $2 OFFSET $3`,
		nameFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetCountry(ctx context.Context, id int64) (*domain.Country, error) {
	const op = "postgres.CatalogRepo.GetCountry"

	db := r.handle()

	var c domain.Country
	err := db.QueryRow(ctx,
		`SELECT id, name FROM countries WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) CreateCountry(ctx context.Context, name string) (*domain.Country, error) {
	const op = "postgres.CatalogRepo.CreateCountry"

	db := r.handle()

	var c domain.Country
	err := db.QueryRow(ctx,
		`INSERT INTO countries(name) VALUES ($1) RETURNING id, name`,
		name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) UpdateCountry(ctx context.Context, id int64, name string) (*domain.Country, error) {
	const op = "postgres.CatalogRepo.UpdateCountry"

	db := r.handle()

	var c domain.Country
	err := db.QueryRow(ctx,
		`UPDATE countries SET name = $2 WHERE id = $1 RETURNING id, name`,
		id, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) DeleteCountry(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteCountry"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

func (r *CatalogRepo) ListCities(
	ctx context.Context,
	countryFilter string,
	limit, offset int,
) ([]domain.CityDetail, error) {
	const op = "postgres.CatalogRepo.ListCities"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT ci.id, ci.name, ci.country_id, co.name
       	 FROM cities ci
       	 JOIN countries co ON co.id = ci.country_id
      	 WHERE $1 = '' OR co.name ILIKE '%' || $1 || '%'
      	 ORDER BY ci.name
      	 LIMIT $2 OFFSET $3`,
		countryFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.CityDetail
	for rows.Next() {
		var c domain.CityDetail
		if err := rows.Scan(&c.ID, &c.Name, &c.CountryID, &c.CountryName); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetCity(ctx context.Context, id int64) (*domain.CityDetail, error) {
	const op = "postgres.CatalogRepo.GetCity"

	db := r.handle()

	var c domain.CityDetail
	err := db.QueryRow(ctx,
		`SELECT ci.id, ci.name, ci.country_id, co.name
       	 FROM cities ci
       	 JOIN countries co ON co.id = ci.country_id
      	 WHERE ci.id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.CountryID, &c.CountryName)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) CreateCity(ctx context.Context, name string, countryID int64) (*domain.City, error) {
	const op = "postgres.CatalogRepo.CreateCity"

	db := r.handle()

	var c domain.City
	err := db.QueryRow(ctx,
		`INSERT INTO cities(name, country_id)
       	 VALUES ($1, $2)
     	 RETURNING id, name, country_id`,
		name, countryID,
	).Scan(&c.ID, &c.Name, &c.CountryID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) UpdateCity(
	ctx context.Context,
	id int64,
	name string,
	countryID int64,
) (*domain.City, error) {
	const op = "postgres.CatalogRepo.UpdateCity"

	db := r.handle()

	var c domain.City
	err := db.QueryRow(ctx,
		`UPDATE cities SET name = $2, country_id = $3
      	 WHERE id = $1
     	 RETURNING id, name, country_id`,
		id, name, countryID,
	).Scan(&c.ID, &c.Name, &c.CountryID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &c, nil
}

func (r *CatalogRepo) DeleteCity(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteCity"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

func (r *CatalogRepo) ListAirports(
	ctx context.Context,
	cityFilter string,
	limit, offset int,
) ([]domain.AirportDetail, error) {
	const op = "postgres.CatalogRepo.ListAirports"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT a.id, a.name, a.city_id, ci.name, co.name
       	 FROM airports a
       	 JOIN cities ci ON ci.id = a.city_id
       	 JOIN countries co ON co.id = ci.country_id
      	 WHERE $1 = '' OR ci.name ILIKE '%' || $1 || '%'
      	 ORDER BY a.name
      	 LIMIT $2 OFFSET $3`,
		cityFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.AirportDetail
	for rows.Next() {
		var a domain.AirportDetail
		if err := rows.Scan(&a.ID, &a.Name, &a.CityID, &a.CityName, &a.CountryName); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *CatalogRepo) GetAirport(ctx context.Context, id int64) (*domain.AirportDetail, error) {
	const op = "postgres.CatalogRepo.GetAirport"

	db := r.handle()

	var a domain.AirportDetail
	err := db.QueryRow(ctx,
		`SELECT a.id, a.name, a.city_id, ci.name, co.name
       	 FROM airports a
       	 JOIN cities ci ON ci.id = a.city_id
       	 JOIN countries co ON co.id = ci.country_id
      	 WHERE a.id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.CityID, &a.CityName, &a.CountryName)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

func (r *CatalogRepo) CreateAirport(ctx context.Context, name string, cityID int64) (*domain.Airport, error) {
	const op = "postgres.CatalogRepo.CreateAirport"

	db := r.handle()

	var a domain.Airport
	err := db.QueryRow(ctx,
		`INSERT INTO airports(name, city_id)
       	 VALUES ($1, $2)
     	 RETURNING id, name, city_id`,
		name, cityID,
	).Scan(&a.ID, &a.Name, &a.CityID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

func (r *CatalogRepo) UpdateAirport(
	ctx context.Context,
	id int64,
	name string,
	cityID int64,
) (*domain.Airport, error) {
	const op = "postgres.CatalogRepo.UpdateAirport"

	db := r.handle()

	var a domain.Airport
	err := db.QueryRow(ctx,
		`UPDATE airports SET name = $2, city_id = $3
      	 WHERE id = $1
     	 RETURNING id, name, city_id`,
		id, name, cityID,
	).Scan(&a.ID, &a.Name, &a.CityID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

func (r *CatalogRepo) DeleteAirport(ctx context.Context, id int64) error {
	const op = "postgres.CatalogRepo.DeleteAirport"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}
