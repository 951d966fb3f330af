package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oleksiirud/skyport/internal/domain"
)

type RouteRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *RouteRepo) With(db DB) *RouteRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *RouteRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const routeDetailSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.distance_km,
	       sa.id, sa.name, sa.city_id, sc.name, sco.name,
	       da.id, da.name, da.city_id, dc.name, dco.name
	FROM routes r
	JOIN airports sa ON sa.id = r.source_id
	JOIN cities sc ON sc.id = sa.city_id
	JOIN countries sco ON sco.id = sc.country_id
	JOIN airports da ON da.id = r.destination_id
	JOIN cities dc ON dc.id = da.city_id
	JOIN countries dco ON dco.id = dc.country_id`

func scanRouteDetail(row interface{ Scan(dest ...any) error }) (*domain.RouteDetail, error) {
	var rd domain.RouteDetail
	err := row.Scan(
		&rd.ID, &rd.SourceID, &rd.DestinationID, &rd.DistanceKM,
		&rd.Source.ID, &rd.Source.Name, &rd.Source.CityID,
		&rd.Source.CityName, &rd.Source.CountryName,
		&rd.Destination.ID, &rd.Destination.Name, &rd.Destination.CityID,
		&rd.Destination.CityName, &rd.Destination.CountryName,
	)
	if err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *RouteRepo) ListRoutes(
	ctx context.Context,
	sourceFilter, destinationFilter string,
	limit, offset int,
) ([]domain.RouteDetail, error) {
	const op = "postgres.RouteRepo.ListRoutes"

	db := r.handle()

	rows, err := db.Query(ctx,
		routeDetailSelect+`
		 WHERE ($1 = '' OR sc.name ILIKE '%' || $1 || '%')
		   AND ($2 = '' OR dc.name ILIKE '%' || $2 || '%')
		 ORDER BY r.id
		 LIMIT $3 OFFSET $4`,
		sourceFilter, destinationFilter, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.RouteDetail
	for rows.Next() {
		rd, err := scanRouteDetail(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *RouteRepo) GetRoute(ctx context.Context, id int64) (*domain.RouteDetail, error) {
	const op = "postgres.RouteRepo.GetRoute"

	db := r.handle()

	rd, err := scanRouteDetail(db.QueryRow(ctx, routeDetailSelect+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return rd, nil
}

func (r *RouteRepo) CreateRoute(
	ctx context.Context,
	sourceID, destinationID int64,
	distanceKM int,
) (*domain.Route, error) {
	const op = "postgres.RouteRepo.CreateRoute"

	db := r.handle()

	var route domain.Route
	err := db.QueryRow(ctx,
		`INSERT INTO routes(source_id, destination_id, distance_km)
       	 VALUES ($1, $2, $3)
     	 RETURNING id, source_id, destination_id, distance_km`,
		sourceID, destinationID, distanceKM,
	).Scan(&route.ID, &route.SourceID, &route.DestinationID, &route.DistanceKM)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &route, nil
}

// RoutePlaceNames builds the "city, country" geocoder queries for both route
// endpoints in one round trip.
func (r *RouteRepo) RoutePlaceNames(
	ctx context.Context,
	sourceID, destinationID int64,
) (string, string, error) {
	const op = "postgres.RouteRepo.RoutePlaceNames"

	db := r.handle()

	var srcCity, srcCountry, dstCity, dstCountry string
	err := db.QueryRow(ctx,
		`SELECT sc.name, sco.name, dc.name, dco.name
       	 FROM airports sa
       	 JOIN cities sc ON sc.id = sa.city_id
       	 JOIN countries sco ON sco.id = sc.country_id,
       	      airports da
       	 JOIN cities dc ON dc.id = da.city_id
       	 JOIN countries dco ON dco.id = dc.country_id
      	 WHERE sa.id = $1 AND da.id = $2`,
		sourceID, destinationID,
	).Scan(&srcCity, &srcCountry, &dstCity, &dstCountry)
	if err != nil {
		return "", "", wrapDBErr(op, err)
	}

	source := fmt.Sprintf("%s, %s", srcCity, srcCountry)
	destination := fmt.Sprintf("%s, %s", dstCity, dstCountry)

	return source, destination, nil
}
