package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oleksiirud/skyport/internal/domain"
)

type FlightRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *FlightRepo) With(db DB) *FlightRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *FlightRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const flightDetailSelect = `
	SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
	       r.id, r.source_id, r.destination_id, r.distance_km,
	       sa.id, sa.name, sa.city_id, sc.name, sco.name,
	       da.id, da.name, da.city_id, dc.name, dco.name,
	       p.id, p.name, p.type_id, p.rows, p.seats_per_row
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports sa ON sa.id = r.source_id
	JOIN cities sc ON sc.id = sa.city_id
	JOIN countries sco ON sco.id = sc.country_id
	JOIN airports da ON da.id = r.destination_id
	JOIN cities dc ON dc.id = da.city_id
	JOIN countries dco ON dco.id = dc.country_id
	JOIN airplanes p ON p.id = f.airplane_id`

func scanFlightDetail(row interface{ Scan(dest ...any) error }) (*domain.FlightDetail, error) {
	var fd domain.FlightDetail
	err := row.Scan(
		&fd.ID, &fd.RouteID, &fd.AirplaneID, &fd.DepartureTime, &fd.ArrivalTime,
		&fd.Route.ID, &fd.Route.SourceID, &fd.Route.DestinationID, &fd.Route.DistanceKM,
		&fd.Route.Source.ID, &fd.Route.Source.Name, &fd.Route.Source.CityID,
		&fd.Route.Source.CityName, &fd.Route.Source.CountryName,
		&fd.Route.Destination.ID, &fd.Route.Destination.Name, &fd.Route.Destination.CityID,
		&fd.Route.Destination.CityName, &fd.Route.Destination.CountryName,
		&fd.Airplane.ID, &fd.Airplane.Name, &fd.Airplane.TypeID,
		&fd.Airplane.Layout.Rows, &fd.Airplane.Layout.SeatsPerRow,
	)
	if err != nil {
		return nil, err
	}
	return &fd, nil
}

func (r *FlightRepo) ListFlights(ctx context.Context, limit, offset int) ([]domain.FlightDetail, error) {
	const op = "postgres.FlightRepo.ListFlights"

	db := r.handle()

	rows, err := db.Query(ctx,
		flightDetailSelect+`
		 ORDER BY f.departure_time
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.FlightDetail
	for rows.Next() {
		fd, err := scanFlightDetail(rows)
		if err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, *fd)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	if err := r.attachCrews(ctx, out); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *FlightRepo) GetFlight(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	const op = "postgres.FlightRepo.GetFlight"

	db := r.handle()

	fd, err := scanFlightDetail(db.QueryRow(ctx, flightDetailSelect+` WHERE f.id = $1`, id))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	one := []domain.FlightDetail{*fd}
	if err := r.attachCrews(ctx, one); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &one[0], nil
}

func (r *FlightRepo) attachCrews(ctx context.Context, flights []domain.FlightDetail) error {
	if len(flights) == 0 {
		return nil
	}

	db := r.handle()

	ids := make([]int64, len(flights))
	byID := make(map[int64]*domain.FlightDetail, len(flights))
	for i := range flights {
		ids[i] = flights[i].ID
		byID[flights[i].ID] = &flights[i]
	}

	rows, err := db.Query(ctx,
		`SELECT flight_id, crew_id
       	 FROM flight_crews
      	 WHERE flight_id = ANY($1)
      	 ORDER BY crew_id`,
		ids,
	)
	if err != nil {
		return err
	}

	defer rows.Close()

	for rows.Next() {
		var flightID, crewID int64
		if err := rows.Scan(&flightID, &crewID); err != nil {
			return err
		}
		if fd, ok := byID[flightID]; ok {
			fd.CrewIDs = append(fd.CrewIDs, crewID)
		}
	}

	return rows.Err()
}

func (r *FlightRepo) CreateFlight(ctx context.Context, f domain.Flight) (*domain.Flight, error) {
	const op = "postgres.FlightRepo.CreateFlight"

	db := r.handle()

	var out domain.Flight
	err := db.QueryRow(ctx,
		`INSERT INTO flights(route_id, airplane_id, departure_time, arrival_time)
       	 VALUES ($1, $2, $3, $4)
     	 RETURNING id, route_id, airplane_id, departure_time, arrival_time`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime,
	).Scan(&out.ID, &out.RouteID, &out.AirplaneID, &out.DepartureTime, &out.ArrivalTime)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if err := r.replaceCrews(ctx, out.ID, f.CrewIDs); err != nil {
		return nil, wrapDBErr(op, err)
	}
	out.CrewIDs = f.CrewIDs

	return &out, nil
}

func (r *FlightRepo) UpdateFlight(ctx context.Context, f domain.Flight) (*domain.Flight, error) {
	const op = "postgres.FlightRepo.UpdateFlight"

	db := r.handle()

	var out domain.Flight
	err := db.QueryRow(ctx,
		`UPDATE flights
        	SET route_id = $2, airplane_id = $3, departure_time = $4, arrival_time = $5
      	 WHERE id = $1
     	 RETURNING id, route_id, airplane_id, departure_time, arrival_time`,
		f.ID, f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime,
	).Scan(&out.ID, &out.RouteID, &out.AirplaneID, &out.DepartureTime, &out.ArrivalTime)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if err := r.replaceCrews(ctx, out.ID, f.CrewIDs); err != nil {
		return nil, wrapDBErr(op, err)
	}
	out.CrewIDs = f.CrewIDs

	return &out, nil
}

func (r *FlightRepo) replaceCrews(ctx context.Context, flightID int64, crewIDs []int64) error {
	db := r.handle()

	if _, err := db.Exec(ctx,
		`DELETE FROM flight_crews WHERE flight_id = $1`, flightID,
	); err != nil {
		return err
	}

	if len(crewIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, crewID := range crewIDs {
		batch.Queue(
			`INSERT INTO flight_crews(flight_id, crew_id) VALUES ($1, $2)`,
			flightID, crewID,
		)
	}

	return db.SendBatch(ctx, batch).Close()
}

func (r *FlightRepo) DeleteFlight(ctx context.Context, id int64) error {
	const op = "postgres.FlightRepo.DeleteFlight"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapDBErr(op, pgx.ErrNoRows)
	}

	return nil
}

func (r *FlightRepo) FlightSeatMap(ctx context.Context, flightID int64) (*domain.FlightSeatMap, error) {
	const op = "postgres.FlightRepo.FlightSeatMap"

	db := r.handle()

	sm := domain.FlightSeatMap{FlightID: flightID}

	err := db.QueryRow(ctx,
		`SELECT p.rows, p.seats_per_row
       	 FROM flights f
       	 JOIN airplanes p ON p.id = f.airplane_id
      	 WHERE f.id = $1`,
		flightID,
	).Scan(&sm.Layout.Rows, &sm.Layout.SeatsPerRow)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT row, seat
       	 FROM tickets
      	 WHERE flight_id = $1
      	 ORDER BY row, seat`,
		flightID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var ts domain.TakenSeat
		if err := rows.Scan(&ts.Row, &ts.Seat); err != nil {
			return nil, wrapDBErr(op, err)
		}
		sm.Taken = append(sm.Taken, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &sm, nil
}
