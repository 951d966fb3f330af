package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

type OrderRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *OrderRepo) With(db DB) *OrderRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *OrderRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *OrderRepo) AirplaneByFlight(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	const op = "postgres.OrderRepo.AirplaneByFlight"

	db := r.handle()

	var a domain.Airplane
	err := db.QueryRow(ctx,
		`SELECT p.id, p.name, p.type_id, p.rows, p.seats_per_row
       	 FROM flights f
       	 JOIN airplanes p ON p.id = f.airplane_id
      	 WHERE f.id = $1`,
		flightID,
	).Scan(&a.ID, &a.Name, &a.TypeID, &a.Layout.Rows, &a.Layout.SeatsPerRow)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &a, nil
}

func (r *OrderRepo) SeatTaken(ctx context.Context, flightID int64, row, seat int) (bool, error) {
	const op = "postgres.OrderRepo.SeatTaken"

	db := r.handle()

	var taken bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS(
       		SELECT 1 FROM tickets
      		 WHERE flight_id = $1 AND row = $2 AND seat = $3)`,
		flightID, row, seat,
	).Scan(&taken)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	return taken, nil
}

func (r *OrderRepo) InsertOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	const op = "postgres.OrderRepo.InsertOrder"

	db := r.handle()

	var o domain.Order
	err := db.QueryRow(ctx,
		`INSERT INTO orders(user_id)
       	 VALUES ($1)
     	 RETURNING id, user_id, created_at`,
		userID,
	).Scan(&o.ID, &o.UserID, &o.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &o, nil
}

func (r *OrderRepo) InsertTicket(
	ctx context.Context,
	orderID, flightID int64,
	row, seat int,
) (*domain.Ticket, error) {
	const op = "postgres.OrderRepo.InsertTicket"

	db := r.handle()

	var t domain.Ticket
	err := db.QueryRow(ctx,
		`INSERT INTO tickets(order_id, flight_id, row, seat)
       	 VALUES ($1, $2, $3, $4)
     	 RETURNING id, order_id, flight_id, row, seat`,
		orderID, flightID, row, seat,
	).Scan(&t.ID, &t.OrderID, &t.FlightID, &t.Row, &t.Seat)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &t, nil
}

func (r *OrderRepo) ListByUser(
	ctx context.Context,
	userID int64,
	limit, offset int,
) ([]domain.OrderWithTickets, error) {
	const op = "postgres.OrderRepo.ListByUser"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, user_id, created_at
       	 FROM orders
      	 WHERE user_id = $1
      	 ORDER BY created_at DESC
      	 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.OrderWithTickets
	orderIDs := make([]int64, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, domain.OrderWithTickets{Order: o})
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	if len(out) == 0 {
		return out, nil
	}

	byOrder := make(map[int64]*domain.OrderWithTickets, len(out))
	for i := range out {
		byOrder[out[i].Order.ID] = &out[i]
	}

	trows, err := db.Query(ctx,
		`SELECT id, order_id, flight_id, row, seat
       	 FROM tickets
      	 WHERE order_id = ANY($1)
      	 ORDER BY id`,
		orderIDs,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer trows.Close()

	for trows.Next() {
		var t domain.Ticket
		if err := trows.Scan(&t.ID, &t.OrderID, &t.FlightID, &t.Row, &t.Seat); err != nil {
			return nil, wrapDBErr(op, err)
		}
		if owt, ok := byOrder[t.OrderID]; ok {
			owt.Tickets = append(owt.Tickets, t)
		}
	}
	if err := trows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return out, nil
}

func (r *OrderRepo) GetByUser(ctx context.Context, userID, orderID int64) (*domain.OrderWithTickets, error) {
	const op = "postgres.OrderRepo.GetByUser"

	db := r.handle()

	var out domain.OrderWithTickets
	err := db.QueryRow(ctx,
		`SELECT id, user_id, created_at
       	 FROM orders
      	 WHERE id = $1 AND user_id = $2`,
		orderID, userID,
	).Scan(&out.Order.ID, &out.Order.UserID, &out.Order.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	rows, err := db.Query(ctx,
		`SELECT id, order_id, flight_id, row, seat
       	 FROM tickets
      	 WHERE order_id = $1
      	 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.OrderID, &t.FlightID, &t.Row, &t.Seat); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out.Tickets = append(out.Tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &out, nil
}

// OrderStore adapts the Store to repository.OrderStore: InTx binds an
// OrderRepo to one transaction so the pre-check and the inserts share a
// snapshot, and either everything commits or nothing does.
type OrderStore struct {
	store *Store
}

func NewOrderStore(store *Store) *OrderStore {
	return &OrderStore{store: store}
}

func (s *OrderStore) InTx(
	ctx context.Context,
	fn func(ctx context.Context, tx repository.OrderTx) error,
) error {
	return s.store.RunTx(ctx, nil, func(ctx context.Context, tx DB) error {
		return fn(ctx, s.store.Orders().With(tx))
	})
}

func (s *OrderStore) ListByUser(
	ctx context.Context,
	userID int64,
	limit, offset int,
) ([]domain.OrderWithTickets, error) {
	return s.store.Orders().ListByUser(ctx, userID, limit, offset)
}

func (s *OrderStore) GetByUser(ctx context.Context, userID, orderID int64) (*domain.OrderWithTickets, error) {
	return s.store.Orders().GetByUser(ctx, userID, orderID)
}

var _ repository.OrderStore = (*OrderStore)(nil)
var _ repository.OrderTx = (*OrderRepo)(nil)
