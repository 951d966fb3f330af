package orders

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
)

type seatKey struct {
	flightID int64
	row      int
	seat     int
}

// memStore is an in-memory OrderStore. InTx stages writes and commits them
// only when the closure returns nil, mirroring the rollback behavior of the
// real store. The seat uniqueness check in InsertTicket plays the role of
// the database unique constraint.
type memStore struct {
	mu        sync.Mutex
	airplanes map[int64]domain.Airplane // keyed by flight ID
	taken     map[seatKey]int64         // committed seat -> ticket ID
	orders    map[int64]domain.OrderWithTickets
	nextOrder int64
	nextTick  int64

	// stalePreCheck makes SeatTaken always report false, simulating a
	// concurrent transaction whose ticket is not yet visible to the
	// pre-check snapshot.
	stalePreCheck bool
}

func newMemStore() *memStore {
	return &memStore{
		airplanes: make(map[int64]domain.Airplane),
		taken:     make(map[seatKey]int64),
		orders:    make(map[int64]domain.OrderWithTickets),
	}
}

type memTx struct {
	s      *memStore
	order  *domain.Order
	staged []domain.Ticket
}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context, tx repository.OrderTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{s: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	// Commit.
	if tx.order != nil {
		owt := domain.OrderWithTickets{Order: *tx.order, Tickets: tx.staged}
		s.orders[tx.order.ID] = owt
		for _, t := range tx.staged {
			s.taken[seatKey{t.FlightID, t.Row, t.Seat}] = t.ID
		}
	}
	return nil
}

func (t *memTx) AirplaneByFlight(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	a, ok := t.s.airplanes[flightID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (t *memTx) SeatTaken(ctx context.Context, flightID int64, row, seat int) (bool, error) {
	if t.s.stalePreCheck {
		return false, nil
	}
	_, ok := t.s.taken[seatKey{flightID, row, seat}]
	return ok, nil
}

func (t *memTx) InsertOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	t.s.nextOrder++
	t.order = &domain.Order{ID: t.s.nextOrder, UserID: userID, CreatedAt: time.Now()}
	return t.order, nil
}

func (t *memTx) InsertTicket(ctx context.Context, orderID, flightID int64, row, seat int) (*domain.Ticket, error) {
	key := seatKey{flightID, row, seat}
	if _, ok := t.s.taken[key]; ok {
		return nil, repository.ErrSeatTaken
	}
	for _, st := range t.staged {
		if st.FlightID == flightID && st.Row == row && st.Seat == seat {
			return nil, repository.ErrSeatTaken
		}
	}

	t.s.nextTick++
	ticket := domain.Ticket{ID: t.s.nextTick, OrderID: orderID, FlightID: flightID, Row: row, Seat: seat}
	t.staged = append(t.staged, ticket)
	return &ticket, nil
}

func (s *memStore) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.OrderWithTickets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.OrderWithTickets
	for _, o := range s.orders {
		if o.Order.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memStore) GetByUser(ctx context.Context, userID, orderID int64) (*domain.OrderWithTickets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok || o.Order.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *memStore) committedTickets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.taken)
}

func (s *memStore) committedOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

var _ repository.OrderStore = (*memStore)(nil)

func newTestService(store *memStore) *Service {
	return New(store, nil, nil, nil, nil, nil)
}

func smallPlane() domain.Airplane {
	return domain.Airplane{
		ID:     1,
		Name:   "Cessna",
		TypeID: 1,
		Layout: domain.SeatLayout{Rows: 2, SeatsPerRow: 3},
	}
}

func TestPlaceCommitsOrderWithAllTickets(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	out, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 1, Seat: 1},
		{FlightID: 10, Row: 1, Seat: 2},
		{FlightID: 10, Row: 2, Seat: 3},
	}, "")
	require.NoError(t, err)

	assert.EqualValues(t, 7, out.Order.UserID)
	require.Len(t, out.Tickets, 3)
	for _, tk := range out.Tickets {
		assert.Equal(t, out.Order.ID, tk.OrderID)
	}
	assert.Equal(t, 3, store.committedTickets())
	assert.Equal(t, 1, store.committedOrders())
}

func TestPlaceEmptyOrderRejected(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.Place(context.Background(), 7, nil, "")
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Equal(t, 0, store.committedOrders())
}

func TestPlaceInvalidItemRollsBackWholeOrder(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	// Second of three items is out of range: row 5 on a 2-row plane.
	_, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 1, Seat: 1},
		{FlightID: 10, Row: 5, Seat: 2},
		{FlightID: 10, Row: 2, Seat: 3},
	}, "")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 1, ve.Index)
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "row", ve.Violations[0].Field)
	assert.Equal(t, 5, ve.Violations[0].Value)
	assert.Equal(t, 1, ve.Violations[0].Min)
	assert.Equal(t, 2, ve.Violations[0].Max)

	// Nothing survives the rollback, including the valid first ticket.
	assert.Equal(t, 0, store.committedTickets())
	assert.Equal(t, 0, store.committedOrders())
}

func TestPlaceReportsAllViolatedFields(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	_, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 0, Seat: 9},
	}, "")

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, ve.Index)
	require.Len(t, ve.Violations, 2)

	fields := []string{ve.Violations[0].Field, ve.Violations[1].Field}
	assert.Contains(t, fields, "row")
	assert.Contains(t, fields, "seat")
}

func TestPlaceSeatAlreadyTaken(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	store.taken[seatKey{10, 1, 1}] = 99
	svc := newTestService(store)

	_, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 2, Seat: 2},
		{FlightID: 10, Row: 1, Seat: 1},
	}, "")

	var ste *SeatTakenError
	require.ErrorAs(t, err, &ste)
	assert.Equal(t, 1, ste.Index)
	assert.EqualValues(t, 10, ste.FlightID)
	assert.Equal(t, 1, ste.Row)
	assert.Equal(t, 1, ste.Seat)

	assert.Equal(t, 0, store.committedOrders())
	assert.Equal(t, 1, store.committedTickets()) // only the pre-existing one
}

func TestPlaceConstraintCatchesStalePreCheck(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	store.taken[seatKey{10, 1, 1}] = 99
	store.stalePreCheck = true
	svc := newTestService(store)

	// The pre-check misses the booked seat; the insert-time uniqueness
	// check must still reject it.
	_, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 1, Seat: 1},
	}, "")

	var ste *SeatTakenError
	require.ErrorAs(t, err, &ste)
	assert.Equal(t, 0, ste.Index)
	assert.Equal(t, 0, store.committedOrders())
}

func TestPlaceDuplicateSeatWithinOrder(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	_, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 1, Seat: 1},
		{FlightID: 10, Row: 1, Seat: 1},
	}, "")

	var ste *SeatTakenError
	require.ErrorAs(t, err, &ste)
	assert.Equal(t, 1, ste.Index)
	assert.Equal(t, 0, store.committedOrders())
}

func TestPlaceUnknownFlight(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 404, Row: 1, Seat: 1},
	}, "")

	var fnf *FlightNotFoundError
	require.ErrorAs(t, err, &fnf)
	assert.Equal(t, 0, fnf.Index)
	assert.EqualValues(t, 404, fnf.FlightID)
}

func TestPlaceConcurrentSameSeat(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Place(context.Background(), int64(i+1), []Item{
				{FlightID: 10, Row: 1, Seat: 1},
			}, "")
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var ste *SeatTakenError
		if assert.ErrorAs(t, err, &ste) {
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
	assert.Equal(t, 1, store.committedTickets())
	assert.Equal(t, 1, store.committedOrders())
}

func TestGetScopedToUser(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	out, err := svc.Place(context.Background(), 7, []Item{
		{FlightID: 10, Row: 1, Seat: 1},
	}, "")
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), 7, out.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Order.ID, got.Order.ID)

	// Another user sees not-found, not forbidden.
	_, err = svc.Get(context.Background(), 8, out.Order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOnlyOwnOrders(t *testing.T) {
	store := newMemStore()
	store.airplanes[10] = smallPlane()
	svc := newTestService(store)

	_, err := svc.Place(context.Background(), 7, []Item{{FlightID: 10, Row: 1, Seat: 1}}, "")
	require.NoError(t, err)
	_, err = svc.Place(context.Background(), 8, []Item{{FlightID: 10, Row: 1, Seat: 2}}, "")
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), 7, 20, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.EqualValues(t, 7, mine[0].Order.UserID)
}
