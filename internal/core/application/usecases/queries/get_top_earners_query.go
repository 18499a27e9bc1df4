package queries

import (
	"context"
	"errors"
	"time"

	"courierledger/internal/core/domain/model/earnings"
	"courierledger/internal/core/domain/model/kernel"
	"courierledger/internal/pkg/errs"
	"courierledger/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultTopEarnersLimit = 10
	MaxTopEarnersLimit     = 100
)

var ErrGetTopEarnersQueryIsNotConstructed = errors.New(
	"GetTopEarnersQuery must be created via NewGetTopEarnersQuery constructor",
)

// GetTopEarnersQuery ranks couriers by net earnings inside a period. A zero
// limit means DefaultTopEarnersLimit.
//
//nolint:recvcheck //using for validation
type GetTopEarnersQuery struct {
	period earnings.Period
	limit  int
	guard  guard.ConstructorGuard
}

func NewGetTopEarnersQuery(period earnings.Period, limit int) (GetTopEarnersQuery, error) {
	parsed, err := earnings.ParsePeriod(string(period))
	if err != nil {
		return GetTopEarnersQuery{}, err
	}
	if limit == 0 {
		limit = DefaultTopEarnersLimit
	}
	if limit < 1 || limit > MaxTopEarnersLimit {
		return GetTopEarnersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxTopEarnersLimit)
	}

	return GetTopEarnersQuery{period: parsed, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTopEarnersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopEarnersQueryIsNotConstructed)
}

func (q GetTopEarnersQuery) Limit() int { return q.limit }

type TopEarner struct {
	CourierID  kernel.UUID
	Name       string
	Net        kernel.Money
	Deliveries int
}

// GetTopEarnersQueryHandler aggregates in SQL so only limit rows leave the database.
type GetTopEarnersQueryHandler struct {
	db     *gorm.DB
	window earnings.PeriodWindow
	now    func() time.Time
}

func NewGetTopEarnersQueryHandler(db *gorm.DB, window earnings.PeriodWindow) GetTopEarnersQueryHandler {
	return GetTopEarnersQueryHandler{db: db, window: window, now: time.Now}
}

func (h GetTopEarnersQueryHandler) WithClock(now func() time.Time) GetTopEarnersQueryHandler {
	h.now = now
	return h
}

func (h GetTopEarnersQueryHandler) Handle(ctx context.Context, query GetTopEarnersQuery) ([]TopEarner, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	start, end, err := h.window.Bounds(query.period, h.now())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.courier_id,
			COALESCE(c.name, ''),
			SUM(e.net_amount_cents)::bigint,
			COUNT(*)
		FROM earnings e
		LEFT JOIN couriers c ON c.id = e.courier_id
		WHERE e.earned_at >= ? AND e.earned_at <= ?
		GROUP BY e.courier_id, c.name
		ORDER BY SUM(e.net_amount_cents) DESC, e.courier_id
		LIMIT ?
	`, start, end, query.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]TopEarner, 0, query.limit)
	for rows.Next() {
		var (
			id         uuid.UUID
			name       string
			net        int64
			deliveries int
		)
		if err = rows.Scan(&id, &name, &net, &deliveries); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		result = append(result, TopEarner{
			CourierID:  courierID,
			Name:       name,
			Net:        kernel.Money(net),
			Deliveries: deliveries,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
