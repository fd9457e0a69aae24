package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/antoniozubakha/salon-booking-service/internal/domain"
	"github.com/antoniozubakha/salon-booking-service/internal/infra/storage/reservation"
	"github.com/antoniozubakha/salon-booking-service/internal/lockguard"
	"github.com/antoniozubakha/salon-booking-service/internal/slotgrid"
	"github.com/antoniozubakha/salon-booking-service/pkg/ptr"
	"github.com/antoniozubakha/salon-booking-service/pkg/types"
)

// --- Моки ---

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepository) ListForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

// directTxManager выполняет функцию без реальной транзакции
type directTxManager struct{}

func (m *directTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(format string, v ...interface{})  {}
func (l *nopLogger) Warn(format string, v ...interface{})  {}
func (l *nopLogger) Error(format string, v ...interface{}) {}

// --- Хелперы ---

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testDate() time.Time {
	return time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, repo ReservationRepository) (*UseCase, *lockguard.Coordinator) {
	t.Helper()

	grid, err := slotgrid.New("09:00", "21:00", 30)
	require.NoError(t, err)

	locks := lockguard.NewCoordinator(30*time.Second, time.Minute, nil, nil)

	uc := NewUseCase(repo, locks, grid, &directTxManager{}, nil, &nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	return uc, locks
}

func validRequest() *Request {
	return &Request{
		Date:            testDate(),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Name:            ptr.Ptr("Мария"),
		Phone:           ptr.Ptr("+79001234567"),
		Service:         ptr.Ptr("Маникюр"),
	}
}

// --- Тесты ---

func TestExecute_Success(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	repo.On("ListForDate", mock.Anything, testDate()).Return([]*domain.Reservation{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.AppointmentID)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[1].Time)
	assert.Equal(t, testNow, resp.Slots[0].BookedAt)

	// Обе записи принадлежат одному appointment
	createdCalls := 0
	for _, call := range repo.Calls {
		if call.Method == "Create" {
			createdCalls++
			res := call.Arguments.Get(1).(*domain.Reservation)
			assert.Equal(t, resp.AppointmentID, res.AppointmentID)
		}
	}
	assert.Equal(t, 2, createdCalls)

	// Блокировки не переживают запрос
	assert.Equal(t, 0, locks.Len())
	repo.AssertExpectations(t)
}

func TestExecute_DefaultDuration(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, _ := newTestUseCase(t, repo)

	repo.On("ListForDate", mock.Anything, testDate()).Return([]*domain.Reservation{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.DurationMinutes = 0

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
}

func TestExecute_ValidationErrors(t *testing.T) {
	longString := func(n int) *string {
		s := make([]byte, n)
		for i := range s {
			s[i] = 'a'
		}
		return ptr.Ptr(string(s))
	}

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing date", func(req *Request) { req.Date = time.Time{} }},
		{"missing time", func(req *Request) { req.StartTime = "" }},
		{"malformed time", func(req *Request) { req.StartTime = "25:99" }},
		{"negative duration", func(req *Request) { req.DurationMinutes = -30 }},
		{"name too long", func(req *Request) { req.Name = longString(domain.MaxNameLength + 1) }},
		{"phone too long", func(req *Request) { req.Phone = longString(domain.MaxPhoneLength + 1) }},
		{"service too long", func(req *Request) { req.Service = longString(domain.MaxServiceLength + 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockReservationRepository)
			uc, _ := newTestUseCase(t, repo)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestExecute_SameDayInWesternZone(t *testing.T) {
	// Дата брони разобрана в UTC, серверные часы — в зоне к западу от UTC;
	// запись на сегодня не должна отклоняться как прошедшая
	repo := new(MockReservationRepository)
	uc, _ := newTestUseCase(t, repo)
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, 6, 10, 10, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
	}

	repo.On("ListForDate", mock.Anything, testDate()).Return([]*domain.Reservation{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
}

func TestExecute_DateInPast(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, _ := newTestUseCase(t, repo)

	req := validRequest()
	req.Date = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
	repo.AssertNotCalled(t, "ListForDate")
}

func TestExecute_TimeOffGrid(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, _ := newTestUseCase(t, repo)

	req := validRequest()
	req.StartTime = "10:15"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_WontFitBeforeClosing(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	req := validRequest()
	req.StartTime = "20:30"
	req.DurationMinutes = 90

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrWontFit)
	assert.Equal(t, 0, locks.Len())
	repo.AssertNotCalled(t, "Create")
}

func TestExecute_SlotHeldByAnotherRequest(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	// Конкурирующий запрос держит второй слот процедуры
	require.True(t, locks.TryLock(domain.SlotKey{Date: "2025-06-10", Time: "10:30"}))

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotBusy)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, types.TimeString("10:30"), conflict.Slot)
	assert.True(t, conflict.Held)

	// Захваченная блокировка первого слота откатилась, чужая осталась
	assert.Equal(t, 1, locks.Len())
	assert.True(t, locks.TryLock(domain.SlotKey{Date: "2025-06-10", Time: "10:00"}))
	repo.AssertNotCalled(t, "ListForDate")
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	existing := []*domain.Reservation{
		{Date: testDate(), Time: "10:30", Name: ptr.Ptr("Анна")},
	}
	repo.On("ListForDate", mock.Anything, testDate()).Return(existing, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotBusy)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, types.TimeString("10:30"), conflict.Slot)
	assert.False(t, conflict.Held)

	assert.Equal(t, 0, locks.Len())
	repo.AssertNotCalled(t, "Create")
}

func TestExecute_UniqueViolationOnInsert(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	// Журнал пуст на момент чтения, но конкурент из другого процесса
	// успевает вставить раньше — срабатывает уникальный индекс
	repo.On("ListForDate", mock.Anything, testDate()).Return([]*domain.Reservation{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(reservation.ErrSlotTaken)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotBusy)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, types.TimeString("10:00"), conflict.Slot)

	assert.Equal(t, 0, locks.Len())
}

func TestExecute_StorageFailure(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	repo.On("ListForDate", mock.Anything, testDate()).Return(nil, errors.New("connection refused"))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrSlotBusy)
	assert.Equal(t, 0, locks.Len())
}

func TestExecute_SecondInsertFails_NoPartialResponse(t *testing.T) {
	repo := new(MockReservationRepository)
	uc, locks := newTestUseCase(t, repo)

	repo.On("ListForDate", mock.Anything, testDate()).Return([]*domain.Reservation{}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
		return res.Time == "10:00"
	})).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(res *domain.Reservation) bool {
		return res.Time == "10:30"
	})).Return(errors.New("disk full"))

	resp, err := uc.Execute(context.Background(), validRequest())

	// Транзакция откатывается целиком: ни ответа, ни частичной записи
	assert.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, resp)
	assert.Equal(t, 0, locks.Len())
}

func TestExecute_OverlappingBookings(t *testing.T) {
	// Сценарий: бронь 10:00 на 60 минут, затем бронь 10:30 на 30 минут
	repo := new(MockReservationRepository)
	uc, _ := newTestUseCase(t, repo)

	repo.On("ListForDate", mock.Anything, testDate()).Return([]*domain.Reservation{}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Twice()

	first := validRequest()
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Вторая бронь видит в журнале слоты первой
	taken := []*domain.Reservation{
		{Date: testDate(), Time: "10:00"},
		{Date: testDate(), Time: "10:30"},
	}
	repo.On("ListForDate", mock.Anything, testDate()).Return(taken, nil).Once()

	second := validRequest()
	second.StartTime = "10:30"
	second.DurationMinutes = 30

	_, err = uc.Execute(context.Background(), second)

	var conflict *SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, types.TimeString("10:30"), conflict.Slot)
}
