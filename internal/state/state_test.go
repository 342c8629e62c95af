package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zero-Index-Tech/ZeroBook/internal/domain"
	"github.com/Zero-Index-Tech/ZeroBook/pkg/types"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// 2025-01-06 - понедельник
var testNow = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

func testSettings() domain.BookingSettings {
	return domain.BookingSettings{
		SlotDuration: 30,
		WorkingHours: []domain.WorkingHours{
			{Day: 1, Enabled: true, StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00")},
		},
		BusinessName: "Test Business",
	}
}

func newTestState(t *testing.T) *AppState {
	t.Helper()
	return NewWithTimeProvider(testSettings(), 7, &fixedTimeProvider{now: testNow})
}

func TestNew_GeneratesSlotsForWindow(t *testing.T) {
	s := newTestState(t)

	slots := s.Slots()

	// 7-дневное окно покрывает два понедельника по 2 слота
	require.Len(t, slots, 4)
	assert.Equal(t, "2025-01-06-09:00", slots[0].ID)
	assert.Equal(t, "2025-01-13-09:30", slots[3].ID)
}

func TestBook_Success(t *testing.T) {
	s := newTestState(t)

	booking, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Jane Doe", booking.CustomerName)
	assert.Equal(t, "2025-01-06-09:00", booking.TimeSlot.ID)
	assert.Equal(t, testNow, booking.CreatedAt)

	// Слот помечен занятым
	slots := s.Slots()
	assert.True(t, slots[0].IsBooked)
	require.NotNil(t, slots[0].BookedBy)
	assert.Equal(t, "Jane Doe", *slots[0].BookedBy)

	// Бронирование появилось в списке
	bookings := s.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.ID, bookings[0].ID)
}

func TestBook_SlotNotFound(t *testing.T) {
	s := newTestState(t)

	booking, err := s.Book("2025-01-06-23:00", domain.CustomerInfo{CustomerName: "Jane"})

	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Nil(t, booking)
	assert.Empty(t, s.Bookings())
}

func TestBook_SlotAlreadyBooked(t *testing.T) {
	s := newTestState(t)

	_, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "Jane"})
	require.NoError(t, err)

	booking, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "John"})

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.Nil(t, booking)

	// Повторная попытка ничего не изменила
	require.Len(t, s.Bookings(), 1)
	slots := s.Slots()
	require.NotNil(t, slots[0].BookedBy)
	assert.Equal(t, "Jane", *slots[0].BookedBy)
}

func TestBookingByID(t *testing.T) {
	s := newTestState(t)

	created, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "Jane"})
	require.NoError(t, err)

	found := s.BookingByID(created.ID)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	assert.Nil(t, s.BookingByID("missing"))
}

func TestUpdateSettings_RegeneratesSlots(t *testing.T) {
	s := newTestState(t)

	settings := testSettings()
	settings.SlotDuration = 60
	s.UpdateSettings(settings)

	slots := s.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "2025-01-06-09:00", slots[0].ID)
	assert.Equal(t, "10:00", slots[0].EndTime.String())
}

func TestUpdateSettings_KeepsBookingMarkOnSurvivingSlot(t *testing.T) {
	s := newTestState(t)

	_, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "Jane"})
	require.NoError(t, err)

	// Расширяем рабочие часы - слот с бронированием переживает перегенерацию
	settings := testSettings()
	settings.WorkingHours[0].EndTime = types.TimeString("11:00")
	s.UpdateSettings(settings)

	slots := s.Slots()
	require.Len(t, slots, 8)
	assert.True(t, slots[0].IsBooked)
	require.NotNil(t, slots[0].BookedBy)
	assert.Equal(t, "Jane", *slots[0].BookedBy)
}

func TestUpdateSettings_DisabledDayDropsSlotsButKeepsBooking(t *testing.T) {
	s := newTestState(t)

	created, err := s.Book("2025-01-06-09:00", domain.CustomerInfo{CustomerName: "Jane"})
	require.NoError(t, err)

	settings := testSettings()
	settings.WorkingHours[0].Enabled = false
	s.UpdateSettings(settings)

	// Слоты исчезли, осиротевшее бронирование осталось
	assert.Empty(t, s.Slots())
	require.Len(t, s.Bookings(), 1)
	assert.Equal(t, created.ID, s.Bookings()[0].ID)
}

func TestSlotsInRange(t *testing.T) {
	s := newTestState(t)

	from := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	slots := s.SlotsInRange(from, to)

	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.Equal(t, "2025-01-13", slot.Date)
	}
}

func TestRestore_MarksRestoredBookings(t *testing.T) {
	s := newTestState(t)

	saved := []domain.Booking{
		{
			ID:           "restored-1",
			CustomerName: "Jane Doe",
			TimeSlot:     domain.TimeSlot{ID: "2025-01-06-09:30"},
			CreatedAt:    testNow.Add(-24 * time.Hour),
		},
	}

	s.Restore(saved)

	require.Len(t, s.Bookings(), 1)
	slots := s.Slots()
	require.Len(t, slots, 4)
	assert.False(t, slots[0].IsBooked)
	assert.True(t, slots[1].IsBooked)
}

func TestSettings_ReturnsCopy(t *testing.T) {
	s := newTestState(t)

	settings := s.Settings()
	settings.WorkingHours[0].Enabled = false

	// Мутация копии не влияет на состояние
	assert.True(t, s.Settings().WorkingHours[0].Enabled)
}
