package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule policy
// Рабочий день: слоты по 30 минут с 09:00, последний старт 20:30,
// процедура должна закончиться не позже 21:00
const (
	DefaultSlotMinutes        = 30
	DefaultOpenTime           = "09:00"
	DefaultCloseTime          = "21:00"
	DefaultDurationMinutes    = 30
	DefaultLockTTLSeconds     = 30
	DefaultSweepPeriodMinutes = 5
	DefaultRetentionMonths    = 3
)

// Validation limits for optional client fields
const (
	MaxNameLength    = 100
	MaxPhoneLength   = 20
	MaxServiceLength = 200
)

// AdminClientName имя клиента для слотов, закрытых администратором
const AdminClientName = "Admin"
