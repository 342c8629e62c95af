package get_time_slots

import "context"

// UseCase выборка слотов за период
type UseCase struct {
	appState AppState
	logger   Logger
}

// New создает новый экземпляр UseCase
func New(appState AppState, logger Logger) *UseCase {
	return &UseCase{
		appState: appState,
		logger:   logger,
	}
}

// Execute возвращает слоты, попадающие в запрошенный период.
// Период шире окна генерации урезается окном
func (u *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		u.logger.Warn("Execute: validation failed: %v", err)
		return nil, err
	}

	slots := u.appState.SlotsInRange(req.StartDate, req.EndDate)
	duration := u.appState.Settings().SlotDuration

	u.logger.Info("Execute: returning %d slots for period %s - %s",
		len(slots), req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	return fromDomainSlots(slots, duration), nil
}
