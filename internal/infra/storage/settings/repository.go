package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/dbmetrics"
	"github.com/m04kA/parlourease/pkg/psqlbuilder"
)

const (
	tableSettings = "salon_settings"
	settingsRowID = 1
)

// Repository репозиторий настроек салона (одна строка)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает настройки салона
// Если строка ещё не создана, возвращаются значения по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("festival_mode", "updated_at").
		From(tableSettings).
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.SalonSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(&settings.FestivalMode, &settings.UpdatedAt)
	if err == sql.ErrNoRows {
		return &domain.SalonSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &settings, nil
}

// Update сохраняет настройки (upsert единственной строки)
func (r *Repository) Update(ctx context.Context, settings *domain.SalonSettings) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsert(settings).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	var saved domain.SalonSettings
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&saved.FestivalMode, &saved.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	return &saved, nil
}

func buildUpsert(settings *domain.SalonSettings) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableSettings).
		Columns("id", "festival_mode").
		Values(settingsRowID, settings.FestivalMode).
		Suffix("ON CONFLICT (id) DO UPDATE SET festival_mode = EXCLUDED.festival_mode, updated_at = NOW() RETURNING festival_mode, updated_at")
}
