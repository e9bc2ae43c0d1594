package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/m04kA/parlourease/pkg/dbmetrics"
)

// ErrApplySchema возвращается при ошибке применения схемы
var ErrApplySchema = errors.New("schema: failed to apply schema")

//go:embed schema.sql
var ddl string

// DDL возвращает SQL схемы
func DDL() string {
	return ddl
}

// Apply создаёт таблицы, если их ещё нет. Повторный вызов безопасен.
func Apply(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: %v", ErrApplySchema, err)
	}
	return nil
}
