package registrar

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
)

func (s *service) GetChanges(ctx context.Context, principal domain.Principal, filter store.ChangesFilter) ([]ChangeView, uint64, error) {
	filter.Scope = principal.Scope
	rows, total, err := s.store.GetChanges(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ChangeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ChangeView{
			SubjectType:  string(row.SubjectType),
			SubjectID:    row.SubjectID,
			BarangayCode: row.BarangayCode,
			Operation:    row.Operation,
			PrincipalID:  row.PrincipalID,
			ChangedAt:    row.ChangedAt,
		})
	}
	return views, total, nil
}

func warningsJSON(warnings []deriver.Warning) (datatypes.JSON, error) {
	encoded, err := json.Marshal(map[string]interface{}{"warnings": warnings})
	if err != nil {
		return nil, fmt.Errorf("failed to encode warnings: %w", err)
	}
	return datatypes.JSON(encoded), nil
}
