package postgre

import (
	"encoding/json"

	"analytics-srv/internal/model"

	"github.com/aarondl/null/v8"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanDashboard(row scanner) (model.Dashboard, error) {
	var (
		d           model.Dashboard
		description null.String
		widgets     []byte
	)
	if err := row.Scan(&d.ID, &d.Name, &description, &widgets, &d.IsDefault, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return model.Dashboard{}, err
	}
	d.Description = description.String

	if len(widgets) > 0 {
		if err := json.Unmarshal(widgets, &d.Widgets); err != nil {
			return model.Dashboard{}, err
		}
	}
	if d.Widgets == nil {
		d.Widgets = []model.DashboardWidget{}
	}
	return d, nil
}

func marshalWidgets(ws []model.DashboardWidget) ([]byte, error) {
	if ws == nil {
		ws = []model.DashboardWidget{}
	}
	return json.Marshal(ws)
}

func toNullDescription(s string) null.String {
	return null.NewString(s, s != "")
}
