package sqlite

import "carcare/internal/domain/entity"

// SQLite keeps times as text with their zone offset, so "order by" on a time
// column is only chronological when every row is stored in the same zone.
// The helpers below return UTC copies of entities about to be written.

func reminderRow(r *entity.Reminder) *entity.Reminder {
	row := *r
	row.DueAt = row.DueAt.UTC()
	row.CreatedAt = row.CreatedAt.UTC()
	if row.CompletedAt != nil {
		completed := row.CompletedAt.UTC()
		row.CompletedAt = &completed
	}
	return &row
}

func historyRow(h *entity.History) *entity.History {
	row := *h
	row.CompletedAt = row.CompletedAt.UTC()
	if row.LastDate != nil {
		last := row.LastDate.UTC()
		row.LastDate = &last
	}
	return &row
}

func serviceRow(s *entity.Service) *entity.Service {
	row := *s
	row.LastDate = row.LastDate.UTC()
	row.DueDate = row.DueDate.UTC()
	row.CreatedAt = row.CreatedAt.UTC()
	return &row
}

func vehicleRow(v *entity.Vehicle) *entity.Vehicle {
	row := *v
	row.CreatedAt = row.CreatedAt.UTC()
	return &row
}

func userRow(u *entity.User) *entity.User {
	row := *u
	row.CreatedAt = row.CreatedAt.UTC()
	return &row
}
