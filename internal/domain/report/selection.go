package report

import "fieldops/internal/domain/entity"

// Selection tracks which of a filtered result set the reviewer picked for export.
type Selection struct {
	records  []entity.ServiceRecord
	selected map[string]struct{}
}

// NewSelection starts an empty selection over records.
func NewSelection(records []entity.ServiceRecord) *Selection {
	return &Selection{
		records:  records,
		selected: make(map[string]struct{}),
	}
}

// Toggle flips the selection of one record and reports whether it is now selected.
func (s *Selection) Toggle(id string) bool {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}

	for _, r := range s.records {
		if r.ID == id {
			s.selected[id] = struct{}{}
			return true
		}
	}

	return false
}

// ToggleAll selects every record, or clears the selection when all are already selected.
func (s *Selection) ToggleAll() {
	if s.AllSelected() {
		clear(s.selected)
		return
	}

	for _, r := range s.records {
		s.selected[r.ID] = struct{}{}
	}
}

// AllSelected reports whether every record is selected. An empty set is never fully selected.
func (s *Selection) AllSelected() bool {
	if len(s.records) == 0 {
		return false
	}

	for _, r := range s.records {
		if _, ok := s.selected[r.ID]; !ok {
			return false
		}
	}

	return true
}

// IsSelected reports whether the record is selected.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Records returns the selected records in result order.
func (s *Selection) Records() []entity.ServiceRecord {
	out := make([]entity.ServiceRecord, 0, len(s.selected))
	for _, r := range s.records {
		if _, ok := s.selected[r.ID]; ok {
			out = append(out, r)
		}
	}

	return out
}

// TotalArea sums the area of the selected records.
func (s *Selection) TotalArea() float64 {
	return TotalArea(s.Records())
}
