package listview

import "errors"

// Bulk actions
const (
	ActionDelete        = "delete"
	ActionExport        = "export"
	ActionAddToCampaign = "add-to-campaign"
)

var ErrUnknownAction = errors.New("unknown bulk action")

// Resolver performs the effect of a bulk action on the selected ids.
// The persistence layer behind it is the caller's concern.
type Resolver func(action string, ids []string) error

// Selection tracks which rows of a filtered view are selected. A
// selected id is not deselected when re-filtering hides it; only
// SelectAllVisible is scoped to the ids currently visible.
type Selection struct {
	ids   map[string]struct{}
	order []string
}

// NewSelection returns an empty selection
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips the selection state of one id
func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

// Contains reports whether an id is selected
func (s *Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the selected ids in selection order
func (s *Selection) IDs() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of selected ids
func (s *Selection) Len() int {
	return len(s.ids)
}

// SelectAllVisible selects every id currently visible. Calling it twice
// with the same view has the same effect as once.
func (s *Selection) SelectAllVisible(visible []string) {
	for _, id := range visible {
		if _, ok := s.ids[id]; !ok {
			s.ids[id] = struct{}{}
			s.order = append(s.order, id)
		}
	}
}

// Clear empties the selection. Idempotent.
func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
	s.order = nil
}

// Dispatch hands the current selection to the resolver and then clears
// the selection unconditionally, whether or not the resolver succeeded.
// The resolver's error is returned so the caller can surface it.
func (s *Selection) Dispatch(action string, resolve Resolver) error {
	switch action {
	case ActionDelete, ActionExport, ActionAddToCampaign:
	default:
		return ErrUnknownAction
	}

	ids := s.IDs()
	err := resolve(action, ids)
	s.Clear()
	return err
}
