package medications

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// DisplayGroup agrupa registros para edición en lote. Los registros sin
// GroupID forman su propio grupo con clave "individual-<id>".
type DisplayGroup struct {
	Key     string
	GroupID string
	Records []MedicationRecord
}

// IsGroup indica si se muestra como grupo (más de un registro con GroupID).
func (g DisplayGroup) IsGroup() bool {
	return g.GroupID != "" && len(g.Records) > 1
}

func (g DisplayGroup) IDs() []string {
	out := make([]string, 0, len(g.Records))
	for _, m := range g.Records {
		out = append(out, m.ID)
	}
	return out
}

// GroupForDisplay particiona por GroupID manteniendo el orden de primera aparición.
func GroupForDisplay(records []MedicationRecord) []DisplayGroup {
	index := map[string]int{}
	out := make([]DisplayGroup, 0)

	for _, m := range records {
		key := "individual-" + m.ID
		groupID := ""
		if m.GroupID != nil && *m.GroupID != "" {
			key = *m.GroupID
			groupID = *m.GroupID
		}

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, DisplayGroup{Key: key, GroupID: groupID})
		}
		out[i].Records = append(out[i].Records, m)
	}
	return out
}

// Selection es el conjunto de ids elegidos en modo lote.
type Selection struct {
	ids   map[string]struct{}
	order []string
}

func NewSelection() *Selection {
	return &Selection{ids: map[string]struct{}{}}
}

func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Toggle(id string) {
	if s.Has(id) {
		s.remove(id)
		return
	}
	s.add(id)
}

// GroupSelected es true si todos los miembros del grupo están elegidos.
func (s *Selection) GroupSelected(g DisplayGroup) bool {
	for _, m := range g.Records {
		if !s.Has(m.ID) {
			return false
		}
	}
	return true
}

// ToggleGroup es simétrico: si el grupo estaba completo lo deselecciona
// entero; si no, selecciona todos sus miembros.
func (s *Selection) ToggleGroup(g DisplayGroup) {
	if s.GroupSelected(g) {
		for _, m := range g.Records {
			s.remove(m.ID)
		}
		return
	}
	for _, m := range g.Records {
		s.add(m.ID)
	}
}

// IDs devuelve los ids en orden de selección.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) Len() int { return len(s.ids) }

func (s *Selection) Clear() {
	s.ids = map[string]struct{}{}
	s.order = nil
}

func (s *Selection) add(id string) {
	if s.Has(id) {
		return
	}
	s.ids[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) remove(id string) {
	if !s.Has(id) {
		return
	}
	delete(s.ids, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// TimeSlot es una franja horaria de la vista diaria.
type TimeSlot struct {
	Time         string
	Records      []MedicationWithAnimal
	Total        int
	Administered int
	// Collapsed: la hora de la franja ya pasó respecto de now.
	Collapsed bool
}

type DailySchedule struct {
	Date        string
	Slots       []TimeSlot
	LastDoseIDs []string
}

// BuildDailySchedule agrupa por hora (ascendente) y marca, por animal, la
// última dosis del último día de tratamiento.
func BuildDailySchedule(date string, items []MedicationWithAnimal, now time.Time) DailySchedule {
	bySlot := map[string]*TimeSlot{}
	times := make([]string, 0)

	for _, m := range items {
		slot, ok := bySlot[m.Time]
		if !ok {
			slot = &TimeSlot{Time: m.Time, Collapsed: slotHour(m.Time) < now.Hour()}
			bySlot[m.Time] = slot
			times = append(times, m.Time)
		}
		slot.Records = append(slot.Records, m)
		slot.Total++
		if m.Administered {
			slot.Administered++
		}
	}
	sort.Strings(times)

	out := DailySchedule{
		Date:        date,
		Slots:       make([]TimeSlot, 0, len(times)),
		LastDoseIDs: LastDoseIDs(items),
	}
	for _, t := range times {
		out.Slots = append(out.Slots, *bySlot[t])
	}
	return out
}

// LastDoseIDs: para cada animal, entre sus registros del último día de
// rango (Date == EndDate), el de hora más tardía. En empate gana el primero.
func LastDoseIDs(items []MedicationWithAnimal) []string {
	latest := map[string]MedicationWithAnimal{}
	animalsOrder := make([]string, 0)

	for _, m := range items {
		if !m.IsLastDay() {
			continue
		}
		cur, ok := latest[m.AnimalID]
		if !ok {
			animalsOrder = append(animalsOrder, m.AnimalID)
			latest[m.AnimalID] = m
			continue
		}
		if m.Time > cur.Time {
			latest[m.AnimalID] = m
		}
	}

	out := make([]string, 0, len(animalsOrder))
	for _, id := range animalsOrder {
		out = append(out, latest[id].ID)
	}
	return out
}

func slotHour(hhmm string) int {
	h, _, _ := strings.Cut(hhmm, ":")
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	return n
}
