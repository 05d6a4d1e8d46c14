package dto

import "github.com/BruksfildServices01/barberrock-web/internal/domain/schedule"

type WeekdayDTO struct {
	ID     string
	Name   string
	Active bool
}

type ScheduleDTO struct {
	Start       string
	End         string
	Days        []WeekdayDTO
	ActiveNames []string
	HasProfile  bool
}

func NewSchedule(d schedule.Data) ScheduleDTO {
	out := ScheduleDTO{
		Start:      d.Start,
		End:        d.End,
		HasProfile: d.ProfileID != 0,
	}
	names := map[string]string{}
	for _, w := range schedule.Weekdays {
		names[w.ID] = w.Name
		out.Days = append(out.Days, WeekdayDTO{ID: w.ID, Name: w.Name, Active: d.Has(w.ID)})
	}
	for _, id := range d.SortedDays() {
		if n, ok := names[id]; ok {
			out.ActiveNames = append(out.ActiveNames, n)
		}
	}
	return out
}
