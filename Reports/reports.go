package Reports

import (
	"MediCarePro/Models"
)

// StatusCounts always carries all four status keys so chart rendering never
// sees a missing one.
type StatusCounts struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Rejected  int `json:"rejected"`
}

func CountByStatus(appointments []Models.Appointment) StatusCounts {
	var counts StatusCounts
	for _, appointment := range appointments {
		switch appointment.Status {
		case Models.StatusPending:
			counts.Pending++
		case Models.StatusConfirmed:
			counts.Confirmed++
		case Models.StatusCompleted:
			counts.Completed++
		case Models.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// MonthlyCounts holds parallel label/count slices, labels like "Dec 2025" in
// first-seen order. Callers pass appointments ordered by date_time ascending.
type MonthlyCounts struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

func CountByMonth(appointments []Models.Appointment) MonthlyCounts {
	monthly := MonthlyCounts{Labels: []string{}, Counts: []int{}}
	index := make(map[string]int)
	for _, appointment := range appointments {
		label := appointment.DateTime.Format("Jan 2006")
		i, seen := index[label]
		if !seen {
			index[label] = len(monthly.Labels)
			monthly.Labels = append(monthly.Labels, label)
			monthly.Counts = append(monthly.Counts, 1)
			continue
		}
		monthly.Counts[i]++
	}
	return monthly
}
