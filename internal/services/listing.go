package services

import (
	"sort"
	"strings"

	"jobtrack/internal/models"
	"jobtrack/internal/transport/dto"
)

// The dashboard list is shaped entirely in memory: the remote collection
// always returns everything, and search, filter, sort and pagination derive
// the visible subset from that.

// visibleTo restricts the collection by role: users see their own records,
// admins see all of them.
func visibleTo(identity models.SessionIdentity, jobs []models.JobApplication) []models.JobApplication {
	if identity.IsAdmin() {
		return jobs
	}
	own := make([]models.JobApplication, 0, len(jobs))
	for _, job := range jobs {
		if job.UserID == identity.ID {
			own = append(own, job)
		}
	}
	return own
}

// searchJobs keeps records whose company or position contains the term,
// case-insensitively. An empty term passes everything through.
func searchJobs(jobs []models.JobApplication, term string) []models.JobApplication {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return jobs
	}
	matched := make([]models.JobApplication, 0, len(jobs))
	for _, job := range jobs {
		if strings.Contains(strings.ToLower(job.Company), term) ||
			strings.Contains(strings.ToLower(job.Position), term) {
			matched = append(matched, job)
		}
	}
	return matched
}

// filterByStatus keeps exact status matches, or passes everything through
// when no filter is set.
func filterByStatus(jobs []models.JobApplication, status string) []models.JobApplication {
	if status == "" {
		return jobs
	}
	matched := make([]models.JobApplication, 0, len(jobs))
	for _, job := range jobs {
		if string(job.Status) == status {
			matched = append(matched, job)
		}
	}
	return matched
}

// sortByDateAdded orders by the dateAdded stamp. Stamps are RFC 3339 strings,
// so lexicographic order is timestamp order. The sort is stable: ties keep
// their input order.
func sortByDateAdded(jobs []models.JobApplication, order string) []models.JobApplication {
	sorted := make([]models.JobApplication, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == dto.SortDateAsc {
			return sorted[i].DateAdded < sorted[j].DateAdded
		}
		return sorted[i].DateAdded > sorted[j].DateAdded
	})
	return sorted
}

// paginate clamps the requested page to [1, totalPages] and cuts one page
// out of the shaped collection.
func paginate(jobs []models.JobApplication, page, pageSize int) ([]models.JobApplication, int, int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	totalPages := (len(jobs) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(jobs) {
		start = len(jobs)
	}
	if end > len(jobs) {
		end = len(jobs)
	}
	return jobs[start:end], page, totalPages
}
