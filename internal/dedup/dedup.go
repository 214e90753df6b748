package dedup

import "go-job-compiler/internal/models"

// Deduplicate drops records whose link was already seen, keeping the first
// occurrence and the input order. Records without a link can't be compared;
// they are always kept and flagged with models.NoLinkWarning.
// The input slice is not modified.
func Deduplicate(jobs []models.JobRecord) (unique []models.JobRecord, removed int) {
	seen := make(map[string]struct{}, len(jobs))
	unique = make([]models.JobRecord, 0, len(jobs))

	for _, job := range jobs {
		if !job.HasLink() {
			job.DuplicateWarning = models.NoLinkWarning
			unique = append(unique, job)
			continue
		}
		if _, exists := seen[job.Link]; exists {
			removed++
			continue
		}
		seen[job.Link] = struct{}{}
		unique = append(unique, job)
	}
	return unique, removed
}
