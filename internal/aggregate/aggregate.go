// Package aggregate computes read-side derived data over loaded client
// graphs: counts, status partitions, and recent-N lists. It never mutates
// state, and every truncation is deterministic: strict created-at descending
// with id ascending as the stable tie-break.
package aggregate

import (
	"sort"
	"time"

	"github.com/clientdeck-dev/clientdeck/internal/models"
)

const (
	// RecentUpdatesPerProject is how many updates each project carries in
	// detail and portal views.
	RecentUpdatesPerProject = 3

	// RecentUpdatesOnPortal is the size of the portal home feed merged
	// across all of a client's projects.
	RecentUpdatesOnPortal = 5

	// RecentFilesOnPortal is how many client-level files the portal home
	// shows.
	RecentFilesOnPortal = 5
)

type StatusCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Paused    int `json:"paused"`
}

type Counts struct {
	Projects int          `json:"projects"`
	Files    int          `json:"files"`
	Statuses StatusCounts `json:"statuses"`
}

type ClientInfo struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    *string   `json:"company"`
	Subdomain  string    `json:"subdomain"`
	BrandColor string    `json:"brand_color"`
	CreatedAt  time.Time `json:"created_at"`
}

// PortalClientInfo is the public rendition of a client. It carries no owner
// id and no contact email.
type PortalClientInfo struct {
	Name       string  `json:"name"`
	Company    *string `json:"company"`
	Subdomain  string  `json:"subdomain"`
	BrandColor string  `json:"brand_color"`
}

type UpdateSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedUpdate is an update in the merged portal feed, tagged with its source
// project.
type FeedUpdate struct {
	UpdateSummary
	ProjectID   uint   `json:"project_id"`
	ProjectName string `json:"project_name"`
}

type FileSummary struct {
	ID           uint      `json:"id"`
	OriginalName string    `json:"original_name"`
	ProjectID    *uint     `json:"project_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProjectDetail struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdateCount   int             `json:"update_count"`
	FileCount     int             `json:"file_count"`
	RecentUpdates []UpdateSummary `json:"recent_updates"`
	Files         []FileSummary   `json:"files"`
}

// ClientSummary annotates a client for the owner's client list.
type ClientSummary struct {
	ClientInfo
	Counts Counts `json:"counts"`
}

// ClientDetail is the full private graph of one client.
type ClientDetail struct {
	Client   ClientInfo      `json:"client"`
	Projects []ProjectDetail `json:"projects"`
	Files    []FileSummary   `json:"files"`
	Counts   Counts          `json:"counts"`
}

// PortalView is the public graph of one client, reached via slug.
type PortalView struct {
	Client        PortalClientInfo `json:"client"`
	Projects      []ProjectDetail  `json:"projects"`
	RecentUpdates []FeedUpdate     `json:"recent_updates"`
	Files         []FileSummary    `json:"files"`
	Counts        Counts           `json:"counts"`
}

// company serialises an empty company as null, matching "no company".
func company(c string) *string {
	if c == "" {
		return nil
	}
	return &c
}

func clientInfo(c *models.Client) ClientInfo {
	return ClientInfo{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Company:    company(c.Company),
		Subdomain:  c.Subdomain,
		BrandColor: c.BrandColor,
		CreatedAt:  c.CreatedAt,
	}
}

// Info is the private serialisation of a bare client record, without any
// derived counts.
func Info(c *models.Client) ClientInfo {
	return clientInfo(c)
}

// CountClient derives the per-client counts: total projects, total files
// (project-level included), and the status partition.
func CountClient(c *models.Client) Counts {
	counts := Counts{
		Projects: len(c.Projects),
		Files:    len(c.Files),
	}

	for _, p := range c.Projects {
		switch p.Status {
		case "active":
			counts.Statuses.Active++
		case "completed":
			counts.Statuses.Completed++
		case "paused":
			counts.Statuses.Paused++
		}
	}

	return counts
}

// SummarizeClient builds one row of the owner's client list.
func SummarizeClient(c *models.Client) ClientSummary {
	return ClientSummary{
		ClientInfo: clientInfo(c),
		Counts:     CountClient(c),
	}
}

// SummarizeClients builds the owner's client list. Input order is preserved;
// the store loads newest-created first.
func SummarizeClients(clients []models.Client) []ClientSummary {
	summaries := make([]ClientSummary, 0, len(clients))

	for i := range clients {
		summaries = append(summaries, SummarizeClient(&clients[i]))
	}

	return summaries
}

func sortUpdatesDesc(updates []models.Update) []models.Update {
	sorted := make([]models.Update, len(updates))
	copy(sorted, updates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted
}

// RecentProjectUpdates returns the newest updates of one project, truncated
// to limit, newest first.
func RecentProjectUpdates(p *models.Project, limit int) []UpdateSummary {
	sorted := sortUpdatesDesc(p.Updates)

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	summaries := make([]UpdateSummary, 0, len(sorted))

	for _, u := range sorted {
		summaries = append(summaries, UpdateSummary{
			ID:        u.ID,
			Title:     u.Title,
			Content:   u.Content,
			CreatedAt: u.CreatedAt,
		})
	}

	return summaries
}

// projectFiles filters the client's files down to one project, preserving
// the store's newest-first order.
func projectFiles(files []models.File, projectID uint) []models.File {
	filtered := make([]models.File, 0)

	for _, f := range files {
		if f.ProjectID != nil && *f.ProjectID == projectID {
			filtered = append(filtered, f)
		}
	}

	return filtered
}

func projectDetails(c *models.Client) []ProjectDetail {
	details := make([]ProjectDetail, 0, len(c.Projects))

	for i := range c.Projects {
		p := &c.Projects[i]
		files := projectFiles(c.Files, p.ID)
		details = append(details, ProjectDetail{
			ID:            p.ID,
			Name:          p.Name,
			Status:        p.Status,
			CreatedAt:     p.CreatedAt,
			UpdateCount:   len(p.Updates),
			FileCount:     len(files),
			RecentUpdates: RecentProjectUpdates(p, RecentUpdatesPerProject),
			Files:         fileSummaries(files),
		})
	}

	return details
}

func fileSummaries(files []models.File) []FileSummary {
	summaries := make([]FileSummary, 0, len(files))

	for _, f := range files {
		summaries = append(summaries, FileSummary{
			ID:           f.ID,
			OriginalName: f.OriginalName,
			ProjectID:    f.ProjectID,
			CreatedAt:    f.CreatedAt,
		})
	}

	return summaries
}

// clientLevelFiles filters to files not attached to any project, preserving
// the store's newest-first order.
func clientLevelFiles(files []models.File) []models.File {
	filtered := make([]models.File, 0, len(files))

	for _, f := range files {
		if f.ProjectID == nil {
			filtered = append(filtered, f)
		}
	}

	return filtered
}

// MergeRecentUpdates flattens every project's updates into one feed tagged
// with the source project, newest first, truncated to limit.
func MergeRecentUpdates(c *models.Client, limit int) []FeedUpdate {
	feed := make([]FeedUpdate, 0)

	for i := range c.Projects {
		p := &c.Projects[i]
		for _, u := range p.Updates {
			feed = append(feed, FeedUpdate{
				UpdateSummary: UpdateSummary{
					ID:        u.ID,
					Title:     u.Title,
					Content:   u.Content,
					CreatedAt: u.CreatedAt,
				},
				ProjectID:   p.ID,
				ProjectName: p.Name,
			})
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		if feed[i].CreatedAt.Equal(feed[j].CreatedAt) {
			return feed[i].ID < feed[j].ID
		}
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}

	return feed
}

// BuildClientDetail assembles the private detail view of a loaded client
// graph: projects newest-first with their recent updates, client-level
// files, and the counts.
func BuildClientDetail(c *models.Client) ClientDetail {
	return ClientDetail{
		Client:   clientInfo(c),
		Projects: projectDetails(c),
		Files:    fileSummaries(clientLevelFiles(c.Files)),
		Counts:   CountClient(c),
	}
}

// BuildPortal assembles the public portal view. It exposes no owner id and
// no client contact email, and truncates client-level files to the portal
// limit.
func BuildPortal(c *models.Client) PortalView {
	files := clientLevelFiles(c.Files)

	if len(files) > RecentFilesOnPortal {
		files = files[:RecentFilesOnPortal]
	}

	return PortalView{
		Client: PortalClientInfo{
			Name:       c.Name,
			Company:    company(c.Company),
			Subdomain:  c.Subdomain,
			BrandColor: c.BrandColor,
		},
		Projects:      projectDetails(c),
		RecentUpdates: MergeRecentUpdates(c, RecentUpdatesOnPortal),
		Files:         fileSummaries(files),
		Counts:        CountClient(c),
	}
}
